package output

import "errors"

// ErrUnsupportedFormat is returned when a format name matches no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported format")

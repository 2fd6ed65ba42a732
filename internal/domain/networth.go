package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Holding is a named asset or liability value.
type Holding struct {
	Name  string          `yaml:"name" json:"name"`
	Type  string          `yaml:"type,omitempty" json:"type,omitempty"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}

// NetWorthSnapshot is the caller-supplied picture of current net worth.
// When Override is set it wins over the asset/liability lists.
type NetWorthSnapshot struct {
	Assets      []Holding        `yaml:"assets,omitempty" json:"assets,omitempty"`
	Liabilities []Holding        `yaml:"liabilities,omitempty" json:"liabilities,omitempty"`
	Override    *decimal.Decimal `yaml:"net_worth,omitempty" json:"net_worth,omitempty"`
}

// UnmarshalYAML decodes the optional net_worth override through a string so that
// both quoted and bare numbers are accepted.
func (s *NetWorthSnapshot) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Assets      []Holding `yaml:"assets,omitempty"`
		Liabilities []Holding `yaml:"liabilities,omitempty"`
		Override    *string   `yaml:"net_worth,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	s.Assets = aux.Assets
	s.Liabilities = aux.Liabilities
	s.Override = nil
	if aux.Override != nil {
		val, err := decimal.NewFromString(*aux.Override)
		if err != nil {
			return err
		}
		s.Override = &val
	}
	return nil
}

// TotalAssets sums all asset values.
func (s *NetWorthSnapshot) TotalAssets() decimal.Decimal {
	total := decimal.Zero
	for _, a := range s.Assets {
		total = total.Add(a.Value)
	}
	return total
}

// TotalLiabilities sums all liability values.
func (s *NetWorthSnapshot) TotalLiabilities() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Liabilities {
		total = total.Add(l.Value)
	}
	return total
}

// NetWorth returns assets minus liabilities, or the override when present. It may be negative.
func (s *NetWorthSnapshot) NetWorth() decimal.Decimal {
	if s.Override != nil {
		return *s.Override
	}
	return s.TotalAssets().Sub(s.TotalLiabilities())
}

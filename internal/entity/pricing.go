package entity

// PricingCard is one package shown on the site. Amount is in the reference
// currency; when it is zero PriceLabel ("On Request") is shown instead.
type PricingCard struct {
	ID          string   `json:"id" yaml:"id"`
	Group       string   `json:"group" yaml:"group"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	ButtonText  string   `json:"button_text" yaml:"button_text"`
	Amount      float64  `json:"-" yaml:"amount"`
	PriceLabel  string   `json:"-" yaml:"price_label"`
	Features    []string `json:"features" yaml:"features"`
}

func (c PricingCard) HasAmount() bool {
	return c.Amount > 0
}

// BudgetRange is a contact-form budget option in the reference currency.
// Lower == 0 means "under Upper"; Upper == 0 means open ended.
type BudgetRange struct {
	Value string  `json:"value" yaml:"value"`
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Option is a fixed select value, like a service interest or timeline.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

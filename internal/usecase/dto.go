package usecase

import "github.com/xavierca1/alpha-site/internal/entity"

// SubmitLeadInput is the JSON body posted by the contact form.
type SubmitLeadInput struct {
	Name            string `json:"name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Phone           string `json:"phone" validate:"max=50"`
	Company         string `json:"company" validate:"max=200"`
	ServiceInterest string `json:"serviceInterest" validate:"required,max=100"`
	ProjectDetails  string `json:"projectDetails" validate:"required,max=5000"`
	Budget          string `json:"budget" validate:"max=100"`
	Timeline        string `json:"timeline" validate:"max=100"`
	Currency        string `json:"currency" validate:"omitempty,len=3,alpha"`
}

type SubmitLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PricedCard struct {
	entity.PricingCard
	Symbol  string  `json:"symbol"`
	Amount  float64 `json:"amount,omitempty"`
	Price   string  `json:"price"`
	Display string  `json:"display"`
}

type PricingOutput struct {
	Locale entity.Locale `json:"locale"`
	Cards  []PricedCard  `json:"cards"`
}

type BudgetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type BudgetOutput struct {
	Locale  entity.Locale  `json:"locale"`
	Options []BudgetOption `json:"options"`
}

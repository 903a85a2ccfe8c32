package usecase

import (
	"context"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xavierca1/alpha-site/internal/entity"
)

var amountPrinter = message.NewPrinter(language.English)

// PricingUseCase resolves the visitor locale once and applies it to every card.
type PricingUseCase struct {
	Catalog  PlanCatalog
	Resolver LocaleResolver
}

func NewPricingUseCase(catalog PlanCatalog, resolver LocaleResolver) *PricingUseCase {
	return &PricingUseCase{Catalog: catalog, Resolver: resolver}
}

func (uc *PricingUseCase) Quote(ctx context.Context, coords *entity.Coordinates) PricingOutput {
	locale := uc.Resolver.Execute(ctx, coords)
	return PricingOutput{
		Locale: locale,
		Cards:  PriceCards(uc.Catalog.Plans(), locale),
	}
}

func (uc *PricingUseCase) BudgetOptions(ctx context.Context, coords *entity.Coordinates) BudgetOutput {
	locale := uc.Resolver.Execute(ctx, coords)
	return BudgetOutput{
		Locale:  locale,
		Options: LabelBudgetRanges(uc.Catalog.BudgetRanges(), locale),
	}
}

// PriceCards converts each numeric price. Cards priced by label keep the label
// and get no symbol.
func PriceCards(cards []entity.PricingCard, locale entity.Locale) []PricedCard {
	out := make([]PricedCard, 0, len(cards))
	for _, card := range cards {
		priced := PricedCard{PricingCard: card}
		if !card.HasAmount() {
			priced.Price = card.PriceLabel
			priced.Display = card.PriceLabel
			out = append(out, priced)
			continue
		}

		amount := card.Amount
		if !locale.Fallback {
			amount = Convert(card.Amount, locale.Rate)
		}
		priced.Symbol = locale.Symbol
		priced.Amount = amount
		priced.Price = formatAmount(amount)
		priced.Display = locale.Symbol + priced.Price
		out = append(out, priced)
	}
	return out
}

// LabelBudgetRanges renders "Under $500", "$500 - $1,000" and "$5,000+" style labels.
// Values never change so submissions stay comparable across currencies.
func LabelBudgetRanges(ranges []entity.BudgetRange, locale entity.Locale) []BudgetOption {
	rate := locale.Rate
	if locale.Fallback || rate <= 0 {
		rate = 1
	}
	sym := locale.Symbol

	out := make([]BudgetOption, 0, len(ranges))
	for _, r := range ranges {
		var label string
		switch {
		case r.Lower <= 0 && r.Upper <= 0:
			continue
		case r.Lower <= 0:
			label = "Under " + sym + formatAmount(Convert(r.Upper, rate))
		case r.Upper <= 0:
			label = sym + formatAmount(Convert(r.Lower, rate)) + "+"
		default:
			label = sym + formatAmount(Convert(r.Lower, rate)) + " - " + sym + formatAmount(Convert(r.Upper, rate))
		}
		out = append(out, BudgetOption{Value: r.Value, Label: label})
	}
	return out
}

func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return amountPrinter.Sprintf("%d", int64(amount))
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

package entity

import "strings"

const (
	DefaultCurrency = "USD"
	DefaultSymbol   = "$"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "C$",
	"ZAR": "R",
}

// CurrencySymbol returns the display prefix for an ISO 4217 code.
// Codes without a known symbol are shown as the code followed by a space
// ("KES 1,290") rather than "$", so a converted amount is never mistaken for dollars.
func CurrencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultSymbol
	}
	if s, ok := currencySymbols[code]; ok {
		return s
	}
	return code + " "
}

// Coordinates is a visitor position as reported by the browser.
type Coordinates struct {
	Lat float64
	Lon float64
}

func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Locale is the outcome of currency resolution for one visitor.
type Locale struct {
	CountryCode  string  `json:"country_code,omitempty"`
	CurrencyCode string  `json:"currency_code"`
	Symbol       string  `json:"symbol"`
	Rate         float64 `json:"rate"`
	Fallback     bool    `json:"fallback"`
}

// FallbackLocale is what every failed lookup resolves to.
func FallbackLocale() Locale {
	return Locale{
		CurrencyCode: DefaultCurrency,
		Symbol:       DefaultSymbol,
		Rate:         1,
		Fallback:     true,
	}
}

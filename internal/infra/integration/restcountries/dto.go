package restcountries

import "encoding/json"

// country keeps currencies raw so the listing order from the API survives decoding.
type country struct {
	CCA2       string          `json:"cca2"`
	Currencies json.RawMessage `json:"currencies"`
}

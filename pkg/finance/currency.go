package finance

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// RateTable maps an ISO currency code to its rate against USD.
// Conversions always pivot through USD: amount * rate[from] / rate[to].
type RateTable map[string]float64

var defaultRates = RateTable{
	"USD": 1,
	"EUR": 1.1,
	"GBP": 1.27,
	"XAF": 0.0016,
	"NGN": 0.0013,
	"GHS": 0.082,
	"KES": 0.0078,
	"ZAR": 0.055,
}

// DefaultRates returns a copy of the built-in rate table.
func DefaultRates() RateTable {
	rates := make(RateTable, len(defaultRates))
	for code, rate := range defaultRates {
		rates[code] = rate
	}
	return rates
}

// LoadRates reads a YAML file of code->rate overrides and merges it over
// the built-in table. Entries with non-positive rates are rejected.
func LoadRates(path string) (RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var overrides map[string]float64
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse rates file %s: %w", path, err)
	}

	rates := DefaultRates()
	for code, rate := range overrides {
		if rate <= 0 {
			return nil, fmt.Errorf("rates file %s: non-positive rate for %s", path, code)
		}
		rates[code] = rate
	}
	return rates, nil
}

// Rate returns the USD rate for a currency code.
func (t RateTable) Rate(code string) (float64, error) {
	rate, ok := t[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}
	return rate, nil
}

// Convert converts an amount between currency codes via the USD pivot.
// The result is NOT rounded; rounding happens once at final aggregation.
func (t RateTable) Convert(amount float64, from, to string) (float64, error) {
	fromRate, err := t.Rate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := t.Rate(to)
	if err != nil {
		return 0, err
	}
	return amount * fromRate / toRate, nil
}

// convertOrFallback is the ledger-boundary conversion. Unknown codes fall
// back to a 1:1 rate, matching the behavior the dashboards have always
// shown for unlisted currencies; the caller surfaces a data-quality
// warning so the fallback is visible instead of silent.
func (t RateTable) convertOrFallback(amount float64, from, to string) (float64, bool) {
	fromRate, ok := t[from]
	fellBack := false
	if !ok {
		fromRate = 1
		fellBack = true
	}
	toRate, ok := t[to]
	if !ok {
		toRate = 1
		fellBack = true
	}
	return amount * fromRate / toRate, fellBack
}

// Round2 rounds to 2 decimal places. Applied only to final aggregates.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

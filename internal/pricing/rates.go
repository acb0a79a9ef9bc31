package pricing

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avstrong/diamond/internal/season"
)

const (
	MinGuests = 1
	MaxGuests = 4
)

var (
	ErrRatesFile  = errors.New("read rates file")
	ErrRatesTable = errors.New("invalid rates table")
)

// Rates is an immutable nightly price table indexed by season and guest count.
type Rates struct {
	prices map[season.Season][MaxGuests]int
}

// DefaultRates returns the published price list.
func DefaultRates() *Rates {
	return &Rates{
		prices: map[season.Season][MaxGuests]int{
			season.Summer:  {60, 60, 80, 90},
			season.OffPeak: {50, 50, 70, 80},
			season.Winter:  {50, 50, 70, 80},
			season.Holiday: {60, 60, 80, 90},
		},
	}
}

// Rate returns the nightly price for the season and guest count. ok is false
// for guest counts outside 1..4 or unknown seasons.
func (r *Rates) Rate(s season.Season, guests int) (int, bool) {
	if guests < MinGuests || guests > MaxGuests {
		return 0, false
	}

	row, ok := r.prices[s]
	if !ok {
		return 0, false
	}

	return row[guests-1], true
}

// NewRates builds a table from a season -> guests -> price mapping. Every
// season and every guest count must be present with a positive price.
func NewRates(table map[season.Season]map[int]int) (*Rates, error) {
	prices := make(map[season.Season][MaxGuests]int, len(season.All))

	for s := range table {
		if !s.Valid() {
			return nil, fmt.Errorf("unknown season %q: %w", s, ErrRatesTable)
		}
	}

	for _, s := range season.All {
		row, ok := table[s]
		if !ok {
			return nil, fmt.Errorf("season %q is missing: %w", s, ErrRatesTable)
		}

		var prepared [MaxGuests]int

		for guests := MinGuests; guests <= MaxGuests; guests++ {
			price, ok := row[guests]
			if !ok || price <= 0 {
				return nil, fmt.Errorf("season %q needs a positive price for %d guests: %w", s, guests, ErrRatesTable)
			}

			prepared[guests-1] = price
		}

		prices[s] = prepared
	}

	return &Rates{prices: prices}, nil
}

// LoadRates reads a YAML rate table such as
//
//	summer:  {1: 60, 2: 60, 3: 80, 4: 90}
//	off:     {1: 50, 2: 50, 3: 70, 4: 80}
//	winter:  {1: 50, 2: 50, 3: 70, 4: 80}
//	holiday: {1: 60, 2: 60, 3: 80, 4: 90}
func LoadRates(path string) (*Rates, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRatesFile, path, err)
	}

	var table map[season.Season]map[int]int

	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("decode rates file %s: %w", path, err)
	}

	rates, err := NewRates(table)
	if err != nil {
		return nil, fmt.Errorf("rates file %s: %w", path, err)
	}

	return rates, nil
}

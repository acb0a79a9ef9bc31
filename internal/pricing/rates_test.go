package pricing_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/diamond/internal/pricing"
	"github.com/avstrong/diamond/internal/season"
)

func TestDefaultRates(t *testing.T) {
	rates := pricing.DefaultRates()

	want := map[season.Season][4]int{
		season.Summer:  {60, 60, 80, 90},
		season.OffPeak: {50, 50, 70, 80},
		season.Winter:  {50, 50, 70, 80},
		season.Holiday: {60, 60, 80, 90},
	}

	for s, row := range want {
		for guests := 1; guests <= 4; guests++ {
			price, ok := rates.Rate(s, guests)
			require.True(t, ok)
			assert.Equal(t, row[guests-1], price, "%s/%d", s, guests)
		}
	}
}

func TestRateOutOfRange(t *testing.T) {
	rates := pricing.DefaultRates()

	for _, guests := range []int{-1, 0, 5} {
		_, ok := rates.Rate(season.Summer, guests)
		assert.False(t, ok, "guests=%d", guests)
	}

	_, ok := rates.Rate(season.Season("spring"), 2)
	assert.False(t, ok)
}

func TestRatesMonotonic(t *testing.T) {
	rates := pricing.DefaultRates()

	for _, s := range season.All {
		for _, pair := range [][2]int{{1, 3}, {2, 4}} {
			low, _ := rates.Rate(s, pair[0])
			high, _ := rates.Rate(s, pair[1])
			assert.GreaterOrEqual(t, high, low, "%s %d->%d", s, pair[0], pair[1])
		}
	}
}

func TestLoadRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := `
summer:  {1: 70, 2: 70, 3: 90, 4: 100}
off:     {1: 50, 2: 50, 3: 70, 4: 80}
winter:  {1: 55, 2: 55, 3: 75, 4: 85}
holiday: {1: 80, 2: 80, 3: 100, 4: 110}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rates, err := pricing.LoadRates(path)
	require.NoError(t, err)

	price, ok := rates.Rate(season.Holiday, 4)
	require.True(t, ok)
	assert.Equal(t, 110, price)
}

func TestLoadRatesRejectsIncompleteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := `
summer:  {1: 70, 2: 70, 3: 90}
off:     {1: 50, 2: 50, 3: 70, 4: 80}
winter:  {1: 55, 2: 55, 3: 75, 4: 85}
holiday: {1: 80, 2: 80, 3: 100, 4: 110}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := pricing.LoadRates(path)
	assert.ErrorIs(t, err, pricing.ErrRatesTable)
}

func TestLoadRatesMissingFile(t *testing.T) {
	_, err := pricing.LoadRates(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, pricing.ErrRatesFile)
}

func TestNewRatesRejectsUnknownSeason(t *testing.T) {
	_, err := pricing.NewRates(map[season.Season]map[int]int{
		"spring": {1: 1, 2: 1, 3: 1, 4: 1},
	})
	assert.ErrorIs(t, err, pricing.ErrRatesTable)
}

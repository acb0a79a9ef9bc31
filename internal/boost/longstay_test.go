package boost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avstrong/diamond/internal/boost"
	"github.com/avstrong/diamond/internal/pricing"
)

func TestLongStayApply(t *testing.T) {
	cases := []struct {
		name         string
		nights       int
		total        float64
		wantTotal    float64
		wantDiscount float64
	}{
		{"short stay", 2, 120, 120, 0},
		{"exactly a week", 7, 420, 420, 0},
		{"eight nights", 8, 480, 456, 24},
		{"nine nights", 9, 540, 513, 27},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote := &pricing.Quote{Nights: tc.nights, Subtotal: tc.total, Total: tc.total}

			(&boost.LongStay{MinNights: 7, Percentage: 5}).Apply(quote)

			assert.InDelta(t, tc.wantTotal, quote.Total, 1e-9)
			assert.InDelta(t, tc.wantDiscount, quote.Discount, 1e-9)
			assert.InDelta(t, tc.total, quote.Subtotal, 1e-9)
		})
	}
}

func TestManagerStrategies(t *testing.T) {
	strategies := boost.New().Strategies()

	assert.Len(t, strategies, 1)

	quote := &pricing.Quote{Nights: 10, Subtotal: 1000, Total: 1000}
	strategies[0].Apply(quote)

	assert.InDelta(t, 950, quote.Total, 1e-9)
}

func TestLongStayUsesSubtotal(t *testing.T) {
	// An earlier strategy already took 100 off.
	quote := &pricing.Quote{Nights: 10, Subtotal: 1000, Discount: 100, Total: 900}

	(&boost.LongStay{MinNights: 7, Percentage: 5}).Apply(quote)

	assert.InDelta(t, 150, quote.Discount, 1e-9)
	assert.InDelta(t, 850, quote.Total, 1e-9)
}

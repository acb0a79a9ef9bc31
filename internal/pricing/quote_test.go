package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/diamond/internal/boost"
	"github.com/avstrong/diamond/internal/pricing"
	"github.com/avstrong/diamond/internal/season"
)

func newCalculator() *pricing.Calculator {
	return pricing.NewCalculator(pricing.DefaultRates(), boost.New().Strategies()...)
}

func TestQuoteFormSummerWeek(t *testing.T) {
	res := newCalculator().QuoteForm(pricing.Form{CheckIn: "2025-06-01", CheckOut: "2025-06-08", Guests: "2"})

	quote, ok := res.Quote()
	require.True(t, ok)

	assert.Equal(t, 7, quote.Nights)
	assert.InDelta(t, 420, quote.Subtotal, 1e-9)
	assert.InDelta(t, 420, quote.Total, 1e-9)
	assert.Zero(t, quote.Discount)
	assert.Equal(t, 60, quote.Average())
	assert.Equal(t, []pricing.SeasonNights{{Season: season.Summer, Nights: 7, Amount: 420}}, quote.Breakdown)

	view := pricing.Render(res)
	assert.Equal(t, "420€", view.Total)
	assert.Equal(t, "Priemerná cena: 60€ / noc", view.PerNight)
	assert.Empty(t, view.Discount)
	assert.True(t, view.ReserveEnabled)
	assert.Equal(t, "rezervacia.html?checkin=2025-06-01&checkout=2025-06-08&guests=2&price=420", view.ReserveURL)
}

func TestQuoteFormLongStayDiscount(t *testing.T) {
	res := newCalculator().QuoteForm(pricing.Form{CheckIn: "2025-06-01", CheckOut: "2025-06-10", Guests: "2"})

	quote, ok := res.Quote()
	require.True(t, ok)

	assert.Equal(t, 9, quote.Nights)
	assert.InDelta(t, 540, quote.Subtotal, 1e-9)
	assert.InDelta(t, 27, quote.Discount, 1e-9)
	assert.InDelta(t, 513, quote.Total, 1e-9)

	view := pricing.Render(res)
	assert.Equal(t, "513€", view.Total)
	assert.Equal(t, "Zľava: 27€", view.Discount)
	assert.Equal(t, "Priemerná cena: 57€ / noc", view.PerNight)
}

func TestQuoteFormInvalid(t *testing.T) {
	cases := []struct {
		name    string
		form    pricing.Form
		reason  pricing.Reason
		message string
	}{
		{
			name:    "one night",
			form:    pricing.Form{CheckIn: "2025-01-05", CheckOut: "2025-01-06", Guests: "2"},
			reason:  pricing.ReasonMinimumStay,
			message: "Minimálny pobyt 2 noci",
		},
		{
			name:    "checkout before checkin",
			form:    pricing.Form{CheckIn: "2025-01-06", CheckOut: "2025-01-01", Guests: "2"},
			reason:  pricing.ReasonMinimumStay,
			message: "Minimálny pobyt 2 noci",
		},
		{
			name:    "missing checkout",
			form:    pricing.Form{CheckIn: "2025-01-05", Guests: "2"},
			reason:  pricing.ReasonIncomplete,
			message: "Vyplňte všetky polia",
		},
		{
			name:    "malformed date",
			form:    pricing.Form{CheckIn: "05.01.2025", CheckOut: "2025-01-10", Guests: "2"},
			reason:  pricing.ReasonIncomplete,
			message: "Vyplňte všetky polia",
		},
		{
			name:    "guests not a number",
			form:    pricing.Form{CheckIn: "2025-01-05", CheckOut: "2025-01-10", Guests: "two"},
			reason:  pricing.ReasonIncomplete,
			message: "Vyplňte všetky polia",
		},
		{
			name:    "too many guests",
			form:    pricing.Form{CheckIn: "2025-01-05", CheckOut: "2025-01-10", Guests: "5"},
			reason:  pricing.ReasonGuestsOutOfRange,
			message: "Počet osôb musí byť 1 až 4",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := newCalculator().QuoteForm(tc.form)

			reason, ok := res.Invalid()
			require.True(t, ok)
			assert.Equal(t, tc.reason, reason)

			_, priced := res.Quote()
			assert.False(t, priced)

			view := pricing.Render(res)
			assert.Equal(t, tc.message, view.Total)
			assert.Empty(t, view.PerNight)
			assert.Empty(t, view.Discount)
			assert.False(t, view.ReserveEnabled)
			assert.Empty(t, view.ReserveURL)
		})
	}
}

func TestQuoteAcrossSeasons(t *testing.T) {
	// Dec 18 .. Jan 2: three winter nights then holiday.
	res := newCalculator().Quote(pricing.Request{
		CheckIn:  time.Date(2025, time.December, 18, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
		Guests:   3,
	})

	quote, ok := res.Quote()
	require.True(t, ok)

	assert.Equal(t, 15, quote.Nights)
	assert.Equal(t, []pricing.SeasonNights{
		{Season: season.Winter, Nights: 3, Amount: 210},
		{Season: season.Holiday, Nights: 12, Amount: 960},
	}, quote.Breakdown)
	assert.InDelta(t, 1170, quote.Subtotal, 1e-9)
	assert.InDelta(t, 58.5, quote.Discount, 1e-9)
	assert.InDelta(t, 1111.5, quote.Total, 1e-9)
	assert.Equal(t, "1112€", pricing.Render(res).Total)
}

func TestQuoteIsIdempotent(t *testing.T) {
	calc := newCalculator()
	form := pricing.Form{CheckIn: "2025-03-28", CheckOut: "2025-04-12", Guests: "4"}

	first := calc.QuoteForm(form)
	second := calc.QuoteForm(form)

	assert.Equal(t, first, second)
	assert.Equal(t, pricing.Render(first), pricing.Render(second))
}

func TestDiscountLaw(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultRates(), boost.New().Strategies()...)
	start := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	for nights := 2; nights <= 20; nights++ {
		res := calc.Quote(pricing.Request{CheckIn: start, CheckOut: start.AddDate(0, 0, nights), Guests: 1})

		quote, ok := res.Quote()
		require.True(t, ok)

		if nights <= 7 {
			assert.InDelta(t, quote.Subtotal, quote.Total, 1e-9, "nights=%d", nights)
			assert.Zero(t, quote.Discount, "nights=%d", nights)

			continue
		}

		assert.InDelta(t, quote.Subtotal*0.95, quote.Total, 1e-9, "nights=%d", nights)
		assert.InDelta(t, quote.Subtotal-quote.Total, quote.Discount, 1e-9, "nights=%d", nights)
	}
}

func TestQuoteWithoutDiscounts(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultRates())

	res := calc.QuoteForm(pricing.Form{CheckIn: "2025-06-01", CheckOut: "2025-06-10", Guests: "1"})

	quote, ok := res.Quote()
	require.True(t, ok)
	assert.InDelta(t, 540, quote.Total, 1e-9)
}

func TestNights(t *testing.T) {
	in := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, pricing.Nights(in, in.AddDate(0, 0, 3)))
	assert.Equal(t, 1, pricing.Nights(in, in.Add(time.Hour)))
	assert.Equal(t, 0, pricing.Nights(in, in))
	assert.Equal(t, -2, pricing.Nights(in, in.AddDate(0, 0, -2)))
}

package pricing

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/avstrong/diamond/internal/season"
)

const (
	DateLayout = time.DateOnly
	MinNights  = 2
	day        = 24 * time.Hour
)

// Reason explains why a form could not be priced.
type Reason string

const (
	ReasonIncomplete       Reason = "fill all fields"
	ReasonMinimumStay      Reason = "minimum stay is 2 nights"
	ReasonGuestsOutOfRange Reason = "guests must be between 1 and 4"
)

// Form holds raw calculator input as typed by the visitor.
type Form struct {
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	Guests   string `json:"guests"`
}

type Request struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

type SeasonNights struct {
	Season season.Season `json:"season"`
	Nights int           `json:"nights"`
	Amount int           `json:"amount"`
}

type Quote struct {
	CheckIn   time.Time      `json:"checkin"`
	CheckOut  time.Time      `json:"checkout"`
	Guests    int            `json:"guests"`
	Nights    int            `json:"nights"`
	Subtotal  float64        `json:"subtotal"`
	Discount  float64        `json:"discount"`
	Total     float64        `json:"total"`
	Breakdown []SeasonNights `json:"breakdown"`
}

// Average is the rounded nightly price after discount.
func (q *Quote) Average() int {
	return int(math.Round(q.Total / float64(q.Nights)))
}

// Result is either a priced Quote or the Reason the input was rejected.
type Result struct {
	quote  *Quote
	reason Reason
}

func valid(q *Quote) Result {
	return Result{quote: q}
}

func invalid(reason Reason) Result {
	return Result{reason: reason}
}

func (r Result) Quote() (*Quote, bool) {
	return r.quote, r.quote != nil
}

func (r Result) Invalid() (Reason, bool) {
	return r.reason, r.quote == nil
}

// Discount adjusts a freshly summed quote.
type Discount interface {
	Apply(quote *Quote)
}

type Calculator struct {
	rates     *Rates
	discounts []Discount
}

func NewCalculator(rates *Rates, discounts ...Discount) *Calculator {
	return &Calculator{
		rates:     rates,
		discounts: discounts,
	}
}

func (c *Calculator) Rates() *Rates {
	return c.rates
}

// ParseForm converts raw form values. Missing or malformed values yield
// ReasonIncomplete.
func ParseForm(form Form) (Request, Reason, bool) {
	checkInRaw := strings.TrimSpace(form.CheckIn)
	checkOutRaw := strings.TrimSpace(form.CheckOut)

	if checkInRaw == "" || checkOutRaw == "" {
		return Request{}, ReasonIncomplete, false
	}

	checkIn, err := time.Parse(DateLayout, checkInRaw)
	if err != nil {
		return Request{}, ReasonIncomplete, false
	}

	checkOut, err := time.Parse(DateLayout, checkOutRaw)
	if err != nil {
		return Request{}, ReasonIncomplete, false
	}

	guests, err := strconv.Atoi(strings.TrimSpace(form.Guests))
	if err != nil {
		return Request{}, ReasonIncomplete, false
	}

	return Request{CheckIn: checkIn, CheckOut: checkOut, Guests: guests}, "", true
}

func (c *Calculator) QuoteForm(form Form) Result {
	req, reason, ok := ParseForm(form)
	if !ok {
		return invalid(reason)
	}

	return c.Quote(req)
}

// Nights counts started days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day)))
}

// Quote prices a stay night by night. The night starting on check-in is
// included and the one starting on check-out is not.
func (c *Calculator) Quote(req Request) Result {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return invalid(ReasonIncomplete)
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	if nights < MinNights {
		return invalid(ReasonMinimumStay)
	}

	if req.Guests < MinGuests || req.Guests > MaxGuests {
		return invalid(ReasonGuestsOutOfRange)
	}

	perSeason := make(map[season.Season]*SeasonNights, len(season.All))

	var subtotal int

	for i := 0; i < nights; i++ {
		s := season.Classify(req.CheckIn.AddDate(0, 0, i))

		price, ok := c.rates.Rate(s, req.Guests)
		if !ok {
			return invalid(ReasonGuestsOutOfRange)
		}

		subtotal += price

		entry, ok := perSeason[s]
		if !ok {
			entry = &SeasonNights{Season: s}
			perSeason[s] = entry
		}

		entry.Nights++
		entry.Amount += price
	}

	quote := &Quote{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
		Nights:   nights,
		Subtotal: float64(subtotal),
		Total:    float64(subtotal),
	}

	for _, s := range season.All {
		if entry, ok := perSeason[s]; ok {
			quote.Breakdown = append(quote.Breakdown, *entry)
		}
	}

	for _, discount := range c.discounts {
		discount.Apply(quote)
	}

	return valid(quote)
}

package boost

import (
	"github.com/avstrong/diamond/internal/pricing"
)

const (
	defaultLongStayNights     = 7
	defaultLongStayPercentage = 5
)

// LongStay takes Percentage of the undiscounted subtotal off stays strictly
// longer than MinNights.
type LongStay struct {
	MinNights  int
	Percentage float64
}

func (l *LongStay) Apply(quote *pricing.Quote) {
	if quote.Nights <= l.MinNights {
		return
	}

	discount := quote.Subtotal * l.Percentage / 100 //nolint:gomnd

	quote.Discount += discount
	quote.Total -= discount
}

type Manager struct {
	longStay LongStay
}

func New() *Manager {
	return &Manager{
		longStay: LongStay{
			MinNights:  defaultLongStayNights,
			Percentage: defaultLongStayPercentage,
		},
	}
}

// Strategies lists discounts applied to every quote, in order.
func (m *Manager) Strategies() []pricing.Discount {
	longStay := m.longStay

	return []pricing.Discount{&longStay}
}

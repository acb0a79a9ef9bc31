package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Reservation is the booking form as submitted by a visitor.
type Reservation struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	CheckIn  string     `json:"checkin"`
	CheckOut string     `json:"checkout"`
	Guests   GuestCount `json:"guests"`
	Price    string     `json:"price"`
	Message  string     `json:"message"`
	Consent  bool       `json:"consent"`
}

// Prefill carries the calculator's stay into the reservation form.
type Prefill struct {
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	Guests   string `json:"guests"`
	Price    string `json:"price"`
}

type Draft struct {
	ID                   string      `json:"id"`
	MailTo               string      `json:"mailto"`
	Status               string      `json:"status"`
	Redirect             string      `json:"redirect"`
	RedirectAfterSeconds int         `json:"redirectAfterSeconds"`
	Reservation          Reservation `json:"reservation"`
	CreatedAt            time.Time   `json:"createdAt"`
}

// GuestCount is the guests field as typed. JSON clients may send it as a
// string or as a number.
type GuestCount string

func (g *GuestCount) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode guests: %w", err)
		}

		*g = GuestCount(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("guests must be a number or a string: %w", err)
	}

	*g = GuestCount(n.String())

	return nil
}

package pricing

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

const (
	Currency        = "€"
	ReservationPage = "rezervacia.html"
)

var messages = map[Reason]string{
	ReasonIncomplete:       "Vyplňte všetky polia",
	ReasonMinimumStay:      "Minimálny pobyt 2 noci",
	ReasonGuestsOutOfRange: "Počet osôb musí byť 1 až 4",
}

// View is what the calculator panel shows.
type View struct {
	Total          string `json:"total"`
	PerNight       string `json:"perNight"`
	Discount       string `json:"discount"`
	ReserveEnabled bool   `json:"reserveEnabled"`
	ReserveURL     string `json:"reserveUrl,omitempty"`
}

func Render(res Result) View {
	if reason, ok := res.Invalid(); ok {
		return View{Total: messages[reason]}
	}

	quote, _ := res.Quote()

	view := View{
		Total:          FormatPrice(quote.Total),
		PerNight:       fmt.Sprintf("Priemerná cena: %d%s / noc", quote.Average(), Currency),
		ReserveEnabled: true,
		ReserveURL:     ReserveURL(quote),
	}

	if quote.Discount > 0 {
		view.Discount = "Zľava: " + FormatPrice(quote.Discount)
	}

	return view
}

func FormatPrice(amount float64) string {
	return strconv.Itoa(roundPrice(amount)) + Currency
}

func roundPrice(amount float64) int {
	return int(math.Round(amount))
}

// ReserveURL links the reservation form pre-filled with the quoted stay.
func ReserveURL(quote *Quote) string {
	query := url.Values{}
	query.Set("checkin", quote.CheckIn.Format(DateLayout))
	query.Set("checkout", quote.CheckOut.Format(DateLayout))
	query.Set("guests", strconv.Itoa(quote.Guests))
	query.Set("price", strconv.Itoa(roundPrice(quote.Total)))

	return ReservationPage + "?" + query.Encode()
}

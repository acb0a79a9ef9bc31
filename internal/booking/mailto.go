package booking

import (
	"net/url"
	"strings"
)

const (
	DefaultRecipient = "diamondpodhajska@gmail.com"
	mailSubject      = "Rezervácia Apartmán Diamond"
	lineBreak        = "%0D%0A"
)

// escape percent-encodes a mailto header value. Spaces become %20 since mail
// clients do not decode '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func mailBody(r *Reservation) string {
	var b strings.Builder

	line := func(label, value string) {
		b.WriteString(escape(label + ": " + value))
		b.WriteString(lineBreak)
	}

	line("Meno a priezvisko", r.Name)
	line("Email", r.Email)
	line("Príchod", r.CheckIn)
	line("Odchod", r.CheckOut)
	line("Počet osôb", string(r.Guests))

	if r.Phone != "" {
		line("Telefón", r.Phone)
	}

	if r.Price != "" {
		line("Predbežná cena", r.Price+"€")
	}

	if r.Message != "" {
		line("Poznámka", r.Message)
	}

	return b.String()
}

// MailTo builds the mailto link that opens a pre-filled reservation e-mail.
func MailTo(recipient string, r *Reservation) string {
	return "mailto:" + recipient + "?subject=" + escape(mailSubject) + "&body=" + mailBody(r)
}

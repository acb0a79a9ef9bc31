package booking

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avstrong/diamond/internal/logger"
	"github.com/avstrong/diamond/internal/pricing"
)

const (
	ConsentStatus = "Musíte súhlasiť so spracovaním údajov."
	DraftStatus   = "Otvára sa váš e-mailový klient. Po odoslaní emailu budete presmerovaný na ďakovnú stránku."
	ThankYouPage  = "thank-you.html"
	redirectAfter = 5 * time.Second
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

type storage interface {
	// GetOrSaveDraft returns the draft stored under the context's idempotency
	// key, or stores the one built by build. Lookup and store are atomic.
	GetOrSaveDraft(ctx context.Context, build func() (*Draft, error)) (*Draft, error)
}

type Conf struct {
	Recipient string
}

type Manager struct {
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
	recipient   string
}

func New(l *logger.Logger, conf Conf, storage storage, idGenerator idGenerator) *Manager {
	recipient := conf.Recipient
	if recipient == "" {
		recipient = DefaultRecipient
	}

	return &Manager{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
		recipient:   recipient,
	}
}

// ParsePrefill reads the stay passed from the price calculator. Absent
// parameters stay empty.
func ParsePrefill(query url.Values) Prefill {
	return Prefill{
		CheckIn:  query.Get("checkin"),
		CheckOut: query.Get("checkout"),
		Guests:   query.Get("guests"),
		Price:    query.Get("price"),
	}
}

func (r *Reservation) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
	r.Price = strings.TrimSpace(r.Price)
	r.Guests = GuestCount(strings.TrimSpace(string(r.Guests)))
}

func (r *Reservation) validate() error {
	inputErr := newInputError()

	if r.Name == "" {
		inputErr.addError("name", "provide name")
	}

	if _, err := mail.ParseAddress(r.Email); err != nil {
		inputErr.addError("email", "provide valid email")
	}

	checkIn, errIn := time.Parse(pricing.DateLayout, r.CheckIn)
	if errIn != nil {
		inputErr.addError("checkin", "provide checkin as YYYY-MM-DD")
	}

	checkOut, errOut := time.Parse(pricing.DateLayout, r.CheckOut)
	if errOut != nil {
		inputErr.addError("checkout", "provide checkout as YYYY-MM-DD")
	}

	if errIn == nil && errOut == nil && !checkOut.After(checkIn) {
		inputErr.addError("checkout", "checkout must be after checkin")
	}

	if guests, err := strconv.Atoi(string(r.Guests)); err != nil || guests < pricing.MinGuests || guests > pricing.MaxGuests {
		inputErr.addError("guests", "provide guests between 1 and 4")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// Draft turns a reservation into an e-mail draft. Repeated calls with the
// same idempotency key return the first draft.
func (m *Manager) Draft(ctx context.Context, input *Reservation) (*Draft, error) {
	if !input.Consent {
		return nil, ErrConsentRequired
	}

	input.normalize()

	if err := input.validate(); err != nil {
		return nil, err
	}

	var created bool

	draft, err := m.storage.GetOrSaveDraft(ctx, func() (*Draft, error) {
		id, err := m.idGenerator.GetID(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNextID, err)
		}

		created = true

		return &Draft{
			ID:                   id,
			MailTo:               MailTo(m.recipient, input),
			Status:               DraftStatus,
			Redirect:             ThankYouPage,
			RedirectAfterSeconds: int(redirectAfter / time.Second),
			Reservation:          *input,
			CreatedAt:            time.Now().UTC(),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("get or save draft: %w", err)
	}

	if !created {
		m.l.LogDebug("Returning stored draft %v", draft.ID)

		return draft, nil
	}

	m.l.LogInfo("Reservation draft %v created for %v - %v", draft.ID, input.CheckIn, input.CheckOut)

	return draft, nil
}

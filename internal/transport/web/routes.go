package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avstrong/diamond/internal/booking"
	"github.com/avstrong/diamond/internal/gallery"
	"github.com/avstrong/diamond/internal/page"
	"github.com/avstrong/diamond/internal/pricing"
)

const maxReviews = 100

type consentResponse struct {
	Status string `json:"status"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) quoteHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	res := s.calculator.QuoteForm(pricing.Form{
		CheckIn:  query.Get("checkin"),
		CheckOut: query.Get("checkout"),
		Guests:   query.Get("guests"),
	})

	if reason, ok := res.Invalid(); ok {
		s.l.LogDebug("Quote rejected: %v", reason)
	}

	s.writeJSON(w, http.StatusOK, pricing.Render(res))
}

func (s *Server) prefillHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, booking.ParsePrefill(r.URL.Query()))
}

func (s *Server) createDraftHandler(w http.ResponseWriter, r *http.Request) {
	idempotencyKey := r.Header.Get("Idempotency-Key")
	if idempotencyKey == "" {
		http.Error(w, "Idempotency-Key header is missing", http.StatusBadRequest)

		return
	}

	var input booking.Reservation

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	ctx := booking.WithIdempotencyKey(r.Context(), idempotencyKey)

	out, err := s.bManager.Draft(ctx, &input)
	if errors.Is(err, booking.ErrConsentRequired) {
		s.writeJSON(w, http.StatusUnprocessableEntity, consentResponse{Status: booking.ConsentStatus})

		return
	}

	if inputErr := booking.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not create a reservation draft: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

// galleryHandler renders a fresh gallery driven to the requested state.
func (s *Server) galleryHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	c := gallery.New(gallery.Order)

	if expanded, _ := strconv.ParseBool(query.Get("expanded")); expanded {
		c.Toggle()
	}

	if raw := query.Get("open"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil || !c.Open(idx) {
			http.Error(w, "open must be a gallery index", http.StatusBadRequest)

			return
		}
	}

	s.writeJSON(w, http.StatusOK, c.View())
}

type surroundingsView struct {
	Trips    []page.Picture    `json:"trips"`
	Lightbox page.LightboxView `json:"lightbox"`
}

// surroundingsHandler renders the trip pictures with the lightbox opened on
// open and then given key, if any.
func (s *Server) surroundingsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	lightbox := page.NewLightbox(page.Trips)

	if raw := query.Get("open"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil || !lightbox.Open(idx) {
			http.Error(w, "open must be a trip index", http.StatusBadRequest)

			return
		}
	}

	lightbox.HandleKey(query.Get("key"))

	s.writeJSON(w, http.StatusOK, surroundingsView{Trips: page.Trips, Lightbox: lightbox.View()})
}

func (s *Server) menuHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var menu page.Menu

	if open, _ := strconv.ParseBool(query.Get("open")); open {
		menu.Toggle()
	}

	if link, _ := strconv.ParseBool(query.Get("link")); link {
		menu.ClickLink()
	}

	s.writeJSON(w, http.StatusOK, menu.View())
}

// reviewsHandler replays the toggle clicks, in order, on an accordion of
// items reviews.
func (s *Server) reviewsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	items, err := strconv.Atoi(query.Get("items"))
	if err != nil || items < 1 || items > maxReviews {
		http.Error(w, fmt.Sprintf("items must be between 1 and %d", maxReviews), http.StatusBadRequest)

		return
	}

	accordion := page.NewAccordion(items)

	for _, raw := range query["toggle"] {
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 || idx >= items {
			http.Error(w, "toggle must be a review index", http.StatusBadRequest)

			return
		}

		accordion.Toggle(idx)
	}

	s.writeJSON(w, http.StatusOK, accordion.View())
}

func (s *Server) siteHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, page.NewSite(s.conf.Now()))
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handle(r *http.ServeMux, pattern string, h http.HandlerFunc) {
	r.Handle(
		pattern,
		s.applyMiddlewares(h, s.recoverMiddleware(), s.loggerMiddleware(), s.requestIDMiddleware()),
	)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	s.handle(r, "GET /api/quotes/v1", s.quoteHandler)
	s.handle(r, "GET /api/reservations/v1/prefill", s.prefillHandler)
	s.handle(r, "POST /api/reservations/v1", s.createDraftHandler)
	s.handle(r, "GET /api/gallery/v1", s.galleryHandler)
	s.handle(r, "GET /api/surroundings/v1", s.surroundingsHandler)
	s.handle(r, "GET /api/menu/v1", s.menuHandler)
	s.handle(r, "GET /api/reviews/v1", s.reviewsHandler)
	s.handle(r, "GET /api/site/v1", s.siteHandler)
	s.handle(r, fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler)
}

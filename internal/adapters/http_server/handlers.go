package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/memmap"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/app"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/shared"
)

type Handlers struct {
	Q *app.QueryService

	// Engine backs the map-state endpoint; nil means a fresh zero-delay
	// engine. The poll/timeout pair bounds how long a request waits for an
	// engine handle to become ready.
	Engine          *memmap.Engine
	MapReadyPoll    time.Duration
	MapReadyTimeout time.Duration
}

var validate = validator.New()

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	health := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   "Dullstroom Digital API",
		})
	}
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/health", health)

	s.mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", h.listCategories)
		r.Get("/businesses", h.listBusinesses)
		r.Get("/accommodations", h.listAccommodations)
		r.Get("/accommodations/{id}", h.getAccommodation)
		r.Post("/accommodations/{id}/quote", h.quote)
		r.Get("/map/state", h.mapState)
		r.Get("/community/boards", h.listBoards)
		r.Get("/community/posts", h.listCommunityPosts)
		r.Post("/enquiries", h.createEnquiry)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// criteria pulls the (q, category) filter pair from the query string. An
// unknown category is a client error, not an empty result.
func criteria(r *http.Request) (string, *domain.Category, error) {
	q := r.URL.Query().Get("q")
	cs := r.URL.Query().Get("category")
	if cs == "" {
		return q, nil, nil
	}
	c, err := domain.ParseCategory(cs)
	if err != nil {
		return "", nil, err
	}
	return q, &c, nil
}

func (h *Handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, domain.Categories)
}

func (h *Handlers) listBusinesses(w http.ResponseWriter, r *http.Request) {
	q, cat, err := criteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	out, err := h.Q.ListBusinesses(r.Context(), q, cat)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "could not list businesses")
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) listAccommodations(w http.ResponseWriter, r *http.Request) {
	q, cat, err := criteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	out, err := h.Q.ListAccommodations(r.Context(), q, cat)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "could not list accommodations")
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) getAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	a, err := h.Q.GetAccommodation(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "accommodation not found")
		return
	}
	writeCached(w, r, a)
}

// ---- community boards ----

func (h *Handlers) listBoards(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, domain.Boards)
}

// listCommunityPosts filters the bundled board content by (q, board). The
// "all" pseudo-board the UI sends means no board constraint.
func (h *Handlers) listCommunityPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	var board *domain.Board
	if bs := r.URL.Query().Get("board"); bs != "" && bs != "all" {
		b, err := domain.ParseBoard(bs)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid board", err.Error())
			return
		}
		board = &b
	}
	out, err := h.Q.ListCommunityPosts(r.Context(), q, board)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "could not list posts")
		return
	}
	writeCached(w, r, out)
}

// ---- booking quote ----

type quoteRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Adults   int    `json:"adults" validate:"min=0"`
	Children int    `json:"children" validate:"min=0"`
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "Validation failed", err.Error())
		return
	}

	// omitted dates quote the default stay: tomorrow to the day after
	draft := app.DefaultDraft(time.Now())
	if req.CheckIn != "" || req.CheckOut != "" {
		checkIn, err := time.Parse("2006-01-02", req.CheckIn)
		if err != nil {
			writeProblem(w, http.StatusUnprocessableEntity, "Validation failed", "check_in must be YYYY-MM-DD")
			return
		}
		checkOut, err := time.Parse("2006-01-02", req.CheckOut)
		if err != nil {
			writeProblem(w, http.StatusUnprocessableEntity, "Validation failed", "check_out must be YYYY-MM-DD")
			return
		}
		draft.CheckIn, draft.CheckOut = checkIn, checkOut
	}
	if req.Adults > 0 || req.Children > 0 {
		draft.Guests = domain.Guests{Adults: req.Adults, Children: req.Children}
	}

	a, err := h.Q.GetAccommodation(r.Context(), id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "accommodation not found")
		return
	}
	writeJSON(w, http.StatusOK, app.QuoteFor(a, draft))
}

// ---- map state ----

// mapState runs a one-shot session against the in-memory map engine and
// returns the marker set and camera the synchronizer produced for the given
// filter and selection. The SPA renders this verbatim.
func (h *Handlers) mapState(w http.ResponseWriter, r *http.Request) {
	q, cat, err := criteria(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}

	scope := r.URL.Query().Get("scope")
	var entities []domain.Entity
	switch scope {
	case "", "businesses":
		entities, err = h.Q.ListBusinesses(r.Context(), "", nil)
	case "accommodations":
		var accs []domain.Accommodation
		accs, err = h.Q.ListAccommodations(r.Context(), "", nil)
		for _, a := range accs {
			entities = append(entities, a.Entity)
		}
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid scope", "scope must be businesses or accommodations")
		return
	}
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "could not load catalog")
		return
	}

	engine := h.Engine
	if engine == nil {
		engine = memmap.New()
	}
	handle, err := engine.CreateMap(shared.TownCenter, shared.TownZoom)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "map engine failed")
		return
	}
	defer handle.Destroy()

	poll, timeout := h.MapReadyPoll, h.MapReadyTimeout
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if err := memmap.AwaitReady(r.Context(), handle, poll, timeout); err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Map not ready", "map engine did not initialize in time")
		return
	}

	sess := app.NewSession(entities, handle, app.ViewportDesktop)
	if err := sess.SetQuery(q); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "marker sync failed")
		return
	}
	if err := sess.SetCategory(cat); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal", "marker sync failed")
		return
	}
	if sel := r.URL.Query().Get("selected"); sel != "" {
		id, err := strconv.ParseInt(sel, 10, 64)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid selected", "selected must be a number")
			return
		}
		if err := sess.Select(id); err != nil {
			writeProblem(w, http.StatusInternalServerError, "Internal", "marker sync failed")
			return
		}
	}

	writeCached(w, r, handle.(*memmap.Handle).Snapshot())
}

// ---- booking enquiry ----

type enquiryRequest struct {
	AccommodationID int64  `json:"accommodation_id" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Message         string `json:"message"`
	CheckIn         string `json:"check_in" validate:"required"`
	CheckOut        string `json:"check_out" validate:"required"`
	Adults          int    `json:"adults" validate:"min=1"`
	Children        int    `json:"children" validate:"min=0"`
}

// createEnquiry acknowledges a direct booking request. Enquiries are not
// persisted; the acknowledgement carries a reference and the request is
// logged for the venue follow-up flow.
func (h *Handlers) createEnquiry(w http.ResponseWriter, r *http.Request) {
	var req enquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "malformed JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "Validation failed", err.Error())
		return
	}
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "Validation failed", "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "Validation failed", "check_out must be YYYY-MM-DD")
		return
	}

	a, err := h.Q.GetAccommodation(r.Context(), req.AccommodationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "accommodation not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal", "could not load accommodation")
		return
	}

	enq := domain.Enquiry{
		Reference:       uuid.NewString(),
		AccommodationID: a.ID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         req.Message,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          app.ClampGuests(req.Adults, req.Children, a.MaxGuests),
	}
	log.Info().
		Str("reference", enq.Reference).
		Int64("accommodation_id", enq.AccommodationID).
		Int("nights", app.Nights(enq.CheckIn, enq.CheckOut)).
		Int("guests", enq.Guests.Total()).
		Msg("booking enquiry received")

	writeJSON(w, http.StatusAccepted, map[string]string{
		"reference": enq.Reference,
		"status":    "received",
	})
}

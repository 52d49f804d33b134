package catalog

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/devyra-group-admin/devyraengine-digilocale/internal/adapters/observability"
	"github.com/devyra-group-admin/devyraengine-digilocale/internal/domain"
)

// Client talks to the remote catalog API. Failures are expected and cheap:
// the caller falls back to the bundled catalog on any error, so the client
// only has to fail cleanly, not succeed at all costs.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrNotFound     = errors.New("catalog: not found")
	ErrUnauthorized = errors.New("catalog: unauthorized")
	ErrForbidden    = errors.New("catalog: forbidden")
)

// ---- Public API ----

func (c *Client) FetchBusinesses(ctx context.Context) ([]domain.Entity, error) {
	var rows []entityRow
	if err := c.get(ctx, c.base+"/businesses", "businesses", &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Entity, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out, nil
}

func (c *Client) FetchAccommodations(ctx context.Context) ([]domain.Accommodation, error) {
	var rows []accommodationRow
	if err := c.get(ctx, c.base+"/accommodations", "accommodations", &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Accommodation, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toAccommodation())
	}
	return out, nil
}

// ---- wire rows ----

// entityRow is the remote row shape: snake_case fields, position as a
// [lat, lon] pair.
type entityRow struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Website     *string   `json:"website"`
	Position    []float64 `json:"position"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Image       string    `json:"image"`
}

func (r entityRow) toEntity() domain.Entity {
	e := domain.Entity{
		ID:          r.ID,
		Name:        r.Name,
		Category:    domain.Category(r.Category),
		Description: r.Description,
		Address:     r.Address,
		Phone:       r.Phone,
		Website:     r.Website,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		Image:       r.Image,
	}
	if len(r.Position) == 2 {
		e.Coords = &domain.Coords{Lat: r.Position[0], Lon: r.Position[1]}
	}
	return e
}

type accommodationRow struct {
	entityRow
	Price        float64  `json:"price"`
	PriceUnit    string   `json:"price_unit"`
	Amenities    []string `json:"amenities"`
	MaxGuests    int      `json:"max_guests"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime string   `json:"check_out_time"`
}

func (r accommodationRow) toAccommodation() domain.Accommodation {
	a := domain.Accommodation{
		Entity:       r.toEntity(),
		Price:        r.Price,
		PriceUnit:    r.PriceUnit,
		Amenities:    r.Amenities,
		MaxGuests:    r.MaxGuests,
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
	}
	if a.MaxGuests < 1 {
		a.MaxGuests = 1
	}
	return a
}

// ---- transport ----

// get performs a GET with client-side rate limiting, bounded retries and
// JSON decode into out. Retries on 429 and transient 5xx, honoring
// Retry-After when provided.
func (c *Client) get(ctx context.Context, url, endpoint string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if c.key != "" {
			req.Header.Set("apikey", c.key)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "digilocale/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("catalog", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles each attempt (200ms, 400ms, 800ms...) with up to +50%
// jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}

package baselines

import (
	"io"
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"radiation-engine/internal/model"
)

// Fallback is served whenever the live feed is unconfigured, down, or
// incomplete. The values are the documented defaults in mSv/day.
var Fallback = model.RadiationBaseline{
	ISS:         0.3,
	Lunar:       0.5,
	MarsTransit: 1.8,
	DeepSpace:   2.5,
}

type Origin string

const (
	OriginLive     Origin = "LIVE"
	OriginFallback Origin = "FALLBACK"
)

// Result distinguishes "fetched" from "fell back" so callers can decide
// whether to surface a degraded-data advisory. Degraded is false when
// no feed is configured: running on defaults by choice is not an error.
type Result struct {
	Baseline    model.RadiationBaseline
	Origin      Origin
	Degraded    bool
	Substituted []string
}

// Source fetches baseline daily dose rates over HTTP with a bounded
// timeout and a time-bounded cache. Fetch never fails: any transport or
// parsing problem substitutes fallback values.
type Source struct {
	url    string
	ttl    time.Duration
	client *http.Client

	mu        sync.Mutex
	cached    Result
	fetchedAt time.Time
}

func New(url string, ttl time.Duration) *Source {
	return &Source{
		url: url,
		ttl: ttl,
		client: &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Fetch returns the current baseline, hitting the network at most once
// per TTL window.
func (s *Source) Fetch() Result {
	if s.url == "" {
		return Result{Baseline: Fallback, Origin: OriginFallback}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetchedAt.IsZero() && time.Since(s.fetchedAt) < s.ttl {
		return s.cached
	}

	s.cached = s.fetch()
	s.fetchedAt = time.Now()
	return s.cached
}

// feedResponse uses pointers so a key absent from the payload is
// distinguishable from an explicit zero.
type feedResponse struct {
	ISS         *float64 `json:"iss"`
	Lunar       *float64 `json:"lunar"`
	MarsTransit *float64 `json:"mars_transit"`
	DeepSpace   *float64 `json:"deep_space"`
}

func (s *Source) fetch() Result {
	resp, err := s.client.Get(s.url)
	if err != nil {
		return Result{Baseline: Fallback, Origin: OriginFallback, Degraded: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return Result{Baseline: Fallback, Origin: OriginFallback, Degraded: true}
	}

	var feed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return Result{Baseline: Fallback, Origin: OriginFallback, Degraded: true}
	}

	// Partial degradation: substitute per key instead of failing the
	// whole fetch. Negative rates count as missing.
	result := Result{Origin: OriginLive}
	result.Baseline.ISS = pick(feed.ISS, Fallback.ISS, "iss", &result)
	result.Baseline.Lunar = pick(feed.Lunar, Fallback.Lunar, "lunar", &result)
	result.Baseline.MarsTransit = pick(feed.MarsTransit, Fallback.MarsTransit, "mars_transit", &result)
	result.Baseline.DeepSpace = pick(feed.DeepSpace, Fallback.DeepSpace, "deep_space", &result)
	return result
}

func pick(v *float64, fallback float64, key string, r *Result) float64 {
	if v == nil || *v < 0 {
		r.Degraded = true
		r.Substituted = append(r.Substituted, key)
		return fallback
	}
	return *v
}

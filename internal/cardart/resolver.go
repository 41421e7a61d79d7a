// Package cardart maps cards to images on an external card-art source.
//
// Lookups never fail to the caller: an unreachable source, a timeout or a
// non-2xx answer all mark the card as missing so the UI can dim it.
package cardart

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tinytelemetry/clash-analyzer/internal/catalog"
	"github.com/tinytelemetry/clash-analyzer/internal/model"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Status is the result of an art lookup.
type Status int

const (
	StatusUnknown Status = iota
	StatusAvailable
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusMissing:
		return "missing"
	}
	return "unknown"
}

// Config configures a Resolver.
type Config struct {
	Enabled     bool
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
	CacheSize   int
	Client      *http.Client
}

// Resolver builds art URLs and remembers which lookups succeeded.
type Resolver struct {
	enabled     bool
	baseURL     string
	concurrency int
	client      *http.Client
	cache       *lru.Cache[string, Status]
}

// NewResolver creates a resolver. Missing fields use the defaults from
// internal/model.
func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = model.DefaultArtBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = model.DefaultArtTimeout
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = model.DefaultArtConcurrency
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: cfg.Timeout}
	}

	cache, err := lru.New[string, Status](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating art cache: %w", err)
	}

	return &Resolver{
		enabled:     cfg.Enabled,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		concurrency: cfg.Concurrency,
		client:      cfg.Client,
		cache:       cache,
	}, nil
}

// Enabled reports whether the resolver performs lookups.
func (r *Resolver) Enabled() bool {
	return r != nil && r.enabled
}

// URL returns the image URL for a card.
func (r *Resolver) URL(card model.Card) string {
	return r.baseURL + "/" + catalog.Slug(card.Name) + ".png"
}

// Status returns the cached lookup result for a card name.
func (r *Resolver) Status(name string) Status {
	if !r.Enabled() {
		return StatusUnknown
	}
	if s, ok := r.cache.Get(catalog.Slug(name)); ok {
		return s
	}
	return StatusUnknown
}

// Check reports whether the card's image exists. Failures are recorded as
// StatusMissing and never returned.
func (r *Resolver) Check(ctx context.Context, card model.Card) Status {
	if !r.Enabled() {
		return StatusUnknown
	}
	key := catalog.Slug(card.Name)
	if s, ok := r.cache.Get(key); ok {
		return s
	}

	status := r.head(ctx, r.URL(card))
	if ctx.Err() != nil {
		// Cancelled lookups say nothing about the source; retry later.
		return StatusUnknown
	}
	r.cache.Add(key, status)
	return status
}

func (r *Resolver) head(ctx context.Context, url string) Status {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("cardart: building request")
		return StatusMissing
	}
	resp, err := r.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("cardart: lookup failed")
		return StatusMissing
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Int("status", resp.StatusCode).Str("url", url).Msg("cardart: image missing")
		return StatusMissing
	}
	return StatusAvailable
}

// CheckAll checks every card with bounded concurrency and returns the
// number of cards whose art is missing.
func (r *Resolver) CheckAll(ctx context.Context, cards []model.Card) int {
	if !r.Enabled() {
		return 0
	}

	results := make([]Status, len(cards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, c := range cards {
		g.Go(func() error {
			results[i] = r.Check(gctx, c)
			return nil
		})
	}
	_ = g.Wait()

	missing := 0
	for _, s := range results {
		if s == StatusMissing {
			missing++
		}
	}
	log.Info().
		Int("cards", len(cards)).
		Int("missing", missing).
		Msg("cardart: art check finished")
	return missing
}

package cardart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/tinytelemetry/clash-analyzer/internal/model"
)

var (
	knight = model.Card{Name: "Knight", Cost: 3}
	pekka  = model.Card{Name: "P.E.K.K.A", Cost: 7}
)

func newArtServer(t *testing.T, available ...string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	ok := make(map[string]bool, len(available))
	for _, p := range available {
		ok[p] = true
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if ok[r.URL.Path] {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestResolver(t *testing.T, baseURL string) *Resolver {
	t.Helper()
	r, err := NewResolver(Config{Enabled: true, BaseURL: baseURL + "/"})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestURL(t *testing.T) {
	t.Parallel()

	r, err := NewResolver(Config{})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	want := "https://royaleapi.github.io/cr-api-assets/cards/p-e-k-k-a.png"
	if got := r.URL(pekka); got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}

func TestCheck_AvailableAndMissing(t *testing.T) {
	t.Parallel()

	srv, hits := newArtServer(t, "/knight.png")
	r := newTestResolver(t, srv.URL)
	ctx := context.Background()

	if got := r.Status(knight.Name); got != StatusUnknown {
		t.Fatalf("status before check = %v, want unknown", got)
	}
	if got := r.Check(ctx, knight); got != StatusAvailable {
		t.Fatalf("knight = %v, want available", got)
	}
	if got := r.Check(ctx, pekka); got != StatusMissing {
		t.Fatalf("pekka = %v, want missing", got)
	}

	// Cached: no further requests.
	r.Check(ctx, knight)
	r.Check(ctx, pekka)
	if got := hits.Load(); got != 2 {
		t.Fatalf("requests = %d, want 2 (cached)", got)
	}
	if got := r.Status("knight"); got != StatusAvailable {
		t.Fatalf("cached status = %v, want available", got)
	}
}

func TestCheck_UnreachableSourceIsMissing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	r := newTestResolver(t, url)
	if got := r.Check(context.Background(), knight); got != StatusMissing {
		t.Fatalf("status = %v, want missing", got)
	}
}

func TestCheck_CancelledContextNotCached(t *testing.T) {
	t.Parallel()

	srv, hits := newArtServer(t, "/knight.png")
	r := newTestResolver(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := r.Check(ctx, knight); got != StatusUnknown {
		t.Fatalf("cancelled check = %v, want unknown", got)
	}
	if got := r.Check(context.Background(), knight); got != StatusAvailable {
		t.Fatalf("retry = %v, want available", got)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("requests = %d, want 1", got)
	}
}

func TestCheck_Disabled(t *testing.T) {
	t.Parallel()

	srv, hits := newArtServer(t, "/knight.png")
	r, err := NewResolver(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	if got := r.Check(context.Background(), knight); got != StatusUnknown {
		t.Fatalf("disabled check = %v, want unknown", got)
	}
	if got := r.CheckAll(context.Background(), []model.Card{knight, pekka}); got != 0 {
		t.Fatalf("disabled CheckAll missing = %d, want 0", got)
	}
	if got := hits.Load(); got != 0 {
		t.Fatalf("requests = %d, want 0", got)
	}

	var nilResolver *Resolver
	if nilResolver.Enabled() {
		t.Fatal("nil resolver reports enabled")
	}
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	srv, hits := newArtServer(t, "/knight.png", "/the-log.png")
	r := newTestResolver(t, srv.URL)

	cards := []model.Card{knight, pekka, {Name: "The Log", Cost: 2}, {Name: "Mirror", Cost: 1}}
	if got := r.CheckAll(context.Background(), cards); got != 2 {
		t.Fatalf("missing = %d, want 2", got)
	}
	if got := hits.Load(); got != int32(len(cards)) {
		t.Fatalf("requests = %d, want %d", got, len(cards))
	}
	if got := r.Status("Mirror"); got != StatusMissing {
		t.Fatalf("mirror = %v, want missing", got)
	}
	if got := r.Status("The Log"); got != StatusAvailable {
		t.Fatalf("the log = %v, want available", got)
	}
}

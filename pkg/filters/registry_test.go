package filters

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register("upper", Upcase); err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if !registry.Has("upper") {
		t.Fatalf("expected registry to report upper as registered")
	}

	filter, err := registry.Get("upper")
	if err != nil {
		t.Fatalf("get filter: %v", err)
	}
	out, err := filter("abc")
	if err != nil {
		t.Fatalf("apply filter: %v", err)
	}
	if out != "ABC" {
		t.Fatalf("expected ABC, got %v", out)
	}
}

func TestRegistry_DuplicateNameRejected(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register("trim", Trim); err != nil {
		t.Fatalf("register filter: %v", err)
	}

	err := registry.Register("trim", Trim)
	if err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistry_MissingFilter(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Get("nope"); err == nil {
		t.Fatalf("expected missing filter error")
	}
	if _, err := registry.Chain("nope"); err == nil {
		t.Fatalf("expected chain resolution to fail on missing filter")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("zeta", Trim)
	registry.MustRegister("alpha", Trim)
	registry.MustRegister("mid", Trim)

	got := registry.List()
	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected list (-want +got):\n%s", diff)
	}
}

func TestRegistry_EmptyChain(t *testing.T) {
	registry := NewRegistry()

	chain, err := registry.Chain()
	if err != nil {
		t.Fatalf("empty chain: %v", err)
	}
	if chain != nil {
		t.Fatalf("expected nil chain, got %v", chain)
	}

	out, err := chain.Apply("unchanged")
	if err != nil {
		t.Fatalf("apply empty chain: %v", err)
	}
	if out != "unchanged" {
		t.Fatalf("expected value unchanged, got %v", out)
	}
}

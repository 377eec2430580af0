package filters

import (
	"errors"
	"fmt"
	"testing"
)

func wrapFilter(tag string) Filter {
	return func(value any) (any, error) {
		return fmt.Sprintf("%s(%v)", tag, value), nil
	}
}

func TestChain_AppliesRightToLeft(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister("outer", wrapFilter("outer"))
	registry.MustRegister("inner", wrapFilter("inner"))

	chain, err := registry.Chain("outer", "inner")
	if err != nil {
		t.Fatalf("resolve chain: %v", err)
	}

	out, err := chain.Apply("x")
	if err != nil {
		t.Fatalf("apply chain: %v", err)
	}

	// The last-declared filter runs first; the first-declared produces the
	// final value, like the nested call outer(inner(x)).
	if out != "outer(inner(x))" {
		t.Fatalf("expected outer(inner(x)), got %v", out)
	}
}

func TestChain_ErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	chain := Chain{
		wrapFilter("never"),
		func(any) (any, error) { return nil, boom },
	}

	if _, err := chain.Apply("x"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestChain_SkipsNilFilters(t *testing.T) {
	chain := Chain{nil, wrapFilter("only")}

	out, err := chain.Apply("x")
	if err != nil {
		t.Fatalf("apply chain: %v", err)
	}
	if out != "only(x)" {
		t.Fatalf("expected only(x), got %v", out)
	}
}

package id

import (
	"strings"
	"testing"
)

func TestRandomGenerator_NewID(t *testing.T) {
	g := NewRandomGenerator("sess_")

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if !strings.HasPrefix(first, "sess_") {
		t.Fatalf("missing prefix: %q", first)
	}
	if len(first) != len("sess_")+32 {
		t.Fatalf("unexpected id length: %d", len(first))
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
}

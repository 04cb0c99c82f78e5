package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContactService_Submit(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	svc := NewContactService(logging.FromZap(zap.New(core)))

	err := svc.Submit(context.Background(), ContactMessage{Name: "Léa", Email: "Lea@Example.org", Message: "Training times?"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	entries := logs.FilterMessage("contact message received").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["email"]; got != "lea@example.org" {
		t.Fatalf("unexpected email field: %v", got)
	}

	cases := []ContactMessage{
		{Email: "lea@example.org", Message: "hi"},
		{Name: "Léa", Email: "nope", Message: "hi"},
		{Name: "Léa", Email: "lea@example.org", Message: strings.Repeat("x", maxContactMessageLength+1)},
	}
	for _, msg := range cases {
		if err := svc.Submit(context.Background(), msg); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", msg.Name, err)
		}
	}
}

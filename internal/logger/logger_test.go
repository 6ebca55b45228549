package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must be usable as a full zerolog logger
	l.Info().Str("k", "v").Msg("discarded")
	l.Err(nil).Msg("discarded too")
}

func TestFromContext_RoundTrip(t *testing.T) {
	l := Nop()
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("FromContext returned nil")
	}
	got.Debug().Msg("ok")
}

func TestFromRequest_NeverNil(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/vault", nil)
	if FromRequest(r) == nil {
		t.Fatal("FromRequest returned nil for request without attached logger")
	}
}

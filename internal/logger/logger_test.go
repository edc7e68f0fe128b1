package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// не должно паниковать и ничего не пишет
	log.Info().Str("k", "v").Msg("dropped")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestFromContext_RoundTrip(t *testing.T) {
	base := zerolog.Nop()
	ctx := base.WithContext(context.Background())

	log := FromContext(ctx)
	require.NotNil(t, log)
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestFromRequest(t *testing.T) {
	base := zerolog.Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	log := FromRequest(r)
	require.NotNil(t, log)
}

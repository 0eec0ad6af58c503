package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap/zaptest"

	"github.com/xenking/music-store/internal/console"
)

func TestRun_Checkout(t *testing.T) {
	var out strings.Builder
	cfg := &Config{Name: "Test Store", Currency: "$"}

	err := run(context.Background(), zaptest.NewLogger(t),
		noop.NewMeterProvider(), tracenoop.NewTracerProvider(),
		cfg, strings.NewReader("a\n2\n3\nm\nc\ny\n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "\nTest Store\n")
	assert.Contains(t, out.String(), "YOUR CART ($13.47)")
	assert.NotContains(t, out.String(), "\033[1m")
	assert.Contains(t, out.String(), "Proceeding to payment...")
}

func TestRun_Bold(t *testing.T) {
	var out strings.Builder
	cfg := &Config{Name: "The Music Store", Currency: "£", Bold: true}

	err := run(context.Background(), zaptest.NewLogger(t),
		noop.NewMeterProvider(), tracenoop.NewTracerProvider(),
		cfg, strings.NewReader("a\n1\n1\nm\nc\ny\n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "\033[1mThe Music Store\n\033[0m")
}

func TestRun_InputClosed(t *testing.T) {
	cfg := &Config{Name: "The Music Store", Currency: "£"}

	err := run(context.Background(), zaptest.NewLogger(t),
		noop.NewMeterProvider(), tracenoop.NewTracerProvider(),
		cfg, strings.NewReader("a\n"), &strings.Builder{})

	require.ErrorIs(t, err, console.ErrInputClosed)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("STORE_NAME", "Drum Shop")
	t.Setenv("STORE_CURRENCY", "€")
	t.Setenv("STORE_BOLD", "false")

	cfg, err := loadConfig(true)

	require.NoError(t, err)
	assert.Equal(t, "Drum Shop", cfg.Name)
	assert.Equal(t, "€", cfg.Currency)
	assert.False(t, cfg.Bold)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(true)

	require.NoError(t, err)
	assert.Equal(t, "The Music Store", cfg.Name)
	assert.Equal(t, "£", cfg.Currency)
	assert.True(t, cfg.Bold)
}

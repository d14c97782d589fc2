package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
)

func TestNewWithoutEndpointInstallsNoopProvider(t *testing.T) {
	provider, err := New(context.Background(), config.Config{ServiceName: "espaco-bk"}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, provider)

	// Construction must register the global provider; spans started through
	// the otel global are non-recording when tracing is disabled.
	_, span := otel.Tracer("test").Start(context.Background(), "op")
	require.False(t, span.IsRecording())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestShutdownNilSafe(t *testing.T) {
	var provider *Provider
	require.NoError(t, provider.Shutdown(context.Background()))
}

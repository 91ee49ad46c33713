//go:build unit || e2e

package handler_test

import (
	"context"
	"testing"
	"time"

	"little-lemon/cmd/bootstrap"
	"little-lemon/cmd/bootstrap/components"
	"little-lemon/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// newTestApp wires the application the way serve does, minus the listener.
// A nil pool selects the in-process availability and submitter.
func newTestApp(t *testing.T, cfg config.Config, pool *pgxpool.Pool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine
	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app failed to start")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
	return router
}

func testConfig() config.Config {
	cfg := config.NewTestConfig()
	cfg.Booking.TimeZone = "UTC"
	return cfg
}

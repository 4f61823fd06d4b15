package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-steps/internal/config"
	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
	"github.com/comitanigiacomo/kanso-steps/internal/core/services"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Storage:         config.StorageMemory,
		Location:        time.UTC,
		DailyGoal:       8000,
		DefaultWindow:   domain.WindowAllTime,
		NotificationTTL: time.Second,
	}
}

func TestNew_Memory(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, memoryConfig())
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.DB)
	assert.Nil(t, a.Redis)
	assert.Nil(t, a.Tokens)
	assert.Nil(t, a.Auth)

	require.NoError(t, a.Dashboard.Init(ctx, true))

	d, err := a.Dashboard.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WindowAllTime, d.Window)
	assert.Equal(t, 8000, d.DailyGoal)
	assert.Len(t, d.Entries, len(domain.SeedEntries(time.UTC)))

	families, err := a.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNew_AuthEnabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.JWTSecret = "secret"
	cfg.JWTIssuer = "kanso-test"
	cfg.TokenTTL = time.Hour

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	require.NotNil(t, a.Tokens)
	require.NotNil(t, a.Auth)

	_, err = a.Auth.Login(context.Background(), services.LoginInput{Password: "anything-at-all"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestNew_PostgresUnreachable(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage = config.StoragePostgres
	cfg.DBHost = "127.0.0.1"
	cfg.DBPort = "1"
	cfg.DBUser = "nobody"
	cfg.DBName = "nothing"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := New(ctx, cfg)
	assert.Error(t, err)
}

func TestNew_RedisUnreachableFallsBack(t *testing.T) {
	cfg := memoryConfig()
	cfg.RedisHost = "127.0.0.1"
	cfg.RedisPort = "1"

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Redis)
}

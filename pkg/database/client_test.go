package database_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loreweave/loreweave/pkg/database"
	testdb "github.com/loreweave/loreweave/test/database"
)

// clearDBEnv blanks every DB_* variable so ambient environment never leaks
// into the table cases. getEnvOrDefault treats empty as unset.
func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearDBEnv(t)

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "loreweave", cfg.User)
		assert.Empty(t, cfg.Password)
		assert.Equal(t, "loreweave", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("custom values", func(t *testing.T) {
		clearDBEnv(t)
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "admin")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "production")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("DB_MAX_OPEN_CONNS", "50")
		t.Setenv("DB_MAX_IDLE_CONNS", "20")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "secret", cfg.Password)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
		assert.Equal(t, 20, cfg.MaxIdleConns)
	})

	t.Run("invalid DB_PORT", func(t *testing.T) {
		clearDBEnv(t)
		t.Setenv("DB_PORT", "invalid")

		_, err := database.LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := database.Config{
		Host:     "localhost",
		Port:     5432,
		User:     "loreweave",
		Password: "secret",
		Database: "loreweave",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=loreweave password=secret dbname=loreweave sslmode=disable",
		cfg.DSN())
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestDocumentContainmentQuery(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	seed := func(zone string, document map[string]interface{}) string {
		job, err := client.ResearchJob.Create().
			SetID(uuid.New().String()).
			SetZoneName(zone).
			SetBudgetTokens(500_000).
			Save(ctx)
		require.NoError(t, err)

		pkg, err := client.LorePackage.Create().
			SetID(uuid.New().String()).
			SetJobID(job.ID).
			SetZoneName(zone).
			SetDocument(document).
			Save(ctx)
		require.NoError(t, err)
		return pkg.ID
	}

	emberfall := seed("Emberfall Reach", map[string]interface{}{
		"zone": map[string]interface{}{"name": "Emberfall Reach", "region": "The Cinder Marches"},
		"npcs": []interface{}{map[string]interface{}{"name": "Warden Maro"}},
	})
	gloomvale := seed("Gloomvale", map[string]interface{}{
		"zone": map[string]interface{}{"name": "Gloomvale", "region": "The Mirthless Vale"},
		"npcs": []interface{}{map[string]interface{}{"name": "Sel the Cartographer"}},
	})

	// Containment queries are what the jsonb_path_ops GIN index serves.
	queryIDs := func(probe string) []string {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT package_id FROM lore_packages WHERE document @> $1::jsonb`, probe)
		require.NoError(t, err)
		defer rows.Close()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		require.NoError(t, rows.Err())
		return ids
	}

	assert.Equal(t, []string{emberfall}, queryIDs(`{"zone": {"region": "The Cinder Marches"}}`))
	assert.Equal(t, []string{gloomvale}, queryIDs(`{"npcs": [{"name": "Sel the Cartographer"}]}`))
	assert.Empty(t, queryIDs(`{"zone": {"name": "Hollowmere"}}`))
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	// Response time can be 0 for very fast local pings
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should come back within a second")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// A nanosecond reading would exceed 1,000,000 even for a sub-millisecond ping
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0))
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be milliseconds, not nanoseconds")

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
	assert.Less(t, waitDuration, float64(1000000), "wait_duration_ms should be milliseconds, not nanoseconds")
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-induction-ai/fleet"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "AI_TIMEOUT", "FLEET_PROFILE",
		"SERVER_PORT", "GIN_MODE", "LOG_MODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "kochi_metro.db", cfg.DBPath)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.ErrorIs(t, cfg.RequireAPIKey(), ErrMissingAPIKey)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("API_KEY", "secret")
	t.Setenv("AI_TIMEOUT", "15s")
	t.Setenv("SERVER_PORT", "9090")

	cfg := Load()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 15*time.Second, cfg.AITimeout)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestLoadGeminiKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "from-gemini")

	cfg := Load()
	assert.Equal(t, "from-gemini", cfg.APIKey)
}

func TestLoadInvalidTimeoutFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_TIMEOUT", "soon")

	assert.Equal(t, 60*time.Second, Load().AITimeout)
}

func TestRequireAPIKeyWhitespace(t *testing.T) {
	cfg := &Config{APIKey: "   "}
	assert.ErrorIs(t, cfg.RequireAPIKey(), ErrMissingAPIKey)
}

func TestLoadProfileDefault(t *testing.T) {
	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, fleet.DefaultProfile(), p)
}

func TestLoadProfileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	data := []byte(`
count: 25
baseDate: "2024-03-01"
healthWeights:
  mileage: -0.02
distributions:
  age:
    min: 2
    max: 4
    kind: int
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, 25, p.Count)
	assert.Equal(t, "2024-03-01", p.BaseDate)
	assert.Equal(t, -0.02, p.HealthWeights.Mileage)
	assert.Equal(t, 10.0, p.HealthWeights.Efficiency)
	assert.Equal(t, fleet.Range{Min: 2, Max: 4, Kind: fleet.KindInt}, p.Distributions[fleet.FieldAge])
	assert.Equal(t, fleet.DefaultProfile().Distributions[fleet.FieldMileage], p.Distributions[fleet.FieldMileage])
}

func TestParseProfileInvalid(t *testing.T) {
	_, err := ParseProfile([]byte("distributions:\n  age: {min: 9, max: 1, kind: int}\n"))
	assert.ErrorContains(t, err, "exceeds max")

	_, err = ParseProfile([]byte("count: [not, a, number]"))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestParseProfileRejectsUnknownKeys(t *testing.T) {
	_, err := ParseProfile([]byte("healthWeight:\n  mileage: -0.02\n"))
	assert.ErrorContains(t, err, "healthWeight")

	_, err = ParseProfile([]byte("thresholds:\n  maintenence: 20\n"))
	assert.ErrorContains(t, err, "maintenence")
}

func TestParseProfileEmpty(t *testing.T) {
	p, err := ParseProfile(nil)
	require.NoError(t, err)
	assert.Equal(t, fleet.DefaultProfile(), p)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	assert.True(t, len(rules) > 0)
	assert.Contains(t, rules, "Maintenance")
	assert.Equal(t, rules, strings.TrimSpace(rules))
}

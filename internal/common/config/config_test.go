package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"standcast-backend/internal/features/stats/grading"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NEYNAR_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Neynar.APIKey)
	assert.Equal(t, 150, cfg.Neynar.SampleLimit)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 6*time.Second, cfg.ChainTimeout())
	assert.False(t, cfg.Redis.Enabled)

	policy, err := cfg.GradingPolicy()
	require.NoError(t, err)
	assert.Equal(t, grading.DefaultPolicy(), policy, "env defaults match the reference policy")
}

func TestLoadThresholdOverride(t *testing.T) {
	t.Setenv("NEYNAR_API_KEY", "test-key")
	t.Setenv("GRADING_DURABILITY", "2000,800,200,50")

	cfg, err := Load()
	require.NoError(t, err)

	policy, err := cfg.GradingPolicy()
	require.NoError(t, err)
	assert.Equal(t, grading.NewThresholds(2000, 800, 200, 50), policy.Durability)
	assert.Equal(t, grading.DefaultPolicy().Range, policy.Range, "untouched ladders keep defaults")
}

func TestLoadRejectsBadThresholds(t *testing.T) {
	t.Setenv("NEYNAR_API_KEY", "test-key")
	t.Setenv("GRADING_RANGE", "10,20,30,40")

	cfg, err := Load()
	require.NoError(t, err)

	_, err = cfg.GradingPolicy()
	assert.Error(t, err, "a non-descending override fails at startup")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "data/studyport.db", cfg.DBPath)
	require.Equal(t, 15, cfg.AIDailyLimit)
	require.Equal(t, 15, cfg.EmpowermentDailyLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_DAILY_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 5, cfg.AIDailyLimit)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("SMTP_PORT", "2525")

	cfg := LoadConfig()
	require.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	require.Equal(t, 2525, cfg.SMTPPort)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SMTP_PORT", "")

	cfg := LoadConfig()
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, "3000", cfg.Port)
}

func TestSMTPPortFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := LoadConfig()
	require.Equal(t, 587, cfg.SMTPPort)
}

package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "", cfg.Lexicons.File)
	assert.Equal(t, "", cfg.Lexicons.SlangFile)
}

func TestInitializeConfig_EnvOverride(t *testing.T) {
	t.Setenv("UCAP_LOG_LEVEL", "debug")
	t.Setenv("UCAP_CSV_DELIMITER", ";")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{}
	valid.Log.Level = "info"
	valid.Log.Format = "text"
	valid.CSV.Delimiter = ","
	assert.NoError(t, validateConfig(valid))

	badLevel := *valid
	badLevel.Log.Level = "chatty"
	assert.Error(t, validateConfig(&badLevel))

	badFormat := *valid
	badFormat.Log.Format = "xml"
	assert.Error(t, validateConfig(&badFormat))

	badDelimiter := *valid
	badDelimiter.CSV.Delimiter = "--"
	assert.Error(t, validateConfig(&badDelimiter))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.Level)
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)

	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.InfoLevel, logger.Level)
	_, ok = logger.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("UCAP_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("UCAP_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("UCAP_TEST_MISSING", "fallback"))
}

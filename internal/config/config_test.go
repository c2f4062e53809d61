package config

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type envTestConfig struct {
	Port int `env:"KATAS_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("KATAS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"KATAS_LOG_LEVEL", "KATAS_OUTPUT", "KATAS_LANG"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info", Output: "text", Lang: "en"}, cfg)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KATAS_LOG_LEVEL", "debug")
	t.Setenv("KATAS_OUTPUT", "json")
	t.Setenv("KATAS_LANG", "de-DE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)

	tag, err := cfg.Tag()
	require.NoError(t, err)
	assert.Equal(t, language.MustParse("de-DE"), tag)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		key, value string
		want       error
	}{
		{"KATAS_OUTPUT", "yaml", ErrBadOutput},
		{"KATAS_LOG_LEVEL", "loud", ErrBadLogLevel},
		{"KATAS_LANG", "not a tag!", ErrBadLang},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Config{LogLevel: "warn"}.NewLogger(&buf)

	log.Info("hidden")
	log.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=1")
}

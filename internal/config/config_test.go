package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	from, to := cfg.App().DefaultPair()
	assert.Equal(t, "EUR", from)
	assert.Equal(t, "USD", to)
	assert.Equal(t, 100.0, cfg.App().Amount())
	assert.False(t, cfg.App().NotifyByDefault())
	assert.Equal(t, 100.0, cfg.App().Threshold())
	assert.Equal(t, DriverSQLite, cfg.Storage().Driver())
	assert.Equal(t, "history.sqlite3", cfg.Storage().DSN())
	assert.False(t, cfg.Kafka().Enabled())
	assert.False(t, cfg.Telegram().Enabled())
}

func Test_OnYamlFile_ShouldOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  default-from: GBP
  default-to: JPY
  default-amount: 25.5
  notify-enabled: true
  notify-threshold: 180
storage:
  driver: memory
kafka:
  brokers: ["localhost:9092"]
  alerts-topic: alerts
`)
	cfg, err := New(path)
	require.NoError(t, err)

	from, to := cfg.App().DefaultPair()
	assert.Equal(t, "GBP", from)
	assert.Equal(t, "JPY", to)
	assert.Equal(t, 25.5, cfg.App().Amount())
	assert.True(t, cfg.App().NotifyByDefault())
	assert.Equal(t, 180.0, cfg.App().Threshold())
	assert.Equal(t, DriverMemory, cfg.Storage().Driver())
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka().Brokers())
	assert.Equal(t, "alerts", cfg.Kafka().AlertsTopic())
	// untouched keys keep their defaults
	assert.Equal(t, "Currency Converter", cfg.App().AppTitle())
}

func Test_OnEnvOverride_ShouldWinOverYaml(t *testing.T) {
	path := writeConfig(t, "storage:\n  source: from-yaml.sqlite3\n")
	t.Setenv("CURRCONV_STORAGE_SOURCE", "from-env.sqlite3")
	t.Setenv("CURRCONV_APP_NOTIFY_THRESHOLD", "1.25")

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.sqlite3", cfg.Storage().DSN())
	assert.Equal(t, 1.25, cfg.App().Threshold())
}

func Test_OnInvalidValues_ShouldFail(t *testing.T) {
	cases := map[string]string{
		"bad currency":  "app:\n  default-from: euro\n",
		"long currency": "app:\n  default-to: USDT\n",
		"neg amount":    "app:\n  default-amount: -1\n",
		"neg threshold": "app:\n  notify-threshold: -0.5\n",
		"bad driver":    "storage:\n  driver: mongo\n",
		"broken yaml":   "app: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func Test_OnUnprefixedEnv_ShouldBeIgnored(t *testing.T) {
	for key, value := range map[string]string{
		"SOURCE":  "leaked.sqlite3",
		"TITLE":   "leaked title",
		"DRIVER":  "mysql",
		"TOKEN":   "leaked-token",
		"BROKERS": "leaked:9092",
		"ENABLED": "true",
		"ADDR":    ":1",
	} {
		t.Setenv(key, value)
	}

	cfg, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "history.sqlite3", cfg.Storage().DSN())
	assert.Equal(t, DriverSQLite, cfg.Storage().Driver())
	assert.Equal(t, "Currency Converter", cfg.App().AppTitle())
	assert.Empty(t, cfg.Telegram().Token())
	assert.False(t, cfg.Kafka().Enabled())
	assert.False(t, cfg.Tracing().Enabled())
	assert.Empty(t, cfg.Metrics().Addr())
}

func Test_OnPrefixedEnv_ShouldReachNestedKeys(t *testing.T) {
	t.Setenv("CURRCONV_STORAGE_DRIVER_NAME", DriverMemory)
	t.Setenv("CURRCONV_RATES_FIXER_KEY", "secret")
	t.Setenv("CURRCONV_KAFKA_BROKER_LIST", "a:9092,b:9092")

	cfg, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage().Driver())
	assert.Equal(t, "secret", cfg.Fixer().ApiKey())
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka().Brokers())
}

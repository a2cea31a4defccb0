package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"llm": { "endpoint": "http://10.0.0.1:8000", "model": "local-coach" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posecoach.cfg.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, "http://10.0.0.1:8000", viper.GetString("llm.endpoint"))
	assert.Equal(t, "local-coach", viper.GetString("llm.model"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posecoach.cfg.json"), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./coachlogs", viper.GetString("logsDir"))
	assert.Equal(t, "http://localhost:11434", viper.GetString("llm.endpoint"))
	assert.Equal(t, "", viper.GetString("llm.apiKey"))
	assert.Equal(t, 60, viper.GetInt("llm.timeoutSeconds"))
	assert.Equal(t, 500, viper.GetInt("validation.maxWords"))
	assert.Equal(t, "memory", viper.GetString("storage.type"))
	assert.Equal(t, "localhost", viper.GetString("db.host"))
	assert.Equal(t, "5432", viper.GetString("db.port"))
	assert.Equal(t, "posecoach", viper.GetString("db.database"))
	assert.Equal(t, false, viper.GetBool("influx.enabled"))
	assert.Equal(t, false, viper.GetBool("otel.enabled"))
	assert.Equal(t, false, viper.GetBool("graylog.enabled"))
	assert.Equal(t, "localhost:12201", viper.GetString("graylog.address"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestStorage_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posecoach.cfg.json"), []byte(`{}`), 0644))
	require.NoError(t, Load(dir))

	cfg := Storage()
	assert.Equal(t, "memory", cfg.Type)
	assert.Equal(t, "./feedback.db", cfg.Sqlite.DumpPath)
	assert.Equal(t, 30*time.Second, cfg.Sqlite.DumpInterval)
	assert.Equal(t, false, cfg.Stream.Enabled)
}

func TestStorage_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"storage": {
			"type": "sqlite",
			"sqlite": { "dumpPath": "/tmp/fb.db", "dumpInterval": "10m" },
			"stream": { "enabled": true, "url": "ws://dash:5001/stream" }
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posecoach.cfg.json"), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	sc := Storage()
	assert.Equal(t, "sqlite", sc.Type)
	assert.Equal(t, "/tmp/fb.db", sc.Sqlite.DumpPath)
	assert.Equal(t, 10*time.Minute, sc.Sqlite.DumpInterval)
	assert.Equal(t, true, sc.Stream.Enabled)
	assert.Equal(t, "ws://dash:5001/stream", sc.Stream.URL)
}

func TestGetString(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")
	assert.Equal(t, "testValue", GetString("testKey"))
}

func TestGetInt(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testInt", 42)
	assert.Equal(t, 42, GetInt("testInt"))
}

func TestGetBool(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testBool", true)
	assert.Equal(t, true, GetBool("testBool"))
}

package providers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpt/internal/structures"
)

func loggerConfig(dir string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "debug",
			Mode:  0o644,
			Dir:   dir,
		},
	}
}

func TestLogProvider_WritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogProvider(loggerConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "hello %s", "world")

	name := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello world", entry["message"])
	assert.Equal(t, "app", entry["type"])
	assert.Equal(t, "info", entry["level"])
}

func TestLogProvider_ChannelTypes(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogProvider(loggerConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	logger.Warnf(TypeParse, "bad block")
	logger.Errorf(TypeScrape, "fetch failed")

	name := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"parse"`)
	assert.Contains(t, string(data), `"type":"scrape"`)
}

func TestLogProvider_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	conf := loggerConfig(dir)
	conf.Logger.Level = "error"

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Debugf(TypeApp, "not written")
	logger.Infof(TypeApp, "not written either")

	name := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLogProvider_MissingDirFails(t *testing.T) {
	_, err := NewLogProvider(loggerConfig("/nonexistent/fpt-logs"))
	assert.Error(t, err)
}

func TestLogProvider_BadLevelFails(t *testing.T) {
	conf := loggerConfig(t.TempDir())
	conf.Logger.Level = "loud"
	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

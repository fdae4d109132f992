package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpt/internal/structures"
)

const testConfigYaml = `
webServer:
  host: "127.0.0.1"
  port: 9090

logger:
  level: "info"
  mode: 420
  dir: "%s"

scrape:
  headless: true
  pageTimeout: 45
  resultSelector: "div.resultWrapper"

trend:
  interval: 3600
  country: "uk"
  archiveDir: "%s"

storage:
  dbPath: "%s"

cache:
  enabled: true
  size: 8

metrics:
  enabled: false

rules:
  permittedJourneyTypes: ["one-way", "return"]
  maxCityOptions: 3

countries:
  uk:
    baseUrl: "https://flights.example/uk/"
    currencySymbol: "£"
    adMarker: "Ad"
    selectLabel: "Select"

compoundAirports:
  LON: "LHR"

searches:
  - journeyType: "return"
    origin: ["LHR"]
    destination: ["DEL"]
    leaveDates: ["2026-10-02"]
    returnDate: "2026-10-16"
`

func TestNewConfigProvider_LoadsYaml(t *testing.T) {
	dir := t.TempDir()
	yaml := fmt.Sprintf(testConfigYaml, dir, dir, filepath.Join(dir, "fpt.db"))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "FlightPriceTrendsDaemon", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, 9090, conf.WebServer.Port)
	assert.Equal(t, "uk", conf.Trend.Country)
	assert.Equal(t, "£", conf.Country().CurrencySymbol)
	assert.Equal(t, "LHR", conf.CompoundAirports["LON"])
	require.Len(t, conf.Searches, 1)
	assert.Equal(t, "2026-10-16", conf.Searches[0].ReturnDate)
}

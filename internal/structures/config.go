package structures

import (
	"net/http"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	RunOnce    bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type ScrapeConfig struct {
	Headless        bool          `yaml:"headless"`
	PageTimeout     time.Duration `yaml:"pageTimeout" validate:"required|min:1"`
	SettleDelay     time.Duration `yaml:"settleDelay"`
	RatePerSecond   float64       `yaml:"ratePerSecond"`
	RateBurst       int           `yaml:"rateBurst"`
	UserAgent       string        `yaml:"userAgent"`
	ResultSelector  string        `yaml:"resultSelector" validate:"required"`
	ConsentSelector string        `yaml:"consentSelector"`
}

// CountryConfig carries the per-domain site constants: the base search URL
// and the textual markers the listing page uses for that locale.
type CountryConfig struct {
	BaseUrl        string `yaml:"baseUrl" validate:"required"`
	CurrencySymbol string `yaml:"currencySymbol" validate:"required"`
	AdMarker       string `yaml:"adMarker" validate:"required"`
	SelectLabel    string `yaml:"selectLabel" validate:"required"`
}

type TrendConfig struct {
	Interval   time.Duration `yaml:"interval" validate:"required|min:1"`
	Country    string        `yaml:"country" validate:"required"`
	ArchiveDir string        `yaml:"archiveDir" validate:"required|unixPath"`
}

type StorageConfig struct {
	DBPath string `yaml:"dbPath" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// SearchSpec is one tracked flight search from the config file. The scheduler
// re-runs every spec each interval so price observations accumulate over time.
type SearchSpec struct {
	JourneyType string   `yaml:"journeyType" validate:"required"`
	Origin      []string `yaml:"origin" validate:"required"`
	Destination []string `yaml:"destination" validate:"required"`
	LeaveDates  []string `yaml:"leaveDates" validate:"required"`
	ReturnDate  string   `yaml:"returnDate"`
	Flex        string   `yaml:"flex"`
}

type SearchRules struct {
	PermittedJourneyTypes []string          `yaml:"permittedJourneyTypes" validate:"required"`
	PermittedFlex         map[string]string `yaml:"permittedFlex"`
	MaxCityOptions        int               `yaml:"maxCityOptions" validate:"required|min:1"`
}

type Config struct {
	AppName          string
	Debug            bool
	Path             string
	WebServer        Server                   `yaml:"webServer"`
	Logger           LoggerConfig             `yaml:"logger"`
	Scrape           ScrapeConfig             `yaml:"scrape"`
	Trend            TrendConfig              `yaml:"trend"`
	Storage          StorageConfig            `yaml:"storage"`
	Cache            CacheConfig              `yaml:"cache"`
	Metrics          MetricsConfig            `yaml:"metrics"`
	Rules            SearchRules              `yaml:"rules"`
	Countries        map[string]CountryConfig `yaml:"countries"`
	CompoundAirports map[string]string        `yaml:"compoundAirports"`
	Searches         []SearchSpec             `yaml:"searches"`
}

// Country returns the active country block; the config validator has already
// checked that trend.country names an existing entry.
func (c *Config) Country() CountryConfig {
	return c.Countries[c.Trend.Country]
}

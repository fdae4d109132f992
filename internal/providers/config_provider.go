package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"fpt/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "FPT_LOG_LEVEL")
	viper.BindEnv("trend.interval", "FPT_TREND_INTERVAL")
	viper.BindEnv("trend.country", "FPT_COUNTRY")
	viper.BindEnv("storage.dbPath", "FPT_DB_PATH")
	viper.BindEnv("scrape.headless", "FPT_HEADLESS")
	viper.BindEnv("cache.enabled", "FPT_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FPT_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "FlightPriceTrendsDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

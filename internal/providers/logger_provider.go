package providers

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"fpt/internal/structures"
)

type TypeEnum string

const (
	TypeApp    TypeEnum = "app"
	TypeScrape TypeEnum = "scrape"
	TypeParse  TypeEnum = "parse"
	TypeGeo    TypeEnum = "geo"
	TypeStore  TypeEnum = "store"
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	log  zerolog.Logger
	file *os.File
}

// NewLogProvider opens one log file per calendar day in the configured dir.
// The dir must exist; refusing to create it catches path typos at startup.
func NewLogProvider(conf *structures.Config) (Logger, error) {
	name := time.Now().Format("2006-01-02") + ".log"
	file, err := os.OpenFile(
		filepath.Join(conf.Logger.Dir, name),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		os.FileMode(conf.Logger.Mode),
	)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		file.Close()
		return nil, err
	}

	var w zerolog.LevelWriter = zerolog.MultiLevelWriter(file)
	if conf.Debug {
		w = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stdout})
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &LogProvider{log: log, file: file}, nil
}

func (p *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	p.log.Error().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	p.log.Warn().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	p.log.Info().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	p.log.Debug().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	p.log.Fatal().Str("type", string(t)).Msgf(format, args...)
}

func (p *LogProvider) Close() {
	if p.file != nil {
		_ = p.file.Close()
	}
}

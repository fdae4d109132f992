package scrape

import (
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"fpt/internal/providers"
	"fpt/internal/structures"
)

// RawCapture is one scrape's raw output: every result-block text as it came
// off the page, before any parsing. Archived captures allow re-parsing after
// an engine fix without re-scraping.
type RawCapture struct {
	SearchID  string    `json:"search_id"`
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetched_at"`
	Blocks    []string  `json:"blocks"`
}

type BlockArchive struct {
	dir        string
	compressor CompressorInterface
	logger     providers.Logger
}

func NewBlockArchive(conf *structures.Config, compressor CompressorInterface, logger providers.Logger) *BlockArchive {
	return &BlockArchive{
		dir:        conf.Trend.ArchiveDir,
		compressor: compressor,
		logger:     logger,
	}
}

// Save writes one capture as a compressed JSON file named after the search
// id and fetch instant. The write goes through a tmp file and rename so a
// crash never leaves a torn archive entry.
func (a *BlockArchive) Save(capture *RawCapture) error {
	jsonData, err := json.Marshal(capture)
	if err != nil {
		return err
	}
	data, err := a.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	name := capture.SearchID[:12] + "-" + capture.FetchedAt.Format("20060102T150405") + ".zst"
	fileName := filepath.Join(a.dir, name)

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, fileName); err != nil {
		return err
	}

	a.logger.Debugf(providers.TypeScrape, "Archived %d blocks to %s", len(capture.Blocks), fileName)
	return nil
}

// Load reads one archived capture back.
func (a *BlockArchive) Load(fileName string) (*RawCapture, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	jsonData, err := a.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}

	var capture RawCapture
	if err := json.Unmarshal(jsonData, &capture); err != nil {
		return nil, err
	}
	return &capture, nil
}

func (a *BlockArchive) Close() {
	a.compressor.Close()
}

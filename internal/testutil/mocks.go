package testutil

import (
	"context"
	"sync"
	"time"

	"fpt/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountLevel returns how many entries were logged at the given level.
func (m *MockLogger) CountLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu             sync.Mutex
	BlocksSeen     int
	BlocksDropped  map[string]int
	JourneysParsed int
	PricesStored   int
	ScrapeObs      int
	StoreObs       int
	Requests       int
	RequestObs     int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{BlocksDropped: make(map[string]int)}
}

func (m *MockMetrics) IncBlocksSeen(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BlocksSeen += n
}

func (m *MockMetrics) IncBlocksDropped(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BlocksDropped[reason]++
}

func (m *MockMetrics) IncJourneysParsed(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JourneysParsed += n
}

func (m *MockMetrics) IncPricesStored(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PricesStored += n
}

func (m *MockMetrics) ObserveScrapeDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ScrapeObs++
}

func (m *MockMetrics) ObserveStoreDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoreObs++
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestObs++
}

// MockCache implements providers.CacheProviderInterface over a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) SetWithTTL(key string, value []byte, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockFetcher implements scrape.BlockSource, serving canned blocks per URL.
type MockFetcher struct {
	mu      sync.Mutex
	Blocks  map[string][]string
	Err     error
	Fetched []string
}

func (m *MockFetcher) FetchBlocks(_ context.Context, url string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fetched = append(m.Fetched, url)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Blocks[url], nil
}

// MockStore implements store.StoreInterface and records inserts.
type MockStore struct {
	mu      sync.Mutex
	Inserts map[string][][]any
	Err     error
	Closed  bool
}

func NewMockStore() *MockStore {
	return &MockStore{Inserts: make(map[string][][]any)}
}

func (m *MockStore) Insert(table string, _ []string, rows [][]any) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.Inserts[table] = append(m.Inserts[table], rows...)
	return int64(len(rows)), nil
}

func (m *MockStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

package testutil

import (
	"context"
	"strings"
	"sync"
)

// MockFetcher is a mock implementation of the fetcher.Fetcher interface for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context, url string) (string, error)

	mu   sync.Mutex
	URLs []string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context, url string) (string, error) {
	m.mu.Lock()
	m.URLs = append(m.URLs, url)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	return "", nil
}

// NewMockFetcher creates a mock fetcher that always returns body and err
func NewMockFetcher(body string, err error) *MockFetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context, url string) (string, error) {
			return body, err
		},
	}
}

// Event is one call recorded by a Recorder
type Event struct {
	Level string
	Msg   string
	Args  []any
}

// Recorder is a report.Reporter that keeps every event in memory
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

func (r *Recorder) record(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Level: level, Msg: msg, Args: args})
}

func (r *Recorder) Notice(_ context.Context, msg string, args ...any) {
	r.record("notice", msg, args)
}

func (r *Recorder) Warning(_ context.Context, msg string, args ...any) {
	r.record("warning", msg, args)
}

func (r *Recorder) Error(_ context.Context, msg string, args ...any) {
	r.record("error", msg, args)
}

// Count returns how many events were recorded at level
func (r *Recorder) Count(level string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.Events {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Has reports whether an event at level contains substr in its message
func (r *Recorder) Has(level, substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Events {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// RatePage builds a listing page with a header row followed by rows of
// data cells inside a table with the given id
func RatePage(tableID string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>Altcoin rates</title></head><body>`)
	b.WriteString(`<table id="` + tableID + `">`)
	b.WriteString(`<thead><tr><th>Coin</th><th>Price (INR)</th><th>Change (24h)</th><th>Volume (24h)</th></tr></thead><tbody>`)
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td> " + cell + " </td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}

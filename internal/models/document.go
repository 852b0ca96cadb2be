package models

import (
	"path/filepath"
	"sync"
	"time"
)

// Document is the ordered, read-only set of lines loaded from one file
type Document struct {
	path     string
	lines    []string
	loadedAt time.Time
}

// NewDocument takes ownership of lines; callers must not modify the slice afterwards.
func NewDocument(path string, lines []string) *Document {
	if lines == nil {
		lines = []string{}
	}
	return &Document{
		path:     path,
		lines:    lines,
		loadedAt: time.Now(),
	}
}

func (d *Document) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// Name returns the base name of the source file
func (d *Document) Name() string {
	if d == nil || d.path == "" {
		return ""
	}
	return filepath.Base(d.path)
}

// Len returns the number of lines; a nil Document has none.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

func (d *Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy so the document stays immutable
func (d *Document) Lines() []string {
	if d == nil {
		return []string{}
	}
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *Document) LoadedAt() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.loadedAt
}

// ResultSet holds the lines of a Document that matched Query, in document order
type ResultSet struct {
	Query string
	Lines []string
	Total int
}

func (r ResultSet) Len() int {
	return len(r.Lines)
}

// RepositoryStats counts operations for diagnostics
type RepositoryStats struct {
	LoadCount   int
	SearchCount int
	LineCount   int
	LastLoad    time.Time
}

// DocumentRepository owns the current Document and the latest ResultSet
type DocumentRepository struct {
	mu         sync.RWMutex
	document   *Document
	lastResult *ResultSet
	stats      RepositoryStats
}

// NewDocumentRepository creates an empty repository
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// SetDocument replaces the current document and drops the previous result
func (r *DocumentRepository) SetDocument(doc *Document) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.document = doc
	r.lastResult = nil
	r.stats.LoadCount++
	r.stats.LineCount = doc.Len()
	r.stats.LastLoad = doc.LoadedAt()
}

// Document returns the current document, or nil before the first load
func (r *DocumentRepository) Document() *Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.document
}

func (r *DocumentRepository) SetLastResult(result ResultSet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastResult = &result
	r.stats.SearchCount++
}

// LastResult reports the most recent search result for the current document
func (r *DocumentRepository) LastResult() (ResultSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.lastResult == nil {
		return ResultSet{}, false
	}
	return *r.lastResult, true
}

func (r *DocumentRepository) Stats() RepositoryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// Clear forgets the document and result but keeps counters
func (r *DocumentRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.document = nil
	r.lastResult = nil
	r.stats.LineCount = 0
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilDocumentIsEmpty(t *testing.T) {
	var doc *Document

	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, doc.Lines())
	assert.Equal(t, "", doc.Path())
	assert.Equal(t, "", doc.Name())
}

func TestDocumentLinesReturnsCopy(t *testing.T) {
	doc := NewDocument("/tmp/fruit.txt", []string{"apple", "banana"})

	lines := doc.Lines()
	lines[0] = "changed"

	assert.Equal(t, "apple", doc.Line(0))
	assert.Equal(t, "fruit.txt", doc.Name())
	assert.False(t, doc.LoadedAt().IsZero())
}

func TestNewDocumentNilLines(t *testing.T) {
	doc := NewDocument("empty.txt", nil)

	require.NotNil(t, doc.Lines())
	assert.Equal(t, 0, doc.Len())
}

func TestRepositoryReplacesDocumentWholesale(t *testing.T) {
	repo := NewDocumentRepository()
	assert.Nil(t, repo.Document())

	first := NewDocument("a.txt", []string{"one"})
	repo.SetDocument(first)
	repo.SetLastResult(ResultSet{Query: "o", Lines: []string{"one"}, Total: 1})

	second := NewDocument("b.txt", []string{"two", "three"})
	repo.SetDocument(second)

	assert.Same(t, second, repo.Document())
	_, ok := repo.LastResult()
	assert.False(t, ok, "a new document invalidates the previous result")

	stats := repo.Stats()
	assert.Equal(t, 2, stats.LoadCount)
	assert.Equal(t, 1, stats.SearchCount)
	assert.Equal(t, 2, stats.LineCount)
}

func TestRepositoryClear(t *testing.T) {
	repo := NewDocumentRepository()
	repo.SetDocument(NewDocument("a.txt", []string{"one"}))
	repo.SetLastResult(ResultSet{Query: "x"})

	repo.Clear()

	assert.Nil(t, repo.Document())
	_, ok := repo.LastResult()
	assert.False(t, ok)
	assert.Equal(t, 1, repo.Stats().LoadCount)
}

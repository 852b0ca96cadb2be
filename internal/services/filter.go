package services

import (
	"strings"

	"data-streams/internal/models"
)

// Filter returns the lines of doc that contain query as a literal,
// case-sensitive substring, in document order. An empty query is rejected;
// a nil or empty document yields an empty result.
func Filter(doc *models.Document, query string) (models.ResultSet, error) {
	if query == "" {
		return models.ResultSet{}, ErrEmptyQuery
	}

	result := models.ResultSet{
		Query: query,
		Lines: []string{},
		Total: doc.Len(),
	}
	for i := 0; i < doc.Len(); i++ {
		line := doc.Line(i)
		if strings.Contains(line, query) {
			result.Lines = append(result.Lines, line)
		}
	}
	return result, nil
}

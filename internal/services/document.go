package services

import (
	"context"

	"data-streams/internal/logger"
	"data-streams/internal/models"
)

const documentComponent = "DocumentService"

// DocumentService loads documents into the repository and searches the current one
type DocumentService struct {
	loader     *FileLoader
	repository *models.DocumentRepository
	logger     logger.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(loader *FileLoader, repo *models.DocumentRepository, log logger.Logger) *DocumentService {
	if log == nil {
		log = logger.Nop()
	}
	return &DocumentService{
		loader:     loader,
		repository: repo,
		logger:     log,
	}
}

// LoadDocument loads path and makes it the current document. On failure the
// previously loaded document stays current.
func (ds *DocumentService) LoadDocument(ctx context.Context, path string) (*models.Document, error) {
	doc, err := ds.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	ds.repository.SetDocument(doc)
	return doc, nil
}

// Search filters the current document. Searching before any load returns
// an empty result.
func (ds *DocumentService) Search(query string) (models.ResultSet, error) {
	doc := ds.repository.Document()

	result, err := Filter(doc, query)
	if err != nil {
		return result, err
	}

	ds.repository.SetLastResult(result)
	ds.logger.Debug(documentComponent, "search completed", map[string]interface{}{
		"query":   query,
		"matches": result.Len(),
		"total":   result.Total,
	})
	return result, nil
}

func (ds *DocumentService) CurrentDocument() *models.Document {
	return ds.repository.Document()
}

// LastResult returns the latest search result for the current document
func (ds *DocumentService) LastResult() (models.ResultSet, bool) {
	return ds.repository.LastResult()
}

// Stats reports load and search counters
func (ds *DocumentService) Stats() models.RepositoryStats {
	return ds.repository.Stats()
}

// Reset drops the current document
func (ds *DocumentService) Reset() {
	ds.repository.Clear()
}

package controllers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"data-streams/internal/logger"
	"data-streams/internal/models"
	"data-streams/internal/services"
)

const component = "MainController"

// Event types emitted by the controller
const (
	EventDocumentLoaded = "document_loaded"
	EventLoadFailed     = "load_failed"
	EventSearchComplete = "search_complete"
)

// View is the part of the UI the controller drives
type View interface {
	SetLoadHandler(handler func())
	SetSearchHandler(handler func())
	SetQuitHandler(handler func())

	Query() string
	SetOriginalLines(lines []string)
	SetFilteredLines(lines []string)
	ClearFilteredLines()
	UpdateStatus(status string)
	SetDocumentInfo(name string, lines int)
	SetMatchInfo(matches, total int)

	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))
	ShowFileDialog(callback func(fyne.URIReadCloser, error))
}

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// MainController dispatches the Load, Search and Quit commands. Every
// command runs to completion on the calling goroutine.
type MainController struct {
	documentService *services.DocumentService
	logger          logger.Logger

	view        View
	quitFunc    func()
	confirmQuit bool

	mu       sync.RWMutex
	lastLoad time.Time

	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// NewMainController creates a new main controller
func NewMainController(documentService *services.DocumentService, log logger.Logger) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	controller := &MainController{
		documentService: documentService,
		logger:          log,
		eventHandlers:   make(map[string][]EventHandler),
	}

	controller.initializeEventHandlers()
	return controller
}

// SetMainView associates the view with this controller and wires its actions
func (mc *MainController) SetMainView(view View) {
	mc.view = view
	mc.setupViewEventHandlers()
}

// SetQuitFunc sets what Quit runs to terminate the application
func (mc *MainController) SetQuitFunc(fn func()) {
	mc.quitFunc = fn
}

// SetConfirmQuit makes Quit ask before exiting
func (mc *MainController) SetConfirmQuit(confirm bool) {
	mc.confirmQuit = confirm
}

// LoadFile asks the user for a file and loads it
func (mc *MainController) LoadFile() {
	if mc.view == nil {
		mc.logger.Warning(component, "load requested without a view", nil)
		return
	}

	mc.view.ShowFileDialog(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				// The dialog opens the file itself, so open failures arrive here.
				mc.failLoad(services.OpenError(pathErr.Path, err))
				return
			}
			mc.handleError("File Selection Error", err)
			return
		}
		if reader == nil {
			mc.logger.Info(component, "file selection cancelled", nil)
			return
		}

		path := reader.URI().Path()
		if closeErr := reader.Close(); closeErr != nil {
			mc.logger.Debug(component, "closing dialog reader failed", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}

		mc.LoadPath(path)
	})
}

// LoadPath loads path as the current document and renders it. A failed
// load leaves the current document and both panes untouched.
func (mc *MainController) LoadPath(path string) {
	mc.logger.Info(component, "loading file", map[string]interface{}{
		"path": path,
	})

	doc, err := mc.documentService.LoadDocument(context.Background(), path)
	if err != nil {
		mc.failLoad(err)
		return
	}

	mc.mu.Lock()
	mc.lastLoad = time.Now()
	mc.mu.Unlock()

	if mc.view != nil {
		mc.view.SetOriginalLines(doc.Lines())
		mc.view.ClearFilteredLines()
		mc.view.SetDocumentInfo(doc.Name(), doc.Len())
	}
	mc.updateStatus(fmt.Sprintf("Loaded %d lines from %s", doc.Len(), doc.Name()))

	mc.emitEvent(EventDocumentLoaded, doc)
}

func (mc *MainController) failLoad(err error) {
	mc.handleError("File Load Error", err)
	mc.updateStatus("Load failed")
	mc.emitEvent(EventLoadFailed, err)
}

// Search filters the current document by the query in the view
func (mc *MainController) Search() {
	if mc.view == nil {
		mc.logger.Warning(component, "search requested without a view", nil)
		return
	}
	mc.SearchFor(mc.view.Query())
}

// SearchFor filters the current document by query and renders the result
func (mc *MainController) SearchFor(query string) {
	result, err := mc.documentService.Search(query)
	if err != nil {
		mc.handleError("Search Error", err)
		return
	}

	if mc.view != nil {
		mc.view.SetFilteredLines(result.Lines)
		mc.view.SetMatchInfo(result.Len(), result.Total)
	}

	if mc.documentService.CurrentDocument() == nil {
		mc.updateStatus("No file loaded, nothing to search")
	} else {
		mc.updateStatus(fmt.Sprintf("%d of %d lines match %q", result.Len(), result.Total, query))
	}

	mc.emitEvent(EventSearchComplete, result)
}

// Quit terminates the application, asking first when confirmation is enabled
func (mc *MainController) Quit() {
	if mc.confirmQuit && mc.view != nil {
		mc.view.ShowConfirm("Quit", "Are you sure you want to quit?", func(confirmed bool) {
			if confirmed {
				mc.quit()
			}
		})
		return
	}
	mc.quit()
}

func (mc *MainController) quit() {
	mc.logger.Info(component, "quit requested", nil)
	if mc.quitFunc != nil {
		mc.quitFunc()
	}
}

// ApplicationState summarizes what the user currently sees
type ApplicationState struct {
	HasDocument   bool
	DocumentPath  string
	DocumentLines int
	LastQuery     string
	LastMatches   int
	LastLoad      time.Time
	LoadCount     int
	SearchCount   int
}

// GetApplicationState returns the current application state
func (mc *MainController) GetApplicationState() ApplicationState {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	doc := mc.documentService.CurrentDocument()
	stats := mc.documentService.Stats()
	state := ApplicationState{
		HasDocument:   doc != nil,
		DocumentPath:  doc.Path(),
		DocumentLines: doc.Len(),
		LastLoad:      mc.lastLoad,
		LoadCount:     stats.LoadCount,
		SearchCount:   stats.SearchCount,
	}
	if result, ok := mc.documentService.LastResult(); ok {
		state.LastQuery = result.Query
		state.LastMatches = result.Len()
	}
	return state
}

// AddEventListener registers a handler for an event type
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()

	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

func (mc *MainController) initializeEventHandlers() {
	mc.AddEventListener(EventDocumentLoaded, mc.onDocumentLoaded)
	mc.AddEventListener(EventSearchComplete, mc.onSearchComplete)
}

func (mc *MainController) setupViewEventHandlers() {
	if mc.view == nil {
		return
	}

	mc.view.SetLoadHandler(mc.LoadFile)
	mc.view.SetSearchHandler(mc.Search)
	mc.view.SetQuitHandler(mc.Quit)
}

// emitEvent runs every handler for eventType in registration order
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := append([]EventHandler(nil), mc.eventHandlers[eventType]...)
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			mc.logger.Error(component, err, map[string]interface{}{
				"event": eventType,
			})
		}
	}
}

func (mc *MainController) onDocumentLoaded(data interface{}) error {
	doc, ok := data.(*models.Document)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventDocumentLoaded)
	}

	mc.logger.Debug(component, "document ready", map[string]interface{}{
		"path":  doc.Path(),
		"lines": doc.Len(),
	})
	return nil
}

func (mc *MainController) onSearchComplete(data interface{}) error {
	result, ok := data.(models.ResultSet)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventSearchComplete)
	}

	mc.logger.Debug(component, "results rendered", map[string]interface{}{
		"query":   result.Query,
		"matches": result.Len(),
	})
	return nil
}

// handleError logs err and shows its user-facing message
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{
		"title": title,
	})

	if mc.view != nil {
		mc.view.ShowError(title, errors.New(services.UserMessage(err)))
	}
}

func (mc *MainController) updateStatus(status string) {
	if mc.view != nil {
		mc.view.UpdateStatus(status)
	}
}

// Shutdown releases the loaded document
func (mc *MainController) Shutdown() {
	mc.documentService.Reset()
	mc.logger.Info(component, "controller shutdown completed", nil)
}

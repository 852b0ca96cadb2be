package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the query entry and the Load File, Search and Quit actions
type Toolbar struct {
	container    *fyne.Container
	queryEntry   *widget.Entry
	loadButton   *widget.Button
	searchButton *widget.Button
	quitButton   *widget.Button

	// Event handlers
	loadHandler   func()
	searchHandler func()
	quitHandler   func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.queryEntry = widget.NewEntry()
	t.queryEntry.SetPlaceHolder("Text to search for")

	t.loadButton = widget.NewButtonWithIcon("Load File", theme.FolderOpenIcon(), nil)
	t.loadButton.Importance = widget.HighImportance

	t.searchButton = widget.NewButtonWithIcon("Search", theme.SearchIcon(), nil)
	t.quitButton = widget.NewButtonWithIcon("Quit", theme.CancelIcon(), nil)
}

func (t *Toolbar) buildLayout() {
	actions := container.NewHBox(t.loadButton, t.searchButton, t.quitButton)
	t.container = container.NewBorder(nil, nil, widget.NewLabel("Search:"), actions, t.queryEntry)
}

func (t *Toolbar) setupEventHandlers() {
	t.loadButton.OnTapped = func() {
		if t.loadHandler != nil {
			t.loadHandler()
		}
	}

	t.searchButton.OnTapped = func() {
		if t.searchHandler != nil {
			t.searchHandler()
		}
	}

	// Enter in the query entry searches too
	t.queryEntry.OnSubmitted = func(string) {
		if t.searchHandler != nil {
			t.searchHandler()
		}
	}

	t.quitButton.OnTapped = func() {
		if t.quitHandler != nil {
			t.quitHandler()
		}
	}
}

func (t *Toolbar) SetLoadHandler(handler func()) {
	t.loadHandler = handler
}

func (t *Toolbar) SetSearchHandler(handler func()) {
	t.searchHandler = handler
}

func (t *Toolbar) SetQuitHandler(handler func()) {
	t.quitHandler = handler
}

// Query returns the current text of the query entry, unmodified
func (t *Toolbar) Query() string {
	return t.queryEntry.Text
}

func (t *Toolbar) SetQuery(query string) {
	t.queryEntry.SetText(query)
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

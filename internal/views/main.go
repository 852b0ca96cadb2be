package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"data-streams/internal/views/components"
)

const splitOffset = 0.5

// MainView shows the toolbar, the original and filtered panes side by side, and a status bar
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	originalPane  *components.LinePane
	filteredPane  *components.LinePane
	statusBar     *components.StatusBar
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.originalPane = components.NewLinePane("Original", "Load a file to view its lines")
	mv.filteredPane = components.NewLinePane("Filtered", "Search results appear here")
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	split := container.NewHSplit(mv.originalPane.GetContainer(), mv.filteredPane.GetContainer())
	split.SetOffset(splitOffset)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,
		nil,
		split,
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

func (mv *MainView) SetLoadHandler(handler func()) {
	mv.toolbar.SetLoadHandler(handler)
}

func (mv *MainView) SetSearchHandler(handler func()) {
	mv.toolbar.SetSearchHandler(handler)
}

func (mv *MainView) SetQuitHandler(handler func()) {
	mv.toolbar.SetQuitHandler(handler)
}

// UI update methods - called by controller

// Query returns the text currently in the query entry
func (mv *MainView) Query() string {
	return mv.toolbar.Query()
}

func (mv *MainView) SetOriginalLines(lines []string) {
	mv.originalPane.SetLines(lines)
}

func (mv *MainView) SetFilteredLines(lines []string) {
	mv.filteredPane.SetLines(lines)
}

func (mv *MainView) ClearFilteredLines() {
	mv.filteredPane.Clear()
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) SetDocumentInfo(name string, lines int) {
	mv.statusBar.SetDocumentInfo(name, lines)
}

func (mv *MainView) SetMatchInfo(matches, total int) {
	mv.statusBar.SetMatchInfo(matches, total)
}

// ShowError displays an error dialog titled after the failed action
func (mv *MainView) ShowError(title string, err error) {
	message := widget.NewLabel(err.Error())
	message.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom(title, "OK", message, mv.window)
	d.Show()
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// ShowFileDialog displays a file selection dialog
func (mv *MainView) ShowFileDialog(callback func(fyne.URIReadCloser, error)) {
	dialog.ShowFileOpen(callback, mv.window)
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

func (mv *MainView) GetOriginalPane() *components.LinePane {
	return mv.originalPane
}

func (mv *MainView) GetFilteredPane() *components.LinePane {
	return mv.filteredPane
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

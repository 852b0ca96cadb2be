package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and information
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	documentInfo *widget.Label
	matchInfo    *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.documentInfo = widget.NewLabel("No file loaded")
	sb.matchInfo = widget.NewLabel("Matches: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.documentInfo,
		widget.NewSeparator(),
		sb.matchInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetDocumentInfo shows the loaded file name and its line count
func (sb *StatusBar) SetDocumentInfo(name string, lines int) {
	sb.documentInfo.SetText(fmt.Sprintf("File: %s, %d lines", name, lines))
	sb.matchInfo.SetText("Matches: --")
}

func (sb *StatusBar) GetDocumentInfo() string {
	return sb.documentInfo.Text
}

func (sb *StatusBar) SetMatchInfo(matches, total int) {
	sb.matchInfo.SetText(fmt.Sprintf("Matches: %d/%d", matches, total))
}

func (sb *StatusBar) GetMatchInfo() string {
	return sb.matchInfo.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// LinePane shows a titled, scrollable list of text lines
type LinePane struct {
	container   *fyne.Container
	titleLabel  *widget.Label
	countLabel  *widget.Label
	placeholder *widget.Label
	list        *widget.List

	lines []string
}

// NewLinePane creates a pane with a title and a hint shown while empty
func NewLinePane(title, hint string) *LinePane {
	pane := &LinePane{lines: []string{}}
	pane.createComponents(title, hint)
	pane.buildLayout()
	return pane
}

func (p *LinePane) createComponents(title, hint string) {
	p.titleLabel = widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	p.countLabel = widget.NewLabel("")
	p.placeholder = widget.NewLabel(hint)
	p.placeholder.Alignment = fyne.TextAlignCenter

	p.list = widget.NewList(
		func() int {
			return len(p.lines)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.TextStyle = fyne.TextStyle{Monospace: true}
			return label
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(p.lines) {
				return
			}
			item.(*widget.Label).SetText(p.lines[id])
		},
	)
}

func (p *LinePane) buildLayout() {
	header := container.NewHBox(p.titleLabel, layout.NewSpacer(), p.countLabel)
	p.container = container.NewBorder(header, nil, nil, nil, container.NewStack(p.list, p.placeholder))
	p.updatePlaceholder()
}

// SetLines replaces the displayed lines and scrolls back to the top
func (p *LinePane) SetLines(lines []string) {
	p.lines = make([]string, len(lines))
	copy(p.lines, lines)

	p.countLabel.SetText(fmt.Sprintf("%d lines", len(p.lines)))
	p.updatePlaceholder()
	p.list.Refresh()
	p.list.ScrollToTop()
}

// Clear empties the pane
func (p *LinePane) Clear() {
	p.lines = []string{}
	p.countLabel.SetText("")
	p.updatePlaceholder()
	p.list.Refresh()
}

// Lines returns a copy of the displayed lines
func (p *LinePane) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

func (p *LinePane) Len() int {
	return len(p.lines)
}

func (p *LinePane) Count() string {
	return p.countLabel.Text
}

func (p *LinePane) updatePlaceholder() {
	if len(p.lines) == 0 {
		p.placeholder.Show()
	} else {
		p.placeholder.Hide()
	}
}

// GetContainer returns the pane container
func (p *LinePane) GetContainer() *fyne.Container {
	return p.container
}

package tui

type pageLayout struct {
	windowWidth  int
	windowHeight int
	panelWidth   int
	contentWidth int
	inputHeight  int
	resultHeight int
}

func newPageLayout() pageLayout {
	layout := pageLayout{}
	layout.Update(80, 24)
	return layout
}

// Update recomputes panel sizes for a window of width x height cells.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	outer := width - horizontalPadding
	if outer < minPanelWidth {
		outer = minPanelWidth
	}
	l.panelWidth = outer
	l.contentWidth = outer - panelChrome
	l.inputHeight = inputHeight
	l.resultHeight = height - layoutChrome - l.inputHeight
	if l.resultHeight < minResultHeight {
		l.resultHeight = minResultHeight
	}
}

package tui

import "time"

const (
	appTitle       = "AI Paragraph Generator"
	inputHint      = "e.g., The importance of space exploration for humanity..."
	loadingCaption = "Crafting your paragraph..."
	errorHeading   = "An Error Occurred"
	placeholderTop = "Your generated paragraph will appear here."
	placeholderSub = "Enter a prompt above and press Enter to generate."
	noGeneratorMsg = "No generation provider is configured."
)

const (
	minPanelWidth     = 40
	horizontalPadding = 4
	panelChrome       = 4
	inputHeight       = 4
	layoutChrome      = 14
	minResultHeight   = 5
	promptCharLimit   = 8000
)

// pasteWindow is how soon after a multi-rune read an Enter counts as part
// of the same paste.
const pasteWindow = 50 * time.Millisecond

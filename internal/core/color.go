package core

// Color is the foreground of a screen cell. The platform maps each value
// to a terminal palette entry; the zero value is the terminal default.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed          // Delete bin, high pollution
	ColorGreen        // Recycle bin, low pollution
	ColorYellow       // Mid-band pollution, file item
	ColorBlue         // Archive bin
	ColorMagenta      // AI item
	ColorWhite        // Selected item
	ColorBrightRed    // Wrong drop, lost round
	ColorBrightGreen  // Correct drop, won round
	ColorBrightYellow // Item marker
	ColorGray         // Frame and hints

	colorCount
)

// Valid reports whether c is a known palette entry.
func (c Color) Valid() bool {
	return c < colorCount
}

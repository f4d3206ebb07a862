package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette used by the spa scene.
const (
	ColorDefault Color = iota
	ColorRed           // hearts
	ColorGreen         // leaves on yuzu
	ColorYellow        // score and highlights
	ColorBlue          // water
	ColorCyan          // rain
	ColorWhite         // text
	ColorBrown         // capybara
	ColorOrange        // yuzu
	ColorPink          // cat
	ColorGray          // clouds, borders, hints
)

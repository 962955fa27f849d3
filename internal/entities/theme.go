package entities

// Theme names the board backdrop passed to the render surface
type Theme string

const (
	ThemePrairie  Theme = "prairie"
	ThemeDesert   Theme = "desert"
	ThemeArctic   Theme = "arctic"
	ThemeMountain Theme = "mountain"
)

// Themes lists the known themes in level order
func Themes() []Theme {
	return []Theme{ThemePrairie, ThemeDesert, ThemeArctic, ThemeMountain}
}

// Valid reports whether t is a known theme
func (t Theme) Valid() bool {
	for _, known := range Themes() {
		if t == known {
			return true
		}
	}
	return false
}

package models

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

// ToggleTheme returns the opposite theme. Unknown values toggle to dark.
func ToggleTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

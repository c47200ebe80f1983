package dto

// ThemeResponse represents the active display theme
type ThemeResponse struct {
	Theme string `json:"theme"`
}

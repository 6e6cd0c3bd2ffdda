package http

type ScreensResponse struct {
	Screens []string `json:"screens"`
}

type CreateScreenResponse struct {
	ScreenID string `json:"screen_id"`
}

type DeckUploadResponse struct {
	SlidesAdded int `json:"slides_added"`
}

type ImageUploadResponse struct {
	Filename string `json:"filename"`
}

type ReorderRequest struct {
	Order []string `json:"order" binding:"required"`
}

type DurationRequest struct {
	DurationSeconds float64 `json:"duration_seconds" binding:"required"`
}

type ErrorResponse struct {
	Msg string `json:"msg"`
}

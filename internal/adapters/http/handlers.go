package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	coreerrors "signage/internal/core/errors"
	"signage/internal/core/ports"
	"signage/pkg/utils"
)

type Handler struct {
	signageSvc ports.SignageService
}

// NewHandler constructs a handler that depends on the SignageService interface.
func NewHandler(svc ports.SignageService) *Handler {
	return &Handler{signageSvc: svc}
}

// respondError maps core sentinel errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, coreerrors.ErrInvalidScreenID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
	case errors.Is(err, coreerrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: err.Error()})
	case errors.Is(err, coreerrors.ErrDecode):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Msg: err.Error()})
	case errors.Is(err, coreerrors.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, ErrorResponse{Msg: err.Error()})
	case errors.Is(err, coreerrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Msg: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "internal error"})
	}
}

// readUpload extracts the "file" part of a multipart request.
func readUpload(c *gin.Context) (data []byte, header *multipart.FileHeader, ok bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "no file provided"})
		return nil, nil, false
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "unreadable upload"})
		return nil, nil, false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "unreadable upload"})
		return nil, nil, false
	}
	return data, header, true
}

// ListScreens godoc
// @Summary List all screens
// @Description Return the ids of all registered screens in sorted order.
// @Tags screens
// @Produce json
// @Success 200 {object} ScreensResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens [get]
func (h *Handler) ListScreens(c *gin.Context) {
	screens, err := h.signageSvc.ListScreens()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ScreensResponse{Screens: screens})
}

// CreateScreen godoc
// @Summary Register a new screen
// @Description Allocate the smallest free screen id and create its empty playlist.
// @Tags screens
// @Produce json
// @Success 201 {object} CreateScreenResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens [post]
func (h *Handler) CreateScreen(c *gin.Context) {
	id, err := h.signageSvc.CreateScreen()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateScreenResponse{ScreenID: id})
}

// GetPlaylist godoc
// @Summary Get a screen's playlist
// @Description Return the ordered slide records for a screen. Display devices poll this endpoint.
// @Tags screens
// @Produce json
// @Param screen_id path string true "Screen ID"
// @Success 200 {array} domain.Slide
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens/{screen_id}/playlist [get]
func (h *Handler) GetPlaylist(c *gin.Context) {
	screenID := c.Param("screen_id")

	if !utils.IsScreenID(screenID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
		return
	}

	slides, err := h.signageSvc.GetPlaylist(screenID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

// UploadDeck godoc
// @Summary Upload a slide deck
// @Description Convert every slide of a .pptx upload into a normalized slide asset and append them to the playlist.
// @Tags screens
// @Accept mpfd
// @Produce json
// @Param screen_id path string true "Screen ID"
// @Param file formData file true "Deck file (.pptx)"
// @Success 200 {object} DeckUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens/{screen_id}/deck [post]
func (h *Handler) UploadDeck(c *gin.Context) {
	screenID := c.Param("screen_id")

	if !utils.IsScreenID(screenID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
		return
	}

	data, header, ok := readUpload(c)
	if !ok {
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pptx") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "only .pptx files allowed"})
		return
	}

	added, err := h.signageSvc.IngestDeck(screenID, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeckUploadResponse{SlidesAdded: added})
}

// UploadImage godoc
// @Summary Upload a single image slide
// @Description Normalize an uploaded image and append it to the playlist. An optional "duration" form field sets the display duration in seconds.
// @Tags screens
// @Accept mpfd
// @Produce json
// @Param screen_id path string true "Screen ID"
// @Param file formData file true "Image file (jpg, jpeg, png, gif)"
// @Param duration formData number false "Display duration in seconds"
// @Success 200 {object} ImageUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens/{screen_id}/images [post]
func (h *Handler) UploadImage(c *gin.Context) {
	screenID := c.Param("screen_id")

	if !utils.IsScreenID(screenID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
		return
	}

	data, header, ok := readUpload(c)
	if !ok {
		return
	}

	duration := 0.0
	if raw := c.PostForm("duration"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid duration"})
			return
		}
		duration = parsed
	}

	filename, err := h.signageSvc.IngestImage(screenID, data, header.Filename, duration)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ImageUploadResponse{Filename: filename})
}

// ReorderSlides godoc
// @Summary Reorder a screen's slides
// @Description Rebuild the playlist to match the requested filename order. Unknown filenames are skipped and omitted slides are dropped.
// @Tags screens
// @Accept json
// @Produce json
// @Param screen_id path string true "Screen ID"
// @Param request body ReorderRequest true "Requested slide order"
// @Success 204 "no content"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens/{screen_id}/order [put]
func (h *Handler) ReorderSlides(c *gin.Context) {
	screenID := c.Param("screen_id")

	if !utils.IsScreenID(screenID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid payload: " + err.Error()})
		return
	}

	if err := h.signageSvc.Reorder(screenID, req.Order); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetSlideDuration godoc
// @Summary Update a slide's display duration
// @Tags screens
// @Accept json
// @Produce json
// @Param screen_id path string true "Screen ID"
// @Param filename path string true "Slide filename"
// @Param request body DurationRequest true "New duration"
// @Success 204 "no content"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens/{screen_id}/slides/{filename}/duration [put]
func (h *Handler) SetSlideDuration(c *gin.Context) {
	screenID := c.Param("screen_id")

	if !utils.IsScreenID(screenID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
		return
	}

	var req DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid payload: " + err.Error()})
		return
	}

	if err := h.signageSvc.SetDuration(screenID, c.Param("filename"), req.DurationSeconds); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSlide godoc
// @Summary Delete a slide
// @Description Remove the slide record from the playlist and delete its asset file.
// @Tags screens
// @Produce json
// @Param screen_id path string true "Screen ID"
// @Param filename path string true "Slide filename"
// @Success 204 "no content"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/screens/{screen_id}/slides/{filename} [delete]
func (h *Handler) DeleteSlide(c *gin.Context) {
	screenID := c.Param("screen_id")

	if !utils.IsScreenID(screenID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
		return
	}

	if err := h.signageSvc.DeleteSlide(screenID, c.Param("filename")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ServeSlide godoc
// @Summary Fetch a normalized slide image
// @Description Serve one slide asset. Display devices fetch slides from here while playing a playlist.
// @Tags slides
// @Produce jpeg
// @Param screen_id path string true "Screen ID"
// @Param filename path string true "Slide filename"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /slides/{screen_id}/{filename} [get]
func (h *Handler) ServeSlide(c *gin.Context) {
	screenID := c.Param("screen_id")

	if !utils.IsScreenID(screenID) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "invalid screen ID"})
		return
	}

	data, err := h.signageSvc.FetchAsset(screenID, c.Param("filename"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}

package losses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/losses — today's records, newest first
// --------------------------------------------------

func (h *Handler) ListToday(c *gin.Context) {
	records, err := h.service.Today(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// --------------------------------------------------
// POST /api/losses — voice transcript
// --------------------------------------------------

func (h *Handler) RecordTranscript(c *gin.Context) {
	var req struct {
		Transcript string `json:"transcript"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	records, err := h.service.RecordTranscript(c.Request.Context(), req.Transcript)
	if err != nil {
		if errors.Is(err, ErrEmptyTranscript) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// An empty array is the "nothing understood" signal the frontend
	// shows to the operator; it is not an error.
	c.JSON(http.StatusCreated, records)
}

// --------------------------------------------------
// POST /api/losses/manual — direct grid entry
// --------------------------------------------------

func (h *Handler) CreateManual(c *gin.Context) {
	var req struct {
		Product  string  `json:"product"`
		Quantity int     `json:"quantity"`
		Size     *string `json:"size"`
	}

	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record, err := h.service.CreateManual(
		c.Request.Context(),
		req.Product,
		req.Quantity,
		req.Size,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownProduct),
			errors.Is(err, ErrInvalidQuantity),
			errors.Is(err, ErrInvalidSize):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// --------------------------------------------------
// PATCH /api/losses/:id — overwrite one quantity
// --------------------------------------------------

func (h *Handler) UpdateQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}

	if err := c.BindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	record, err := h.service.AdjustQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// --------------------------------------------------
// DELETE /api/losses — full day reset
// --------------------------------------------------

func (h *Handler) ResetDay(c *gin.Context) {
	deleted, err := h.service.ResetDay(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// --------------------------------------------------
// GET /api/losses/grid — merged catalog view
// --------------------------------------------------

func (h *Handler) Grid(c *gin.Context) {
	grid, err := h.service.Grid(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grid)
}

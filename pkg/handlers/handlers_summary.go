package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Summary returns headline totals for the dashboard cards
func (h *Handler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.Summary())
}

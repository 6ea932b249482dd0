package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleGetWord returns a random word; failures are already folded into the fallback
func (h *Handler) handleGetWord(c *gin.Context) {
	word := h.wordService.GetWord(c.Request.Context())

	if word.Fallback {
		h.logger.Info("Serving fallback word", zap.String("word", word.Text))
	}

	c.JSON(http.StatusOK, word.Response())
}

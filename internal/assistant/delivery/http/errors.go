package http

import (
	"github.com/gin-gonic/gin"

	"agri-assistant/internal/assistant"
	"agri-assistant/pkg/response"
)

// mapError translates domain errors into HTTP responses. Anything the
// domain does not name is an internal error; details stay in the logs.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case assistant.ErrEmptyQuery, assistant.ErrEmptyReport:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

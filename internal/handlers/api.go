package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// APIHandler serves the static endpoint catalogue at GET /api.
type APIHandler struct {
	endpoints json.RawMessage
}

func NewAPIHandler() *APIHandler {
	return &APIHandler{endpoints: json.RawMessage(endpointsJSON)}
}

func (h *APIHandler) GetAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   h.endpoints,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
	"github.com/emilythestrangee/nc-news/backend/internal/models"
	"github.com/emilythestrangee/nc-news/backend/internal/store"
)

type TopicHandler struct {
	store *store.Store
}

func NewTopicHandler(s *store.Store) *TopicHandler {
	return &TopicHandler{store: s}
}

func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.store.ListTopics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var input models.CreateTopicRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.InvalidObject())
		return
	}

	topic, err := h.store.CreateTopic(c.Request.Context(), input.Slug, input.Description)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}

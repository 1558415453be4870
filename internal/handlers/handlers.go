package handlers

import (
	"github.com/emilythestrangee/nc-news/backend/internal/store"
)

// Handler combines all handler types
type Handler struct {
	API     *APIHandler
	Topic   *TopicHandler
	Article *ArticleHandler
	Comment *CommentHandler
	User    *UserHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(s *store.Store) *Handler {
	return &Handler{
		API:     NewAPIHandler(),
		Topic:   NewTopicHandler(s),
		Article: NewArticleHandler(s),
		Comment: NewCommentHandler(s),
		User:    NewUserHandler(s),
	}
}

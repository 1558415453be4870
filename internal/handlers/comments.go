package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
	"github.com/emilythestrangee/nc-news/backend/internal/models"
	"github.com/emilythestrangee/nc-news/backend/internal/store"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(s *store.Store) *CommentHandler {
	return &CommentHandler{store: s}
}

func commentID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		return 0, apperror.BadRequest()
	}
	return id, nil
}

// GetArticleComments lists an article's comments, newest first, paginated by
// limit and p.
func (h *CommentHandler) GetArticleComments(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.Error(err)
		return
	}

	comments, err := h.store.ListArticleComments(
		c.Request.Context(), id, c.Query("limit"), c.Query("p"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.InvalidObject())
		return
	}

	comment, err := h.store.CreateComment(
		c.Request.Context(), id, input.Username, input.Body)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, err := commentID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var input models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.IncVotes == nil {
		c.Error(apperror.InvalidObject())
		return
	}

	comment, err := h.store.UpdateCommentVotes(c.Request.Context(), id, *input.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := commentID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.store.RemoveComment(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

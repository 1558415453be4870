package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
	"github.com/emilythestrangee/nc-news/backend/internal/models"
	"github.com/emilythestrangee/nc-news/backend/internal/store"
)

type ArticleHandler struct {
	store *store.Store
}

func NewArticleHandler(s *store.Store) *ArticleHandler {
	return &ArticleHandler{store: s}
}

// articleID parses the :article_id path parameter. Non-numeric ids never
// reach the database.
func articleID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		return 0, apperror.BadRequest()
	}
	return id, nil
}

// GetArticles lists articles filtered, sorted, and paginated by query
// parameters, alongside the total count matching the filter.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	page, err := h.store.ListArticles(c.Request.Context(), store.ListArticlesParams{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sorted_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":    page.Articles,
		"total_count": page.TotalCount,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.Error(err)
		return
	}

	article, err := h.store.GetArticle(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var input models.CreateArticleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.InvalidObject())
		return
	}

	article, err := h.store.CreateArticle(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var input models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.InvalidObject())
		return
	}

	article, err := h.store.UpdateArticle(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.store.RemoveArticle(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

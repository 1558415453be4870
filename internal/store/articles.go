package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
	"github.com/emilythestrangee/nc-news/backend/internal/models"
)

// ArticlePage is one page of articles plus the total number of rows matching
// the filter, independent of pagination.
type ArticlePage struct {
	Articles   []models.Article `json:"articles"`
	TotalCount int              `json:"total_count"`
}

// ListArticles validates the filter/sort/pagination parameters, verifies a
// supplied topic actually exists, and runs the built page and count queries.
// An unknown topic is a 400; a known topic with no articles yields an empty
// page with the count at zero.
func (s *Store) ListArticles(ctx context.Context, p ListArticlesParams) (*ArticlePage, error) {
	q, err := buildArticlesQuery(p)
	if err != nil {
		return nil, err
	}

	if q.topic != "" {
		var slug string
		err := s.db.GetContext(ctx, &slug,
			`SELECT slug FROM topics WHERE LOWER(slug) = $1`, q.topic)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.InvalidQuery("Invalid query")
		}
		if err != nil {
			return nil, err
		}
	}

	articles := []models.Article{}
	if err := s.db.SelectContext(ctx, &articles, q.selectSQL, q.selectArgs...); err != nil {
		return nil, err
	}

	var total int
	if err := s.db.GetContext(ctx, &total, q.countSQL, q.countArgs...); err != nil {
		return nil, err
	}

	return &ArticlePage{Articles: articles, TotalCount: total}, nil
}

func (s *Store) GetArticle(ctx context.Context, articleID int) (*models.Article, error) {
	var a models.Article
	err := s.db.GetContext(ctx, &a, `
		SELECT articles.*, COUNT(comments.comment_id)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id`, articleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("Article does not exist")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateArticle inserts a new article. article_img_url is omitted from the
// column list when absent so the database default applies. A missing topic or
// author surfaces as a foreign-key violation for the middleware to translate.
func (s *Store) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	var a models.Article
	var err error
	if req.ArticleImgURL != "" {
		err = s.db.GetContext(ctx, &a,
			`INSERT INTO articles (title, author, topic, body, article_img_url)
			 VALUES ($1, $2, $3, $4, $5) RETURNING *`,
			req.Title, req.Author, req.Topic, req.Body, req.ArticleImgURL)
	} else {
		err = s.db.GetContext(ctx, &a,
			`INSERT INTO articles (title, author, topic, body)
			 VALUES ($1, $2, $3, $4) RETURNING *`,
			req.Title, req.Author, req.Topic, req.Body)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateArticle applies a relative vote change and/or sets the featured flag
// in a single statement. The statement's RETURNING row is the sole source of
// truth for existence; there is no separate probe to race against.
func (s *Store) UpdateArticle(ctx context.Context, articleID int, req models.UpdateArticleRequest) (*models.Article, error) {
	set := []string{}
	args := []any{articleID}
	if req.IncVotes != nil {
		args = append(args, *req.IncVotes)
		set = append(set, fmt.Sprintf("votes = votes + $%d", len(args)))
	}
	if req.Featured != nil {
		args = append(args, *req.Featured)
		set = append(set, fmt.Sprintf("featured = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil, apperror.InvalidObject()
	}

	query := fmt.Sprintf(
		`UPDATE articles SET %s WHERE article_id = $1 RETURNING *`,
		strings.Join(set, ", "))

	var a models.Article
	err := s.db.GetContext(ctx, &a, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("Article does not exist")
	}
	if err != nil {
		return nil, err
	}

	// RETURNING only covers stored columns; fill in the derived count.
	if err := s.db.GetContext(ctx, &a.CommentCount,
		`SELECT COUNT(*)::INT FROM comments WHERE article_id = $1`, articleID); err != nil {
		return nil, err
	}
	return &a, nil
}

// RemoveArticle hard-deletes an article; associated comments cascade.
func (s *Store) RemoveArticle(ctx context.Context, articleID int) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM articles WHERE article_id = $1`, articleID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return apperror.NotFound("Article does not exist")
	}
	return nil
}

func (s *Store) ArticleExists(ctx context.Context, articleID int) error {
	var exists bool
	if err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, articleID); err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Article does not exist")
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emilythestrangee/nc-news/backend/internal/apperror"
	"github.com/emilythestrangee/nc-news/backend/internal/models"
)

// ListArticleComments returns one page of an article's comments, newest
// first. The article must exist; an existing article with no comments is an
// empty page, not an error.
func (s *Store) ListArticleComments(ctx context.Context, articleID int, limitRaw, pageRaw string) ([]models.Comment, error) {
	if err := s.ArticleExists(ctx, articleID); err != nil {
		return nil, err
	}

	limit, page, err := parsePagination(limitRaw, pageRaw)
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	query := fmt.Sprintf(`
		SELECT comment_id, body, article_id, author, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
		LIMIT %d OFFSET %d`, limit, pageOffset(limit, page))
	if err := s.db.SelectContext(ctx, &comments, query, articleID); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment inserts a comment on an article. A missing article or author
// surfaces as a foreign-key violation for the middleware to translate.
func (s *Store) CreateComment(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	var c models.Comment
	err := s.db.GetContext(ctx, &c,
		`INSERT INTO comments (body, article_id, author)
		 VALUES ($1, $2, $3) RETURNING *`,
		body, articleID, username)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCommentVotes applies a relative vote change in a single statement;
// the RETURNING row doubles as the existence check.
func (s *Store) UpdateCommentVotes(ctx context.Context, commentID, delta int) (*models.Comment, error) {
	var c models.Comment
	err := s.db.GetContext(ctx, &c,
		`UPDATE comments SET votes = votes + $2 WHERE comment_id = $1 RETURNING *`,
		commentID, delta)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("Comment does not exist")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) RemoveComment(ctx context.Context, commentID int) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM comments WHERE comment_id = $1`, commentID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return apperror.NotFound("Comment does not exist")
	}
	return nil
}

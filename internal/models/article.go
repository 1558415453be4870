package models

import "time"

type Article struct {
	ArticleID     int       `db:"article_id" json:"article_id"`
	Title         string    `db:"title" json:"title"`
	Topic         string    `db:"topic" json:"topic"`
	Author        string    `db:"author" json:"author"`
	Body          string    `db:"body" json:"body"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	Votes         int       `db:"votes" json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
	Featured      bool      `db:"featured" json:"featured"`

	// Derived from comments at read time, never stored.
	CommentCount int `db:"comment_count" json:"comment_count"`
}

type CreateArticleRequest struct {
	Author        string `json:"author" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
	Topic         string `json:"topic" binding:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// UpdateArticleRequest carries the patchable fields. Pointers distinguish
// "absent" from zero values; a request with neither field set is rejected.
type UpdateArticleRequest struct {
	IncVotes *int  `json:"inc_votes"`
	Featured *bool `json:"featured"`
}

package models

import "time"

type Comment struct {
	CommentID int       `db:"comment_id" json:"comment_id"`
	Body      string    `db:"body" json:"body"`
	ArticleID int       `db:"article_id" json:"article_id"`
	Author    string    `db:"author" json:"author"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

type UpdateCommentRequest struct {
	IncVotes *int `json:"inc_votes"`
}

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/emilythestrangee/nc-news/backend/internal/models"
)

// SeedArticle and SeedComment carry the columns a seed sets explicitly;
// primary keys come from the insertion order so foreign keys in the comment
// data can refer to articles by position.
type SeedArticle struct {
	Title         string
	Topic         string
	Author        string
	Body          string
	CreatedAt     time.Time
	Votes         int
	ArticleImgURL string
}

type SeedComment struct {
	Body      string
	ArticleID int
	Author    string
	Votes     int
	CreatedAt time.Time
}

type SeedData struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []SeedArticle
	Comments []SeedComment
}

// Seed truncates every table and repopulates it from data. Articles and
// comments are inserted in order, so serial keys start at 1 and match the
// positions the comment data refers to.
func (d *Database) Seed(ctx context.Context, data SeedData) error {
	if _, err := d.DB.ExecContext(ctx,
		`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("error truncating tables: %w", err)
	}

	for _, t := range data.Topics {
		if _, err := d.DB.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES ($1, $2)`,
			t.Slug, t.Description); err != nil {
			return fmt.Errorf("error seeding topic %q: %w", t.Slug, err)
		}
	}

	for _, u := range data.Users {
		if _, err := d.DB.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.Username, u.Name, u.AvatarURL); err != nil {
			return fmt.Errorf("error seeding user %q: %w", u.Username, err)
		}
	}

	for _, a := range data.Articles {
		if _, err := d.DB.ExecContext(ctx,
			`INSERT INTO articles (title, topic, author, body, created_at, votes, article_img_url)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, a.ArticleImgURL); err != nil {
			return fmt.Errorf("error seeding article %q: %w", a.Title, err)
		}
	}

	for _, c := range data.Comments {
		if _, err := d.DB.ExecContext(ctx,
			`INSERT INTO comments (body, article_id, author, votes, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			c.Body, c.ArticleID, c.Author, c.Votes, c.CreatedAt); err != nil {
			return fmt.Errorf("error seeding comment on article %d: %w", c.ArticleID, err)
		}
	}

	return nil
}

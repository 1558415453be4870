package store

import (
	"context"

	"github.com/emilythestrangee/nc-news/backend/internal/models"
)

func (s *Store) ListTopics(ctx context.Context) ([]models.Topic, error) {
	topics := []models.Topic{}
	if err := s.db.SelectContext(ctx, &topics,
		`SELECT slug, description FROM topics`); err != nil {
		return nil, err
	}
	return topics, nil
}

func (s *Store) CreateTopic(ctx context.Context, slug, description string) (*models.Topic, error) {
	var t models.Topic
	err := s.db.GetContext(ctx, &t,
		`INSERT INTO topics (slug, description) VALUES ($1, $2) RETURNING *`,
		slug, description)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

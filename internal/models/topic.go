package models

type Topic struct {
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

type CreateTopicRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description" binding:"required"`
}

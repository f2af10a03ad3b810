package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        uint      `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	PostID    uint      `json:"post_id" gorm:"column:post_id;not null;index"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Content   string    `json:"content" gorm:"column:content;type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName overrides the default GORM table name
func (Comment) TableName() string { return "comments" }

// CreateCommentRequest defines the request body for creating a new comment.
// UserID must match the session's user id.
type CreateCommentRequest struct {
	PostID  uint   `json:"post_id" validate:"required"`
	UserID  uint   `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

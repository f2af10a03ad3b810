package models

import "time"

// Post is a community post with denormalized view/like/comment counters.
// The counters are maintained by side effects of the comment and like
// endpoints and are clamped at zero, never derived from COUNT queries.
type Post struct {
	ID             uint      `json:"post_id" gorm:"column:post_id;primaryKey;autoIncrement"`
	UserID         uint      `json:"user_id" gorm:"column:user_id;not null;index"`
	User           User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Title          string    `json:"title" gorm:"column:title;size:255;not null"`
	Content        string    `json:"content" gorm:"column:content;type:text;not null"`
	Summary        string    `json:"summary" gorm:"column:summary;size:255"`
	ImageURL       *string   `json:"image_url,omitempty" gorm:"column:image_url;size:500"`
	AuthorNickname string    `json:"author_nickname" gorm:"column:author_nickname;size:50;not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
	Views          int       `json:"views" gorm:"column:views;not null;default:0"`
	CommentsCount  int       `json:"comments_count" gorm:"column:comments_count;not null;default:0"`
	Likes          int       `json:"likes" gorm:"column:likes;not null;default:0"`
}

// TableName overrides the default GORM table name
func (Post) TableName() string { return "posts" }

// CreatePostRequest defines the request body for creating a new post.
// UserID must match the session's user id.
type CreatePostRequest struct {
	UserID   uint    `json:"user_id" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"image_url,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	UserID   uint    `json:"user_id" validate:"required"`
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	ImageURL *string `json:"image_url,omitempty"`
}

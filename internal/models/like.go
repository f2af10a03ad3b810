package models

// Like represents a like on a post. At most one exists per (post, user)
// pair, enforced by an existence check before insert rather than a database
// constraint.
type Like struct {
	ID     uint `json:"like_id" gorm:"column:like_id;primaryKey;autoIncrement"`
	PostID uint `json:"post_id" gorm:"column:post_id;not null;index"`
	Post   Post `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	UserID uint `json:"user_id" gorm:"column:user_id;not null;index"`
	User   User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default GORM table name
func (Like) TableName() string { return "likes" }

// CreateLikeRequest defines the request body for liking a post.
// UserID must match the session's user id.
type CreateLikeRequest struct {
	PostID uint `json:"post_id" validate:"required"`
	UserID uint `json:"user_id" validate:"required"`
}

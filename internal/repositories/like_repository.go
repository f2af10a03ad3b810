package repositories

import (
	"github.com/imyj1013/community-be/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(like *models.Like) error
	GetLikeByID(id uint) (*models.Like, error)
	GetMyLike(postID, userID uint) (*models.Like, error)
	HasUserLikedPost(postID, userID uint) (bool, error)
	DeleteLike(id uint) error
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like
func (r *PostgresLikeRepository) CreateLike(like *models.Like) error {
	return r.db.Create(like).Error
}

// GetLikeByID retrieves a like by ID
func (r *PostgresLikeRepository) GetLikeByID(id uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.First(&like, id).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// GetMyLike retrieves the like a specific user put on a specific post
func (r *PostgresLikeRepository) GetMyLike(postID, userID uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// HasUserLikedPost checks if a user has liked a specific post. This is the
// only guard against duplicate likes; there is no database constraint.
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteLike deletes a like by ID
func (r *PostgresLikeRepository) DeleteLike(id uint) error {
	return r.db.Delete(&models.Like{}, id).Error
}

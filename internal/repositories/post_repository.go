package repositories

import (
	"github.com/imyj1013/community-be/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	ListPostsAfter(cursorID uint, count int) ([]models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id uint) error
	IncrementViews(post *models.Post) error
	AddLikes(post *models.Post, delta int) error
	AddCommentsCount(post *models.Post, delta int) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPostsAfter retrieves up to count posts with an id strictly greater
// than cursorID, ascending by id.
func (r *PostgresPostRepository) ListPostsAfter(cursorID uint, count int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("post_id > ?", cursorID).
		Order("post_id ASC").
		Limit(count).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes a post by ID. Comments and likes on the post go with
// it through the ON DELETE CASCADE foreign keys.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// IncrementViews bumps the view counter as a side effect of a detail read.
// A plain read-modify-write round trip: concurrent reads can under-count.
func (r *PostgresPostRepository) IncrementViews(post *models.Post) error {
	post.Views++
	if post.Views < 0 {
		post.Views = 0
	}
	return r.db.Model(post).UpdateColumn("views", post.Views).Error
}

// AddLikes applies a like counter delta, clamped at zero
func (r *PostgresPostRepository) AddLikes(post *models.Post, delta int) error {
	post.Likes += delta
	if post.Likes < 0 {
		post.Likes = 0
	}
	return r.db.Model(post).UpdateColumn("likes", post.Likes).Error
}

// AddCommentsCount applies a comment counter delta, clamped at zero
func (r *PostgresPostRepository) AddCommentsCount(post *models.Post, delta int) error {
	post.CommentsCount += delta
	if post.CommentsCount < 0 {
		post.CommentsCount = 0
	}
	return r.db.Model(post).UpdateColumn("comments_count", post.CommentsCount).Error
}

package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imyj1013/community-be/internal/models"
)

func TestUserLookups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresUserRepository(db)
	user := seedUser(t, db, "member@example.com", "member")

	byEmail, err := repo.GetUserByEmail("member@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byNickname, err := repo.GetUserByNickname("member")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byNickname.ID)

	_, err = repo.GetUserByEmail("nobody@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	users := NewPostgresUserRepository(db)
	author := seedUser(t, db, "author@example.com", "author")
	commenter := seedUser(t, db, "reader@example.com", "reader")
	post := seedPost(t, db, author, "doomed")

	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, UserID: commenter.ID, Content: "nice"}).Error)
	require.NoError(t, db.Create(&models.Like{PostID: post.ID, UserID: commenter.ID}).Error)

	require.NoError(t, users.DeleteUser(author.ID))

	var postCount, commentCount, likeCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
	assert.Zero(t, postCount, "posts of a deleted user must be unreachable")
	assert.Zero(t, commentCount, "comments on deleted posts must cascade")
	assert.Zero(t, likeCount, "likes on deleted posts must cascade")

	// the other user survives
	_, err := users.GetUserByID(commenter.ID)
	assert.NoError(t, err)
}

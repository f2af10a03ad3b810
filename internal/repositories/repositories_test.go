package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/imyj1013/community-be/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// sqlite needs foreign keys switched on for the cascades to fire
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, nickname string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Nickname: nickname, Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, user *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:         user.ID,
		Title:          title,
		Content:        "content of " + title,
		Summary:        "summary of " + title,
		AuthorNickname: user.Nickname,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/imyj1013/community-be/internal/middleware"
	"github.com/imyj1013/community-be/internal/models"
	"github.com/imyj1013/community-be/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LikeHandler handles liking/unliking and the parent post's like counter
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(e *echo.Echo) {
	e.POST("/like", h.CreateLike)
	e.DELETE("/like/:like_id", h.DeleteLike)
}

// CreateLike adds a like and bumps the post's counter. A second like by the
// same user on the same post is rejected by the existence check.
func (h *LikeHandler) CreateLike(c echo.Context) error {
	var req models.CreateLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_like_create_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_like_create_request")
	}

	post, err := h.postRepository.GetPostByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_like_create_request")
		}
		return err
	}
	if _, err := h.userRepository.GetUserByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_like_create_request")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if session.UserID != req.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(req.PostID, session.UserID)
	if err != nil {
		return err
	}
	if hasLiked {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_like_create_request")
	}

	like := &models.Like{
		PostID: req.PostID,
		UserID: req.UserID,
	}
	if err := h.likeRepository.CreateLike(like); err != nil {
		return err
	}
	if err := h.postRepository.AddLikes(post, 1); err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "like_create_success", echo.Map{"like_id": like.ID})
}

// DeleteLike removes a like and decrements the post's counter, clamped at
// zero; only the like's owner may remove it.
func (h *LikeHandler) DeleteLike(c echo.Context) error {
	likeID, err := parseIDParam(c, "like_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_like_delete_request")
	}

	like, err := h.likeRepository.GetLikeByID(likeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "like_not_found")
		}
		return err
	}

	post, err := h.postRepository.GetPostByID(like.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_like_delete_request")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if like.UserID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	if err := h.likeRepository.DeleteLike(likeID); err != nil {
		return err
	}
	if err := h.postRepository.AddLikes(post, -1); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "like_delete_success", nil)
}

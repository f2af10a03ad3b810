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

// CommentHandler handles comment CRUD and the parent post's comment counter
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
		userRepository:    userRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo) {
	e.POST("/comment", h.CreateComment)
	e.PUT("/comment/:comment_id", h.UpdateComment)
	e.DELETE("/comment/:comment_id", h.DeleteComment)
}

// CreateComment creates a comment and bumps the post's comment counter.
// The two writes are separate round trips; a failure between them leaves
// the counter stale.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_create_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_create_request")
	}

	post, err := h.postRepository.GetPostByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_create_request")
		}
		return err
	}
	if _, err := h.userRepository.GetUserByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_create_request")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if req.UserID != session.UserID {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_create_request")
	}

	comment := &models.Comment{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return err
	}
	if err := h.postRepository.AddCommentsCount(post, 1); err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "comment_create_success", echo.Map{"comment_id": comment.ID})
}

// UpdateComment replaces the content; only the author may update
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_update_request")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_update_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_update_request")
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "comment_not_found")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if comment.UserID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	comment.Content = req.Content
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "comment_update_success", echo.Map{"comment_id": comment.ID})
}

// DeleteComment removes a comment and decrements the post's counter,
// clamped at zero
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_delete_request")
	}

	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "comment_not_found")
		}
		return err
	}

	post, err := h.postRepository.GetPostByID(comment.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_comment_delete_request")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if comment.UserID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	if err := h.commentRepository.DeleteComment(commentID); err != nil {
		return err
	}
	if err := h.postRepository.AddCommentsCount(post, -1); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "comment_delete_success", nil)
}

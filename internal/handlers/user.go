package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/imyj1013/community-be/internal/middleware"
	"github.com/imyj1013/community-be/internal/models"
	"github.com/imyj1013/community-be/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler handles profile mutation, logout and account deletion
type UserHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) *UserHandler {
	return &UserHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
	}
}

// RegisterUserRoutes registers profile-related routes
func (h *UserHandler) RegisterUserRoutes(e *echo.Echo) {
	e.PUT("/user/update-me/:user_id", h.UpdateProfile)
	e.PUT("/user/update-password/:user_id", h.UpdatePassword)
	e.DELETE("/user/logout/:user_id", h.Logout)
	e.DELETE("/user/:user_id", h.DeleteUser)
}

// UpdateProfile updates nickname and profile image of the session's own user
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_profile_update_request")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_profile_update_request")
	}
	if req.Nickname == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_profile_update_request")
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_profile_update_request")
		}
		return err
	}
	if userID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	user.Nickname = *req.Nickname
	user.ProfileImage = req.ProfileImage
	if err := h.userRepository.UpdateUser(user); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "profile_update_success", echo.Map{
		"user_id":       user.ID,
		"nickname":      user.Nickname,
		"profile_image": user.ProfileImage,
	})
}

// UpdatePassword changes the password after re-verifying the current one
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_password_update_request")
	}

	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_password_update_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_password_update_request")
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_password_update_request")
		}
		return err
	}
	if userID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	if err := h.userRepository.UpdateUser(user); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "password_update_success", nil)
}

// Logout destroys the current session once ownership is verified
func (h *UserHandler) Logout(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_logout_request")
	}

	if _, err := h.userRepository.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_logout_request")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok || session.Token == "" || session.Email == "" || session.UserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if userID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	if err := h.sessionRepository.DeleteSessionByToken(c.Request().Context(), session.Token); err != nil {
		return err
	}
	clearSessionCookie(c)

	return respond(c, http.StatusOK, "logout_success", nil)
}

// DeleteUser removes the account; posts, comments and likes cascade away
// through the foreign keys, and every session of the user is revoked.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_user_delete_request")
	}

	if _, err := h.userRepository.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_user_delete_request")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok || session.Token == "" || session.Email == "" || session.UserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if userID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	if err := h.sessionRepository.DeleteSessionsByUserID(c.Request().Context(), userID); err != nil {
		return err
	}
	clearSessionCookie(c)

	if err := h.userRepository.DeleteUser(userID); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "user_delete_success", nil)
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

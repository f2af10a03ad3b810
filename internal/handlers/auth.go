package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/imyj1013/community-be/internal/middleware"
	"github.com/imyj1013/community-be/internal/models"
	"github.com/imyj1013/community-be/internal/repositories"
	"github.com/imyj1013/community-be/validators"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles signup, login and availability checks
type AuthHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
	sessionTTL        time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		sessionTTL:        sessionTTL,
	}
}

// RegisterAuthRoutes registers signup/login/availability routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.POST("/user/signup", h.Signup)
	e.POST("/user/login", h.Login)
	e.GET("/user/check-email", h.CheckEmail)
	e.GET("/user/check-nickname", h.CheckNickname)
}

// Signup handles account registration
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_signup_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_signup_request")
	}
	if !validators.EmailIsValid(req.Email) || !validators.NicknameIsValid(req.Nickname) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_signup_request")
	}

	// Duplicate emails are rejected regardless of nickname
	if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_signup_request")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        req.Email,
		Nickname:     req.Nickname,
		Password:     string(hashedPassword),
		ProfileImage: req.ProfileImage,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "register_success", echo.Map{"user_id": user.ID})
}

// Login verifies credentials and starts (or resumes) a session. Unknown
// email and wrong password fail identically so accounts cannot be enumerated.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_login_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_login_request")
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "login_invalid_email_or_pwd")
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "login_invalid_email_or_pwd")
	}

	ctx := c.Request().Context()
	if session, ok := middleware.SessionFrom(c); ok {
		// A live session for the same user is reused as-is
		if session.Email == req.Email && session.UserID == user.ID {
			return respond(c, http.StatusOK, "login_success", loginData(user, session.Token))
		}
		// A session bound to a different user is destroyed before reissue
		if session.UserID != user.ID {
			if err := h.sessionRepository.DeleteSessionByToken(ctx, session.Token); err != nil {
				return err
			}
		}
	}

	session := &models.Session{
		Token:  uuid.NewString(),
		UserID: user.ID,
		Email:  user.Email,
	}
	if err := h.sessionRepository.CreateSession(ctx, session); err != nil {
		return err
	}
	h.setSessionCookie(c, session.Token)
	middleware.SetSession(c, session)

	return respond(c, http.StatusOK, "login_success", loginData(user, session.Token))
}

func loginData(user *models.User, token string) echo.Map {
	return echo.Map{
		"user_id":          user.ID,
		"profile_img_url":  user.ProfileImage,
		"profile_nickname": user.Nickname,
		"session_id":       token,
	}
}

// CheckEmail reports whether an email is well-formed and still available
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if !validators.EmailIsValid(email) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_email_format")
	}

	_, err := h.userRepository.GetUserByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return respond(c, http.StatusOK, "email_check_success", echo.Map{
		"email":    email,
		"possible": errors.Is(err, gorm.ErrRecordNotFound),
	})
}

// CheckNickname reports whether a nickname is well-formed and still available
func (h *AuthHandler) CheckNickname(c echo.Context) error {
	nickname := c.QueryParam("nickname")
	if !validators.NicknameIsValid(nickname) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_nickname_format")
	}

	_, err := h.userRepository.GetUserByNickname(nickname)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return respond(c, http.StatusOK, "nickname_check_success", echo.Map{
		"nickname": nickname,
		"possible": errors.Is(err, gorm.ErrRecordNotFound),
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

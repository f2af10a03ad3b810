package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/imyj1013/community-be/internal/middleware"
	"github.com/imyj1013/community-be/internal/models"
	"github.com/imyj1013/community-be/internal/repositories"
	"github.com/imyj1013/community-be/internal/summary"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const timestampLayout = "2006-01-02 15:04:05"

// PostHandler handles post CRUD and the cursor-paginated list
type PostHandler struct {
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
	commentRepository repositories.CommentRepository
	likeRepository    repositories.LikeRepository
	summarizer        summary.Summarizer
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, summarizer summary.Summarizer) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		userRepository:    userRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
		summarizer:        summarizer,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo) {
	e.GET("/posts", h.ListPosts)
	e.POST("/posts", h.CreatePost)
	e.GET("/posts/:post_id", h.GetPostDetail)
	e.PUT("/posts/:post_id", h.UpdatePost)
	e.DELETE("/posts/:post_id", h.DeletePost)
}

// ListPosts returns posts with id strictly greater than the cursor,
// ascending, truncated to count. The next cursor is the last id returned,
// or the incoming cursor when the page is empty. No session is required.
func (h *PostHandler) ListPosts(c echo.Context) error {
	cursorID, err := strconv.Atoi(c.QueryParam("cursor_id"))
	if err != nil || cursorID < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_posts_list_request")
	}
	count, err := strconv.Atoi(c.QueryParam("count"))
	if err != nil || count <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_posts_list_request")
	}

	posts, err := h.postRepository.ListPostsAfter(uint(cursorID), count)
	if err != nil {
		return err
	}

	nextCursor := uint(cursorID)
	if len(posts) > 0 {
		nextCursor = posts[len(posts)-1].ID
	}

	postList := make([]echo.Map, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		author, err := h.userRepository.GetUserByID(p.UserID)
		if err != nil {
			return err
		}
		postList = append(postList, echo.Map{
			"post_id":              p.ID,
			"title":                p.Title,
			"author_nickname":      author.Nickname,
			"author_profile_image": author.ProfileImage,
			"created_at":           formatTimestamp(p.CreatedAt),
			"summary":              p.Summary,
			"views":                p.Views,
			"comments_count":       p.CommentsCount,
			"likes":                p.Likes,
		})
	}

	return respond(c, http.StatusOK, "posts_list_success", echo.Map{
		"post_list":   postList,
		"next_cursor": nextCursor,
	})
}

// CreatePost summarizes the content and stores the post with the author's
// nickname denormalized onto it.
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_create_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_create_request")
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}

	user, err := h.userRepository.GetUserByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_create_request")
		}
		return err
	}
	if req.UserID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	postSummary, err := h.summarizer.Summarize(c.Request().Context(), req.Content)
	if err != nil {
		return err
	}

	post := &models.Post{
		UserID:         req.UserID,
		Title:          req.Title,
		Content:        req.Content,
		Summary:        postSummary,
		ImageURL:       req.ImageURL,
		AuthorNickname: user.Nickname,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "post_create_success", echo.Map{"post_id": post.ID})
}

// GetPostDetail returns the full post with its comments and the session
// user's like state, and bumps the view counter as a read side effect.
func (h *PostHandler) GetPostDetail(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_posts_detail_request")
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post_not_found")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return err
	}

	myLike, err := h.likeRepository.GetMyLike(postID, session.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	commentList := make([]echo.Map, 0, len(comments))
	for i := range comments {
		cm := &comments[i]
		author, err := h.userRepository.GetUserByID(cm.UserID)
		if err != nil {
			return err
		}
		commentList = append(commentList, echo.Map{
			"comment_id":           cm.ID,
			"content":              cm.Content,
			"author_nickname":      author.Nickname,
			"author_profile_image": author.ProfileImage,
			"created_at":           formatTimestamp(cm.CreatedAt),
			"user_id":              cm.UserID,
		})
	}

	if err := h.postRepository.IncrementViews(post); err != nil {
		return err
	}

	author, err := h.userRepository.GetUserByID(post.UserID)
	if err != nil {
		return err
	}

	var likeID *uint
	if myLike != nil {
		likeID = &myLike.ID
	}

	return respond(c, http.StatusOK, "post_detail_success", echo.Map{
		"post_id":         post.ID,
		"title":           post.Title,
		"content":         post.Content,
		"image_url":       post.ImageURL,
		"author_nickname": author.Nickname,
		"author_user_id":  post.UserID,
		"created_at":      formatTimestamp(post.CreatedAt),
		"updated_at":      formatTimestamp(post.UpdatedAt),
		"views":           post.Views,
		"likes":           post.Likes,
		"comments_count":  post.CommentsCount,
		"comments":        commentList,
		"is_liked_by_me":  myLike != nil,
		"like_id":         likeID,
	})
}

// UpdatePost re-summarizes the content and saves the post; only the owner
// may update.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_update_request")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_update_request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_update_request")
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post_not_found")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}

	if _, err := h.userRepository.GetUserByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_update_request")
		}
		return err
	}
	if post.UserID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	postSummary, err := h.summarizer.Summarize(c.Request().Context(), req.Content)
	if err != nil {
		return err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.Summary = postSummary
	post.ImageURL = req.ImageURL
	if err := h.postRepository.UpdatePost(post); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "post_update_success", echo.Map{"post_id": postID})
}

// DeletePost removes a post; comments and likes cascade away
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid_post_delete_request")
	}

	post, err := h.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "post_not_found")
		}
		return err
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized_user")
	}
	if post.UserID != session.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden_user")
	}

	if err := h.postRepository.DeletePost(postID); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "post_delete_success", nil)
}

func formatTimestamp(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(timestampLayout)
}

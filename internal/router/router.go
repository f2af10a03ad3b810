package router

import (
	"context"
	"log"
	"time"

	"github.com/imyj1013/community-be/internal/handlers"
	"github.com/imyj1013/community-be/internal/middleware"
	"github.com/imyj1013/community-be/internal/models"
	"github.com/imyj1013/community-be/internal/repositories"
	"github.com/imyj1013/community-be/internal/summary"
	"github.com/imyj1013/community-be/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// Deps bundles the dependencies the routes are built on. Production wiring
// comes from SetupRoutes; tests construct Deps directly.
type Deps struct {
	Users      repositories.UserRepository
	Posts      repositories.PostRepository
	Comments   repositories.CommentRepository
	Likes      repositories.LikeRepository
	Sessions   repositories.SessionRepository
	Summarizer summary.Summarizer
	SessionTTL time.Duration
	ImageDir   string
	BaseURL    string
}

// SetupRoutes migrates the schema, builds the repositories and registers
// all application routes
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	sessionRepo := repositories.NewMongoSessionRepository(mgClient.Database(cfg.MongoDatabase), cfg.SessionTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sessionRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create session indexes: %v", err)
	}
	log.Println("MongoDB session indexes ensured.")

	var summarizer summary.Summarizer = summary.Noop{}
	if cfg.SummaryAPIURL != "" {
		summarizer = summary.NewClient(cfg.SummaryAPIURL)
	} else {
		log.Println("SUMMARY_API_URL not set, post summaries fall back to truncated content.")
	}

	Register(e, Deps{
		Users:      repositories.NewPostgresUserRepository(pgdb),
		Posts:      repositories.NewPostgresPostRepository(pgdb),
		Comments:   repositories.NewPostgresCommentRepository(pgdb),
		Likes:      repositories.NewPostgresLikeRepository(pgdb),
		Sessions:   sessionRepo,
		Summarizer: summarizer,
		SessionTTL: cfg.SessionTTL,
		ImageDir:   cfg.ImageDir,
		BaseURL:    cfg.BaseURL,
	})
}

// Register wires middleware-resolved sessions and all handlers onto the
// Echo instance
func Register(e *echo.Echo, d Deps) {
	e.Use(middleware.SessionLoader(d.Sessions))

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(d.Users, d.Sessions, d.SessionTTL)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	userHandler := handlers.NewUserHandler(d.Users, d.Sessions)
	userHandler.RegisterUserRoutes(e)
	log.Println("User routes configured.")

	imageHandler := handlers.NewImageHandler(d.ImageDir, d.BaseURL)
	imageHandler.RegisterImageRoutes(e)
	e.Static("/image", d.ImageDir)
	log.Println("Image routes configured.")

	postHandler := handlers.NewPostHandler(d.Posts, d.Users, d.Comments, d.Likes, d.Summarizer)
	postHandler.RegisterPostRoutes(e)
	log.Println("Post routes configured.")

	commentHandler := handlers.NewCommentHandler(d.Comments, d.Posts, d.Users)
	commentHandler.RegisterCommentRoutes(e)
	log.Println("Comment routes configured.")

	likeHandler := handlers.NewLikeHandler(d.Likes, d.Posts, d.Users)
	likeHandler.RegisterLikeRoutes(e)
	log.Println("Like routes configured.")

	log.Println("All routes configured.")
}

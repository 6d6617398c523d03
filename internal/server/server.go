// Package server contains the HTTP handlers and routing for the application's API.
package server

import (
	"context"
	"fmt"
	"time"

	"glimpse/internal/auth"
	"glimpse/internal/config"
	"glimpse/internal/database"
	"glimpse/internal/middleware"
	"glimpse/internal/models"
	"glimpse/internal/repository"
	"glimpse/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// sessionCookie is the name of the HTTP-only cookie carrying the session token.
const sessionCookie = "token"

// Server holds all dependencies and provides handlers.
type Server struct {
	config       *config.Config
	db           *gorm.DB
	tokens       *auth.Manager
	userRepo     repository.UserRepository
	users        *service.UserService
	posts        *service.PostService
	interactions *service.InteractionService
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDB(cfg, db), nil
}

// NewServerWithDB wires the server on an existing database handle. Tests use
// this with an in-memory database.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	tokens := auth.NewManager(cfg.JWTSecret)
	projector := service.NewProjector(userRepo)

	return &Server{
		config:       cfg,
		db:           db,
		tokens:       tokens,
		userRepo:     userRepo,
		users:        service.NewUserService(userRepo, tokens),
		posts:        service.NewPostService(postRepo, projector),
		interactions: service.NewInteractionService(postRepo, commentRepo, projector),
	}
}

// App builds the Fiber application with middleware and routes configured.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "Glimpse API",
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return models.RespondWithError(c, fe.Code, fe)
			}
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())
	app.Use(middleware.ContextMiddleware())

	prom := fiberprometheus.New("glimpse")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	api := app.Group("/api")

	api.Get("/", s.HealthCheck)

	user := api.Group("/user")
	user.Post("/register", s.Register)
	user.Post("/login", s.Login)
	user.Get("/logout", s.Logout)
	user.Get("/all", s.GetAllUsers)
	user.Put("/updateuser/:id", s.AuthRequired(), s.UpdateUser)
	user.Get("/current-user", s.AuthRequired(), s.CurrentUser)
	user.Delete("/delete/:id", s.AuthRequired(), s.DeleteUser)

	post := api.Group("/userpost", s.AuthRequired())
	post.Post("/addpost", s.AddPost)
	post.Get("/myposts", s.MyPosts)
	post.Get("/allpost", s.AllPosts)
	post.Put("/update/:id", s.UpdatePost)
	post.Delete("/delete/:id", s.DeletePost)

	interact := api.Group("/interact", s.AuthRequired())
	interact.Post("/like/:postId", s.LikePost)
	interact.Post("/comment/:postId", s.AddComment)
	interact.Delete("/comment/:postId/delete/:commentId", s.DeleteComment)
}

// HealthCheck handles health check requests.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Glimpse API",
		"status":  dbStatus,
		"time":    time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It reads the session
// cookie, verifies the token, and stores the caller's user ID in locals.
// Missing and invalid credentials both map to 401 with distinct messages.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(sessionCookie)
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Unauthorized: No token"))
		}

		userID, err := s.tokens.VerifyToken(tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Unauthorized: Invalid token"))
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// Start starts the server.
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown releases held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}
	middleware.Logger.InfoContext(ctx, "server shutdown complete")
	return nil
}

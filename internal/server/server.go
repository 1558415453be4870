package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/emilythestrangee/nc-news/backend/internal/config"
	"github.com/emilythestrangee/nc-news/backend/internal/database"
	"github.com/emilythestrangee/nc-news/backend/internal/handlers"
	"github.com/emilythestrangee/nc-news/backend/internal/middleware"
	"github.com/emilythestrangee/nc-news/backend/internal/store"
)

type Server struct {
	db      *database.Database
	handler *handlers.Handler
	log     *zap.Logger
}

// New wires the database, store, and handlers together. The caller owns the
// database handle and closes it on shutdown.
func New(db *database.Database, log *zap.Logger) *Server {
	return &Server{
		db:      db,
		handler: handlers.NewHandler(store.New(db)),
		log:     log,
	}
}

// HTTPServer wraps the configured router in an http.Server ready to listen.
func (s *Server) HTTPServer(cfg config.ServerConfig) *http.Server {
	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(s.log))
	r.Use(middleware.ErrorHandler(s.log))

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health(c.Request.Context()))
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("", s.handler.API.GetAPI)

		api.GET("/topics", s.handler.Topic.GetTopics)
		api.POST("/topics", s.handler.Topic.CreateTopic)

		api.GET("/articles", s.handler.Article.GetArticles)
		api.POST("/articles", s.handler.Article.CreateArticle)
		api.GET("/articles/:article_id", s.handler.Article.GetArticle)
		api.PATCH("/articles/:article_id", s.handler.Article.UpdateArticle)
		api.DELETE("/articles/:article_id", s.handler.Article.DeleteArticle)

		api.GET("/articles/:article_id/comments", s.handler.Comment.GetArticleComments)
		api.POST("/articles/:article_id/comments", s.handler.Comment.CreateComment)

		api.PATCH("/comments/:comment_id", s.handler.Comment.UpdateComment)
		api.DELETE("/comments/:comment_id", s.handler.Comment.DeleteComment)

		api.GET("/users", s.handler.User.GetUsers)
		api.GET("/users/:username", s.handler.User.GetUser)
	}

	// Catch-all for any path the routing table does not recognise.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Invalid Endpoint"})
	})

	return r
}

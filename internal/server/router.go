package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/neuroscale/neuroscale-site/internal/handlers"
  "github.com/neuroscale/neuroscale-site/internal/middleware"
)

type RouterConfig struct {
  AuthHandler    *handlers.AuthHandler
  AuthMiddleware *middleware.AuthMiddleware
  GraphQLHandler *handlers.GraphQLHandler
  AllowOrigins   []string
}

// NewRouter assembles the content-service router: one query/mutation
// endpoint plus session login. Sessions are attached opportunistically; the
// executor's access rules decide per operation.
func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  origins := cfg.AllowOrigins
  if len(origins) == 0 {
    origins = []string{"http://localhost:3000", "http://localhost:8081"}
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     origins,
    AllowMethods:     []string{"GET", "POST", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    api.POST("/auth/login", cfg.AuthHandler.Login)
    api.POST("/graphql", cfg.AuthMiddleware.AttachSession(), cfg.GraphQLHandler.Execute)
  }

  return router
}

package api

import (
	"net/http"

	articleDelivery "articles-backend/internal/article/delivery"
	articleUsecase "articles-backend/internal/article/usecase"
	"articles-backend/internal/auth/delivery"
	authUsecase "articles-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, articleUsecase articleUsecase.ArticleUsecase) {
	authHandler := delivery.NewAuthHandler(authUsecase)
	articleHandler := articleDelivery.NewArticleHandler(articleUsecase)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes, mounted at the root for legacy clients
	r.POST("/login", authHandler.Login)
	r.POST("/signup", authHandler.Signup)
	r.POST("/reset-password", authHandler.ResetPassword)
	r.GET("/check", authHandler.Check)
	r.GET("/infos-user", delivery.AuthMiddleware(authUsecase), authHandler.UserInfos)

	// Article routes
	articles := r.Group("/articles")
	{
		articles.GET("", articleHandler.List)
		articles.GET("/:id", articleHandler.Get)
		articles.POST("/save", articleHandler.Save)
		articles.DELETE("/:id", articleHandler.Delete)
	}
}

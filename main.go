package main

import (
	"log"

	api "articles-backend/cmd/api"
	articledomain "articles-backend/internal/article/domain"
	articleRepo "articles-backend/internal/article/repository"
	articleUsecase "articles-backend/internal/article/usecase"
	authdomain "articles-backend/internal/auth/domain"
	authRepo "articles-backend/internal/auth/repository"
	authUsecase "articles-backend/internal/auth/usecase"
	"articles-backend/pkg/config"
	"articles-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &articledomain.Article{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	articleRepository := articleRepo.NewArticleRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	articleUsecaseInstance := articleUsecase.NewArticleUsecase(articleRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, articleUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

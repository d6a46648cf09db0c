package repository

import (
	articledomain "articles-backend/internal/article/domain"
)

// ArticleRepository abstracts persistence for articles.
type ArticleRepository interface {
	FindAll() ([]articledomain.Article, error)
	FindByID(id string) (*articledomain.Article, error)
	Create(article *articledomain.Article) error
	Update(article *articledomain.Article) error
	Delete(id string) error
}

package usecase

import (
	"errors"

	articledomain "articles-backend/internal/article/domain"
	articledto "articles-backend/internal/article/dto"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleUsecase interface {
	List() ([]articledomain.Article, error)
	Get(id string) (*articledomain.Article, error)

	// Save creates the article when the request carries no ID and updates
	// the existing one otherwise. Content is only set on create.
	Save(req *articledto.SaveArticleRequest) (*articledomain.Article, error)

	Delete(id string) error
}

package repository

import (
	"errors"
	"time"

	articledomain "articles-backend/internal/article/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// articleRepository implements ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new instance of articleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

func (r *articleRepository) FindAll() ([]articledomain.Article, error) {
	var articles []articledomain.Article
	if err := r.db.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindByID(id string) (*articledomain.Article, error) {
	var article articledomain.Article
	err := r.db.Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Create(article *articledomain.Article) error {
	article.ID = uuid.New().String()
	article.CreatedAt = time.Now()
	article.UpdatedAt = time.Now()
	return r.db.Create(article).Error
}

func (r *articleRepository) Update(article *articledomain.Article) error {
	article.UpdatedAt = time.Now()
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&articledomain.Article{}).Error
}

package usecase

import (
	articledomain "articles-backend/internal/article/domain"
	articledto "articles-backend/internal/article/dto"
	"articles-backend/internal/article/repository"
)

// articleUsecase implements ArticleUsecase interface
type articleUsecase struct {
	articleRepo repository.ArticleRepository
}

// NewArticleUsecase creates a new instance of articleUsecase
func NewArticleUsecase(articleRepo repository.ArticleRepository) ArticleUsecase {
	return &articleUsecase{
		articleRepo: articleRepo,
	}
}

func (u *articleUsecase) List() ([]articledomain.Article, error) {
	return u.articleRepo.FindAll()
}

func (u *articleUsecase) Get(id string) (*articledomain.Article, error) {
	article, err := u.articleRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (u *articleUsecase) Save(req *articledto.SaveArticleRequest) (*articledomain.Article, error) {
	if req.ID != "" {
		article, err := u.articleRepo.FindByID(req.ID)
		if err != nil {
			return nil, err
		}
		if article == nil {
			return nil, ErrArticleNotFound
		}

		article.Title = req.Title
		article.Desc = req.Desc
		article.Author = req.Author
		article.ImgPath = req.ImgPath

		if err := u.articleRepo.Update(article); err != nil {
			return nil, err
		}
		return article, nil
	}

	article := &articledomain.Article{
		Title:   req.Title,
		Desc:    req.Desc,
		Author:  req.Author,
		ImgPath: req.ImgPath,
		Content: req.Content,
	}
	if err := u.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (u *articleUsecase) Delete(id string) error {
	article, err := u.articleRepo.FindByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	return u.articleRepo.Delete(id)
}

package usecase

import (
	"errors"
	"testing"

	articledomain "articles-backend/internal/article/domain"
	articledto "articles-backend/internal/article/dto"

	"github.com/stretchr/testify/require"
)

type fakeArticleRepo struct {
	byID    map[string]*articledomain.Article
	findErr error

	created *articledomain.Article
	updated *articledomain.Article
	deleted string
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byID: map[string]*articledomain.Article{}}
}

func (f *fakeArticleRepo) FindAll() ([]articledomain.Article, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	articles := make([]articledomain.Article, 0, len(f.byID))
	for _, a := range f.byID {
		articles = append(articles, *a)
	}
	return articles, nil
}

func (f *fakeArticleRepo) FindByID(id string) (*articledomain.Article, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byID[id], nil
}

func (f *fakeArticleRepo) Create(article *articledomain.Article) error {
	article.ID = "fake-id"
	f.created = article
	f.byID[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) Update(article *articledomain.Article) error {
	f.updated = article
	f.byID[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) Delete(id string) error {
	f.deleted = id
	delete(f.byID, id)
	return nil
}

func TestSaveCreatesWithoutID(t *testing.T) {
	repo := newFakeArticleRepo()
	uc := NewArticleUsecase(repo)

	article, err := uc.Save(&articledto.SaveArticleRequest{
		Title:   "First",
		Desc:    "A first article",
		Author:  "a",
		Content: "body",
	})
	require.NoError(t, err)
	require.NotEmpty(t, article.ID)
	require.Equal(t, "body", repo.created.Content)
}

func TestSaveUpdatesWithID(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.byID["42"] = &articledomain.Article{ID: "42", Title: "Old", Desc: "old", Author: "a", Content: "keep"}
	uc := NewArticleUsecase(repo)

	article, err := uc.Save(&articledto.SaveArticleRequest{
		ID:      "42",
		Title:   "New",
		Desc:    "new",
		Author:  "b",
		Content: "ignored on update",
	})
	require.NoError(t, err)
	require.Equal(t, "New", article.Title)
	// Content is untouched by updates.
	require.Equal(t, "keep", article.Content)
	require.NotNil(t, repo.updated)
}

func TestSaveUnknownID(t *testing.T) {
	uc := NewArticleUsecase(newFakeArticleRepo())

	_, err := uc.Save(&articledto.SaveArticleRequest{ID: "missing", Title: "t", Desc: "d", Author: "a"})
	require.ErrorIs(t, err, ErrArticleNotFound)
}

func TestGetUnknownID(t *testing.T) {
	uc := NewArticleUsecase(newFakeArticleRepo())

	_, err := uc.Get("missing")
	require.ErrorIs(t, err, ErrArticleNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	repo := newFakeArticleRepo()
	uc := NewArticleUsecase(repo)

	err := uc.Delete("missing")
	require.ErrorIs(t, err, ErrArticleNotFound)
	require.Empty(t, repo.deleted)
}

func TestDeleteExisting(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.byID["42"] = &articledomain.Article{ID: "42"}
	uc := NewArticleUsecase(repo)

	require.NoError(t, uc.Delete("42"))
	require.Equal(t, "42", repo.deleted)
}

func TestListPropagatesRepositoryError(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.findErr = errors.New("connection refused")
	uc := NewArticleUsecase(repo)

	_, err := uc.List()
	require.Error(t, err)
}

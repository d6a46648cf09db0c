package delivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	articledomain "articles-backend/internal/article/domain"
	articledto "articles-backend/internal/article/dto"
	"articles-backend/internal/article/usecase"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeArticleUsecase struct {
	listFn   func() ([]articledomain.Article, error)
	getFn    func(id string) (*articledomain.Article, error)
	saveFn   func(req *articledto.SaveArticleRequest) (*articledomain.Article, error)
	deleteFn func(id string) error
}

func (f fakeArticleUsecase) List() ([]articledomain.Article, error) {
	return f.listFn()
}

func (f fakeArticleUsecase) Get(id string) (*articledomain.Article, error) {
	return f.getFn(id)
}

func (f fakeArticleUsecase) Save(req *articledto.SaveArticleRequest) (*articledomain.Article, error) {
	return f.saveFn(req)
}

func (f fakeArticleUsecase) Delete(id string) error {
	return f.deleteFn(id)
}

func newRouter(uc usecase.ArticleUsecase) *gin.Engine {
	h := NewArticleHandler(uc)
	r := gin.New()
	articles := r.Group("/articles")
	articles.GET("", h.List)
	articles.GET("/:id", h.Get)
	articles.POST("/save", h.Save)
	articles.DELETE("/:id", h.Delete)
	return r
}

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var env envelope
	_ = json.Unmarshal(resp.Body.Bytes(), &env)
	return resp, env
}

func TestListArticles(t *testing.T) {
	r := newRouter(fakeArticleUsecase{
		listFn: func() ([]articledomain.Article, error) {
			return []articledomain.Article{{ID: "1", Title: "First"}}, nil
		},
	})

	resp, env := do(t, r, http.MethodGet, "/articles", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var articles []articledomain.Article
	if err := json.Unmarshal(env.Data, &articles); err != nil || len(articles) != 1 {
		t.Fatalf("expected one article in data, got %s", env.Data)
	}
}

func TestGetUnknownArticle(t *testing.T) {
	r := newRouter(fakeArticleUsecase{
		getFn: func(id string) (*articledomain.Article, error) {
			return nil, usecase.ErrArticleNotFound
		},
	})

	resp, env := do(t, r, http.MethodGet, "/articles/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if env.Code != "721" {
		t.Fatalf("expected code 721, got %s", env.Code)
	}
}

func TestSaveCreate(t *testing.T) {
	r := newRouter(fakeArticleUsecase{
		saveFn: func(req *articledto.SaveArticleRequest) (*articledomain.Article, error) {
			return &articledomain.Article{ID: "new-id", Title: req.Title}, nil
		},
	})

	resp, env := do(t, r, http.MethodPost, "/articles/save", map[string]string{
		"title": "First", "desc": "d", "author": "a",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var article articledomain.Article
	if err := json.Unmarshal(env.Data, &article); err != nil || article.ID != "new-id" {
		t.Fatalf("expected created article in data, got %s", env.Data)
	}
}

func TestSaveMissingFields(t *testing.T) {
	r := newRouter(fakeArticleUsecase{
		saveFn: func(req *articledto.SaveArticleRequest) (*articledomain.Article, error) {
			t.Fatal("usecase must not be reached on invalid input")
			return nil, nil
		},
	})

	resp, env := do(t, r, http.MethodPost, "/articles/save", map[string]string{"title": "only"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if env.Code != "713" {
		t.Fatalf("expected code 713, got %s", env.Code)
	}
}

func TestSaveUpdateUnknownID(t *testing.T) {
	r := newRouter(fakeArticleUsecase{
		saveFn: func(req *articledto.SaveArticleRequest) (*articledomain.Article, error) {
			return nil, usecase.ErrArticleNotFound
		},
	})

	resp, env := do(t, r, http.MethodPost, "/articles/save", map[string]string{
		"id": "missing", "title": "t", "desc": "d", "author": "a",
	})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if env.Code != "721" {
		t.Fatalf("expected code 721, got %s", env.Code)
	}
}

func TestDeleteUnknownArticle(t *testing.T) {
	r := newRouter(fakeArticleUsecase{
		deleteFn: func(id string) error {
			return usecase.ErrArticleNotFound
		},
	})

	resp, env := do(t, r, http.MethodDelete, "/articles/missing", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if env.Code != "721" {
		t.Fatalf("expected code 721, got %s", env.Code)
	}
}

func TestDeleteArticle(t *testing.T) {
	r := newRouter(fakeArticleUsecase{
		deleteFn: func(id string) error { return nil },
	})

	resp, env := do(t, r, http.MethodDelete, "/articles/42", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if env.Code != "200" {
		t.Fatalf("expected code 200, got %s", env.Code)
	}
}

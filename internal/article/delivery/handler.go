package delivery

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	articledto "articles-backend/internal/article/dto"
	"articles-backend/internal/article/usecase"
	"articles-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleUsecase usecase.ArticleUsecase
}

func NewArticleHandler(articleUsecase usecase.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		articleUsecase: articleUsecase,
	}
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleUsecase.List()
	if err != nil {
		log.Printf("listing articles failed: %v", err)
		response.JSON(c, http.StatusInternalServerError, response.CodeServerError, "Server error while retrieving articles", nil)
		return
	}

	response.JSON(c, http.StatusOK, response.CodeOK, "The article list was retrieved successfully!", articles)
}

func (h *ArticleHandler) Get(c *gin.Context) {
	id := c.Param("id")

	article, err := h.articleUsecase.Get(id)
	if err != nil {
		if errors.Is(err, usecase.ErrArticleNotFound) {
			response.JSON(c, http.StatusNotFound, response.CodeArticleNotFound, "The article does not exist", nil)
			return
		}
		log.Printf("fetching article %s failed: %v", id, err)
		response.JSON(c, http.StatusInternalServerError, response.CodeServerError, "Server error while retrieving the article", nil)
		return
	}

	response.JSON(c, http.StatusOK, response.CodeOK, "The article was retrieved successfully", article)
}

func (h *ArticleHandler) Save(c *gin.Context) {
	var req articledto.SaveArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, response.CodeMissingFields, "One or more required fields are missing", nil)
		return
	}

	article, err := h.articleUsecase.Save(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrArticleNotFound) {
			response.JSON(c, http.StatusNotFound, response.CodeArticleNotFound, "Could not find the article to update", nil)
			return
		}
		log.Printf("saving article failed: %v", err)
		response.JSON(c, http.StatusInternalServerError, response.CodeServerError, "Server error during the save operation", nil)
		return
	}

	if req.ID != "" {
		response.JSON(c, http.StatusOK, response.CodeOK, "The article was updated successfully", article)
		return
	}
	response.JSON(c, http.StatusOK, response.CodeOK, "Article created successfully!", article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.articleUsecase.Delete(id); err != nil {
		if errors.Is(err, usecase.ErrArticleNotFound) {
			response.JSON(c, http.StatusNotFound, response.CodeArticleNotFound, fmt.Sprintf("Cannot delete a nonexistent article (ID: %s)", id), nil)
			return
		}
		log.Printf("deleting article %s failed: %v", id, err)
		response.JSON(c, http.StatusInternalServerError, response.CodeServerError, "Server error during deletion", nil)
		return
	}

	response.JSON(c, http.StatusOK, response.CodeOK, fmt.Sprintf("Article %s deleted successfully", id), nil)
}

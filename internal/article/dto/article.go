package dto

// SaveArticleRequest serves both create and update: a request carrying an ID
// updates that article, one without an ID creates a new one.
type SaveArticleRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title" binding:"required"`
	Desc    string `json:"desc" binding:"required"`
	Author  string `json:"author" binding:"required"`
	ImgPath string `json:"imgPath"`
	Content string `json:"content"`
}

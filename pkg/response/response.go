package response

import "github.com/gin-gonic/gin"

// APIResponse is the uniform body shape every endpoint answers with.
// Code carries the application-level result code as a string; it is not
// always equal to the HTTP status (legacy clients match on it).
type APIResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Application result codes kept from the legacy API contract.
const (
	CodeOK                 = "200"
	CodeDuplicateOrInvalid = "712"
	CodeMissingFields      = "713"
	CodeArticleNotFound    = "721"
	CodeBadCredentials     = "768"
	CodeUnauthorized       = "401"
	CodeNotFound           = "404"
	CodeServerError        = "500"
)

func JSON(c *gin.Context, status int, code, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

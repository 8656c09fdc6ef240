// utils/response.go
package utils

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Pagination is attached to list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Response is the envelope every endpoint returns.
type Response struct {
	Success    bool              `json:"success"`
	Data       interface{}       `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Success: false, Message: message})
}

// RespondWithServerError hides the raw message outside development mode.
func RespondWithServerError(c *gin.Context, err error) {
	message := "Internal server error"
	if gin.Mode() != gin.ReleaseMode && os.Getenv("GIN_MODE") != "release" && err != nil {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Response{Success: false, Message: message})
}

// RespondWithValidationErrors returns the field-keyed error map that blocks
// submission; no partial writes happen when this fires.
func RespondWithValidationErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

func RespondWithData(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, Response{Success: true, Data: data, Message: message})
}

func RespondWithPagination(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Pagination: &p})
}

// NewPagination computes total pages for a page/limit/total triple.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

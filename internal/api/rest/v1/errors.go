package v1

import (
	"errors"
	"net/http"

	"github.com/Ritsch1/devops-capstone-project/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// abortWithError writes the error JSON for status and stops the handler chain
func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	})
}

// abortWithServiceError maps domain errors onto HTTP statuses. Unknown errors
// become 500 without exposing their text.
func abortWithServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, accounts.ErrAccountNotFound):
		abortWithError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, accounts.ErrDataValidation):
		abortWithError(ctx, http.StatusBadRequest, err.Error())
	default:
		_ = ctx.Error(err)
		abortWithError(ctx, http.StatusInternalServerError, "an internal error occurred")
	}
}

// NotFound handles requests to unknown routes
func NotFound(ctx *gin.Context) {
	abortWithError(ctx, http.StatusNotFound, "the requested resource does not exist")
}

// MethodNotAllowed handles known routes requested with an unsupported method
func MethodNotAllowed(ctx *gin.Context) {
	abortWithError(ctx, http.StatusMethodNotAllowed, ctx.Request.Method+" is not allowed on "+ctx.Request.URL.Path)
}

package responses

import (
	"errors"
	"net/http"

	"echo_api/internal/database"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// FromError is the single boundary that maps the data-access layer's typed
// errors onto HTTP statuses. Handlers call it instead of choosing codes
// themselves.
func FromError(c *gin.Context, err error, message string) {
	var (
		modelErr      *database.ModelNotFoundError
		notFoundErr   *database.NotFoundError
		validationErr *database.ValidationError
	)

	switch {
	case errors.As(err, &validationErr):
		Fail(c, http.StatusBadRequest, err, message)
	case errors.As(err, &notFoundErr), errors.As(err, &modelErr):
		Fail(c, http.StatusNotFound, err, message)
	default:
		Fail(c, http.StatusInternalServerError, err, message)
	}
}

package httperr

import (
	"net/http"

	"sinistro-sync/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps the errs taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	case errs.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

var messages = map[int]string{
	http.StatusBadRequest:          "ValidationError",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusNotFound:            "NotFound",
	http.StatusConflict:            "InvalidTransition",
	http.StatusBadGateway:          "UpstreamError",
	http.StatusInternalServerError: "Internal server error",
}

// Abort classifies err and aborts with the matching status. Client-facing
// failures carry the error text as detail; 500s never do.
func Abort(c *gin.Context, err error) {
	status := StatusFor(err)
	var detail any
	if status != http.StatusInternalServerError {
		detail = errs.Message(err)
	}
	AbortWithError(c, status, err, messages[status], detail)
}

package httperr

import (
	"errors"
	"net/http"

	"car-rental/internal/pkg/errs"

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

// StatusOf maps an error kind to the HTTP status the API answers with.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindInvalidEntity:
		return http.StatusUnprocessableEntity
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindServiceFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithKind answers with the status of err's kind. Client errors expose
// the kind's message; server errors hide it behind fallback.
func AbortWithKind(c *gin.Context, err error, fallback string) {
	status := StatusOf(err)
	msg := fallback

	var e *errs.Error
	if status < http.StatusInternalServerError && errors.As(err, &e) {
		msg = e.Message()
	}

	AbortWithError(c, status, err, msg, nil)
}

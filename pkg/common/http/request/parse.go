package request

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-ringqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-ringqueue/pkg/common/http/response"
	"github.com/huynhanx03/go-ringqueue/pkg/common/http/validation"
)

// ParseRequest binds the JSON body (if any) and query parameters into a T
// and validates it.
func ParseRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if c.Request.ContentLength != 0 && c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errors.Wrap(err, "failed to bind request")
		}
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, errors.Wrap(err, "failed to bind query")
	}

	if ok, msg := validation.IsRequestValid(req); !ok {
		return nil, apperr.New(response.CodeValidationFailed, msg, http.StatusUnprocessableEntity, nil)
	}

	return &req, nil
}

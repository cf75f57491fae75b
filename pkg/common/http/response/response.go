package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-ringqueue/pkg/common/apperr"
)

// Application codes
const (
	CodeSuccess          = 20000
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeInternalServer   = 50000
)

var codeStatus = map[int]int{
	CodeSuccess:          http.StatusOK,
	CodeParamInvalid:     http.StatusBadRequest,
	CodeValidationFailed: http.StatusUnprocessableEntity,
	CodeInternalServer:   http.StatusInternalServerError,
}

var codeMessage = map[int]string{
	CodeSuccess:          "success",
	CodeParamInvalid:     "invalid parameters",
	CodeValidationFailed: "validation failed",
	CodeInternalServer:   "internal server error",
}

// Response is the JSON envelope of every reply.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes data with the status of code.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(statusOf(code), Response{
		Code:    code,
		Message: codeMessage[code],
		Data:    data,
	})
}

// ErrorResponse aborts the request with err. An *apperr.AppError in err's
// chain overrides code and the HTTP status.
func ErrorResponse(c *gin.Context, code int, err error) {
	status := statusOf(code)
	msg := codeMessage[code]
	if ae, ok := apperr.As(err); ok {
		code = ae.Code
		status = ae.HTTPStatus
		msg = ae.Message
	}

	resp := Response{Code: code, Message: msg}
	if err != nil {
		resp.Data = ToErrorResponse(err)
	}
	c.AbortWithStatusJSON(status, resp)
}

// ErrorDetail is the data of an error reply.
type ErrorDetail struct {
	Error string `json:"error"`
}

// ToErrorResponse converts err into the error reply data.
func ToErrorResponse(err error) ErrorDetail {
	return ErrorDetail{Error: err.Error()}
}

func statusOf(code int) int {
	if s, ok := codeStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

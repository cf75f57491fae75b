package apperr

import (
	"fmt"
	"net/http"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
)

// Generic Action Messages
const (
	MsgPushFailed    = "failed to push"
	MsgPopFailed     = "failed to pop"
	MsgVerifyFailed  = "failed to verify"
	MsgCreateFailed  = "failed to create"
	MsgDestroyFailed = "failed to destroy"
)

// CodeQueueBase is added to a queue.Kind to form its application code.
const CodeQueueBase = 41000

// MapError wraps an error with a standardized message
func MapError(serviceName string, err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", serviceName, msg)
	return Wrap(err, code, formattedMsg, httpStatus)
}

// FromQueue maps a queue failure to an AppError with a code derived from its
// kind. Errors without a kind map to a plain internal error.
func FromQueue(serviceName string, err error, msg string) *AppError {
	if err == nil {
		return nil
	}

	kind, ok := queue.KindOf(err)
	if !ok {
		return MapError(serviceName, err, http.StatusInternalServerError, msg, http.StatusInternalServerError)
	}
	return MapError(serviceName, err, CodeQueueBase+int(kind), msg, queueStatus(kind))
}

func queueStatus(kind queue.Kind) int {
	switch kind {
	case queue.KindInvalidArgument:
		return http.StatusBadRequest
	case queue.KindEmptyQueue:
		return http.StatusConflict
	case queue.KindInvalidCapacity, queue.KindAllocationFailure:
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

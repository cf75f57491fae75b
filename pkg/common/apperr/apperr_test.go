package apperr

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
)

func TestFromQueue(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus int
	}{
		{"empty", queue.ErrEmptyQueue, CodeQueueBase + 7, http.StatusConflict},
		{"argument", queue.ErrInvalidArgument, CodeQueueBase + 6, http.StatusBadRequest},
		{"saturated", pkgerrors.WithMessage(queue.ErrInvalidCapacity, "push"), CodeQueueBase + 3, http.StatusInsufficientStorage},
		{"allocation", queue.ErrAllocationFailure, CodeQueueBase + 8, http.StatusInsufficientStorage},
		{"corruption", queue.ErrUnexpectedNormalValue, CodeQueueBase + 5, http.StatusInternalServerError},
		{"foreign", errors.New("boom"), http.StatusInternalServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := FromQueue("queue", tt.err, MsgPopFailed)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
			assert.Equal(t, "queue failed to pop", ae.Message)
			assert.ErrorIs(t, ae, tt.err)
		})
	}
}

func TestFromQueue_Nil(t *testing.T) {
	assert.Nil(t, FromQueue("queue", nil, MsgPushFailed))
}

func TestAs(t *testing.T) {
	ae := New(1, "msg", http.StatusTeapot, nil)
	wrapped := pkgerrors.Wrap(ae, "outer")

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Same(t, ae, got)
	assert.Equal(t, http.StatusTeapot, StatusOf(wrapped))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "msg", New(1, "msg", 400, nil).Error())
	assert.Equal(t, "msg: cause", New(1, "msg", 400, errors.New("cause")).Error())
	assert.Nil(t, Wrap(nil, 1, "msg", 400))
}

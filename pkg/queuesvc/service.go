// Package queuesvc serializes access to one RingQueue and exposes it over HTTP.
package queuesvc

import (
	"context"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-ringqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-ringqueue/pkg/diag/dump"
	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

const serviceName = "queue"

// PushRequest carries the value to append. Poison is rejected here since the
// queue cannot tell it apart from an empty slot.
type PushRequest struct {
	Value *queue.Value `json:"value" validate:"required,ne=12648430"`
}

type PushResponse struct {
	Size     int `json:"size"`
	Capacity int `json:"capacity"`
}

type PopRequest struct{}

type PopResponse struct {
	Value    queue.Value `json:"value"`
	Size     int         `json:"size"`
	Capacity int         `json:"capacity"`
}

type VerifyRequest struct{}

type VerifyResponse struct {
	OK   bool   `json:"ok"`
	Kind string `json:"kind"`
	Code uint8  `json:"code"`
}

type InspectRequest struct{}

// Service owns a RingQueue and guards every call with a mutex.
type Service struct {
	mu    sync.Mutex
	q     *queue.RingQueue
	label string
	log   *zap.Logger
}

// New creates the service queue from cfg.
func New(cfg settings.Queue, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	q, err := queue.New(cfg.InitialCapacity,
		queue.WithMaxCapacity(cfg.MaxCapacity),
		queue.WithLogger(log.With(zap.String("queue", cfg.Label))),
	)
	if err != nil {
		return nil, apperr.FromQueue(serviceName, err, apperr.MsgCreateFailed)
	}

	return &Service{q: q, label: cfg.Label, log: log}, nil
}

// Push appends req.Value.
func (s *Service) Push(_ context.Context, req *PushRequest) (*PushResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.q.Push(*req.Value); err != nil {
		return nil, apperr.FromQueue(serviceName, err, apperr.MsgPushFailed)
	}
	return &PushResponse{Size: s.q.Len(), Capacity: s.q.Cap()}, nil
}

// Pop removes the oldest value.
func (s *Service) Pop(_ context.Context, _ *PopRequest) (*PopResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.q.Pop()
	if err != nil {
		return nil, apperr.FromQueue(serviceName, err, apperr.MsgPopFailed)
	}
	return &PopResponse{Value: v, Size: s.q.Len(), Capacity: s.q.Cap()}, nil
}

// Verify reports the verification result. A failing verification is a
// successful call.
func (s *Service) Verify(_ context.Context, _ *VerifyRequest) (*VerifyResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	verr := s.q.Verify()
	kind, ok := queue.KindOf(verr)
	if !ok {
		return nil, apperr.FromQueue(serviceName, verr, apperr.MsgVerifyFailed)
	}
	return &VerifyResponse{OK: verr == nil, Kind: kind.String(), Code: uint8(kind)}, nil
}

// Inspect returns a snapshot of the queue.
func (s *Service) Inspect(_ context.Context, _ *InspectRequest) (*queue.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.q.Inspect()
	return &snap, nil
}

// Dump writes the diagnostic dump of the queue to w.
func (s *Service) Dump(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dump.Queue(w, s.label, s.q)
}

// Close destroys the queue. A queue failing verification is left allocated.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.q.Destroy(); err != nil {
		s.log.Error("queue destroy failed", zap.String("queue", s.label), zap.Error(err))
		return apperr.FromQueue(serviceName, err, apperr.MsgDestroyFailed)
	}
	return nil
}

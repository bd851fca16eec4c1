// README: Test center service.
package testcenter

import (
	"context"
	"errors"

	"roadready/internal/types"
)

var (
	ErrNotFound   = errors.New("test center not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]TestCenter, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*TestCenter, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

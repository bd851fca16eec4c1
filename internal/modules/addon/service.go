// README: Add-on catalogue service.
package addon

import (
	"context"
	"errors"

	"roadready/internal/modules/pricing"
	"roadready/internal/types"
)

var (
	ErrNotFound   = errors.New("addon not found")
	ErrBadRequest = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, testType pricing.TestType) ([]Addon, error) {
	if testType != "" && testType != pricing.TestTypeG2 && testType != pricing.TestTypeG {
		return nil, ErrBadRequest
	}
	return s.store.List(ctx, testType)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Addon, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

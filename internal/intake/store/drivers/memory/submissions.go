package memory

import (
	"context"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
	"github.com/lodgeworks/gatehouse/internal/intake/store"
)

type submissionsRepo struct {
	s *Store
}

func (r *submissionsRepo) Create(ctx context.Context, f domain.FormSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.submissions[f.ID]; ok {
		return store.ErrAlreadyExists
	}
	r.s.submissions[f.ID] = f
	return nil
}

func (r *submissionsRepo) GetByID(ctx context.Context, id string) (domain.FormSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.submissions[id]
	if !ok {
		return domain.FormSubmission{}, store.ErrNotFound
	}
	return f, nil
}

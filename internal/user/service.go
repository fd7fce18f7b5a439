package user

import (
	apperrors "github.com/frahmantamala/asset-management/internal"
)

type Repository interface {
	GetByEmail(email string) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByEmail resolves a token subject to its account. The subject can vanish
// between token issuance and use, which surfaces as not-found.
func (s *Service) GetByEmail(email string) (*User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

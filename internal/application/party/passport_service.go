package party

import (
	"context"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// PassportService handles passport administration.
type PassportService struct {
	passports persistence.Store[party.Passport]
}

// NewPassportService creates a new PassportService.
func NewPassportService(passports persistence.Store[party.Passport]) *PassportService {
	return &PassportService{passports: passports}
}

// Create adds a passport for a person.
func (s *PassportService) Create(ctx context.Context, req CreatePassportRequest) (*party.Passport, error) {
	passport, derr := party.NewPassport(req.PassportIDNumber, req.IssueDate, req.ExpireDate, req.PersonID)
	if derr != nil {
		return nil, derr
	}
	if err := s.passports.Create(ctx, passport); err != nil {
		return nil, err
	}
	return passport, nil
}

// Get retrieves a passport by id.
func (s *PassportService) Get(ctx context.Context, id int64) (*party.Passport, error) {
	return s.passports.Get(ctx, id)
}

// List returns all passports ordered by ascending id.
func (s *PassportService) List(ctx context.Context) ([]party.Passport, error) {
	return s.passports.List(ctx)
}

// Update applies a partial update to a passport.
func (s *PassportService) Update(ctx context.Context, id int64, req UpdatePassportRequest) (*party.Passport, error) {
	return s.passports.Update(ctx, id, req.Changes())
}

// Delete removes a passport. Its history rows remain.
func (s *PassportService) Delete(ctx context.Context, id int64) error {
	return s.passports.Delete(ctx, id)
}

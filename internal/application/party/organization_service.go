package party

import (
	"context"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// OrganizationService handles organization administration.
type OrganizationService struct {
	orgs persistence.Store[party.Organization]
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(orgs persistence.Store[party.Organization]) *OrganizationService {
	return &OrganizationService{orgs: orgs}
}

// Create adds an organization with a freshly hashed password.
func (s *OrganizationService) Create(ctx context.Context, req CreateOrganizationRequest) (*party.Organization, error) {
	org, derr := party.NewOrganization(req.FederalTaxID, req.NameEN, req.Username, req.Password)
	if derr != nil {
		return nil, derr
	}
	org.NameTH = req.NameTH
	org.OrganizationTypeID = req.OrganizationTypeID
	org.IndustryTypeID = req.IndustryTypeID
	org.EmployeeCountRangeID = req.EmployeeCountRangeID
	org.Comment = req.Comment

	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Get retrieves an organization by id.
func (s *OrganizationService) Get(ctx context.Context, id int64) (*party.Organization, error) {
	return s.orgs.Get(ctx, id)
}

// List returns all organizations ordered by ascending id.
func (s *OrganizationService) List(ctx context.Context) ([]party.Organization, error) {
	return s.orgs.List(ctx)
}

// Update applies a partial update to an organization.
func (s *OrganizationService) Update(ctx context.Context, id int64, req UpdateOrganizationRequest) (*party.Organization, error) {
	changes, derr := req.Changes()
	if derr != nil {
		return nil, derr
	}
	return s.orgs.Update(ctx, id, changes)
}

// Delete removes an organization. Its history rows remain.
func (s *OrganizationService) Delete(ctx context.Context, id int64) error {
	return s.orgs.Delete(ctx, id)
}

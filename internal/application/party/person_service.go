package party

import (
	"context"

	"github.com/partyhub/backend/internal/domain/party"
	"github.com/partyhub/backend/internal/infrastructure/persistence"
)

// PersonService handles person administration.
type PersonService struct {
	persons persistence.Store[party.Person]
}

// NewPersonService creates a new PersonService.
func NewPersonService(persons persistence.Store[party.Person]) *PersonService {
	return &PersonService{persons: persons}
}

// Create adds a person with a freshly hashed password.
func (s *PersonService) Create(ctx context.Context, req CreatePersonRequest) (*party.Person, error) {
	person, derr := party.NewPerson(req.Username, req.Password, req.PersonalIDNumber, req.FirstName, req.LastName)
	if derr != nil {
		return nil, derr
	}
	person.MiddleName = req.MiddleName
	person.NickName = req.NickName
	person.BirthDate = req.BirthDate
	person.GenderTypeID = req.GenderTypeID
	person.MaritalStatusTypeID = req.MaritalStatusTypeID
	person.CountryID = req.CountryID
	person.Height = req.Height
	person.Weight = req.Weight
	person.EthnicityTypeID = req.EthnicityTypeID
	person.IncomeRangeID = req.IncomeRangeID
	person.Comment = req.Comment

	if err := s.persons.Create(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// Get retrieves a person by id.
func (s *PersonService) Get(ctx context.Context, id int64) (*party.Person, error) {
	return s.persons.Get(ctx, id)
}

// List returns all persons ordered by ascending id.
func (s *PersonService) List(ctx context.Context) ([]party.Person, error) {
	return s.persons.List(ctx)
}

// Update applies a partial update to a person.
func (s *PersonService) Update(ctx context.Context, id int64, req UpdatePersonRequest) (*party.Person, error) {
	changes, derr := req.Changes()
	if derr != nil {
		return nil, derr
	}
	return s.persons.Update(ctx, id, changes)
}

// Delete removes a person. Its history rows remain.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	return s.persons.Delete(ctx, id)
}

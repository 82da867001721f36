package service

import (
	"context"
	"strings"

	"go-contacts-api/internal/model"
	"go-contacts-api/internal/validation"
)

const missingContactFields = "You must include a first name, last name and email"

type contactStore interface {
	List(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id int64) (model.Contact, error)
	Create(ctx context.Context, c *model.Contact) error
	Update(ctx context.Context, c model.Contact) error
	Delete(ctx context.Context, id int64) error
}

type ContactService struct {
	contacts contactStore
}

func NewContactService(contacts contactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id int64) (model.Contact, error) {
	return s.contacts.FindByID(ctx, id)
}

func (s *ContactService) Create(ctx context.Context, req model.CreateContactRequest) (model.Contact, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)

	if err := validation.Struct(req, missingContactFields); err != nil {
		return model.Contact{}, err
	}

	contact := model.Contact{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
	if err := s.contacts.Create(ctx, &contact); err != nil {
		return model.Contact{}, err
	}
	return contact, nil
}

// Update applies the supplied fields of req to contact id; absent fields keep
// their stored value.
func (s *ContactService) Update(ctx context.Context, id int64, req model.UpdateContactRequest) (model.Contact, error) {
	req.FirstName = trimPtr(req.FirstName)
	req.LastName = trimPtr(req.LastName)
	req.Email = trimPtr(req.Email)

	if err := validation.Struct(req, missingContactFields); err != nil {
		return model.Contact{}, err
	}

	current, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return model.Contact{}, err
	}

	updated := req.Patch().Apply(current)
	if updated == current {
		return current, nil
	}
	if err := s.contacts.Update(ctx, updated); err != nil {
		return model.Contact{}, err
	}
	return updated, nil
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.contacts.Delete(ctx, id)
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	return &trimmed
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/phonebook/internal/contact/domain"
)

// mockContactRepository is a mock implementation of ContactRepository for testing.
type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Save(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepository) FindByID(ctx context.Context, id domain.ContactID) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *mockContactRepository) FindAll(ctx context.Context) ([]*domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Contact), args.Error(1)
}

func (m *mockContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepository) Delete(ctx context.Context, id domain.ContactID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContactRepository) Search(ctx context.Context, query string) ([]*domain.Contact, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Contact), args.Error(1)
}

func (m *mockContactRepository) Exists(ctx context.Context, id domain.ContactID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockContactRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func mustPhone(t *testing.T, raw string) domain.PhoneNumber {
	t.Helper()
	phone, err := domain.NewPhoneNumber(raw)
	require.NoError(t, err)
	return phone
}

func mustEmail(t *testing.T, raw string) domain.Email {
	t.Helper()
	email, err := domain.NewEmail(raw)
	require.NoError(t, err)
	return email
}

func newTestContact(t *testing.T, firstName, lastName string) *domain.Contact {
	t.Helper()
	return domain.NewContact(
		firstName,
		lastName,
		[]domain.PhoneNumber{mustPhone(t, "5551234567")},
		[]domain.Email{mustEmail(t, "test@example.com")},
	)
}

package usecase

import (
	"context"
	"testing"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContactTestService(t *testing.T) (ContactService, *fakeContactRepo) {
	t.Helper()

	contacts := newFakeContactRepo()
	repo := &repository.Repository{Contact: contacts}

	return NewContactService(repo, zap.NewNop()), contacts
}

func TestSubmitContactStartsAsNew(t *testing.T) {
	service, _ := newContactTestService(t)

	result, err := service.SubmitContact(context.Background(), &request.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Weekend rates",
		Message: "Do you offer weekend discounts on SUVs?",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ContactStatusNew, result.Status)
	assert.NotEmpty(t, result.ID)
}

func TestSubmitContactValidation(t *testing.T) {
	service, _ := newContactTestService(t)

	_, err := service.SubmitContact(context.Background(), &request.ContactRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		// missing subject and message
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestContactStatusWorkflow(t *testing.T) {
	service, _ := newContactTestService(t)

	created, err := service.SubmitContact(context.Background(), &request.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Weekend rates",
		Message: "Do you offer weekend discounts on SUVs?",
	})
	require.NoError(t, err)

	updated, err := service.UpdateStatus(context.Background(), created.ID, &request.UpdateContactStatusRequest{Status: "read"})
	require.NoError(t, err)
	assert.Equal(t, entity.ContactStatusRead, updated.Status)

	status := "read"
	result, err := service.ListContacts(context.Background(), &status)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, created.ID, result[0].ID)

	_, err = service.UpdateStatus(context.Background(), created.ID, &request.UpdateContactStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrValidation)
}

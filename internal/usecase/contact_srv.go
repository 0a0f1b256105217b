package usecase

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService interface {
	SubmitContact(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error)

	// Admin endpoints
	ListContacts(ctx context.Context, status *string) ([]response.ContactResponse, error)
	UpdateStatus(ctx context.Context, contactID string, req *request.UpdateContactStatusRequest) (*response.ContactResponse, error)
}

type contactService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContactService(repo *repository.Repository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) SubmitContact(ctx context.Context, req *request.ContactRequest) (*response.ContactResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	contact := &entity.Contact{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  entity.ContactStatusNew,
	}

	if err := s.repo.Contact.Create(ctx, contact); err != nil {
		s.log.Error("Failed to create contact", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.log.Info("Contact message received",
		zap.String("contact_id", contact.ID.String()),
		zap.String("subject", contact.Subject),
	)

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

func (s *contactService) ListContacts(ctx context.Context, status *string) ([]response.ContactResponse, error) {
	contacts, err := s.repo.Contact.FindAll(ctx, status)
	if err != nil {
		s.log.Error("Failed to list contacts", zap.Error(err))
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	contactResponses := make([]response.ContactResponse, len(contacts))
	for i, contact := range contacts {
		contactResponses[i] = response.ContactToResponse(contact)
	}

	return contactResponses, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, contactID string, req *request.UpdateContactStatusRequest) (*response.ContactResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update contact status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(contactID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid contact ID format %s", ErrValidation, contactID)
	}

	contact, err := s.repo.Contact.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find contact", zap.Error(err), zap.String("contact_id", contactID))
		return nil, fmt.Errorf("find contact: %w", err)
	}
	if contact == nil {
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, contactID)
	}

	status := entity.ContactStatus(req.Status)
	if err := s.repo.Contact.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update contact status",
			zap.Error(err),
			zap.String("contact_id", contactID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update contact status: %w", err)
	}

	s.log.Info("Contact status updated",
		zap.String("contact_id", contactID),
		zap.String("status", req.Status),
	)

	contact.Status = status

	resp := response.ContactToResponse(contact)
	return &resp, nil
}

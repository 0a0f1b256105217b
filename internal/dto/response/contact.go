package response

import (
	"time"

	"car-rental/internal/data/entity"
)

type ContactResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     *string              `json:"phone,omitempty"`
	Subject   string               `json:"subject"`
	Message   string               `json:"message"`
	Status    entity.ContactStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

func ContactToResponse(contact *entity.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID.String(),
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Subject:   contact.Subject,
		Message:   contact.Message,
		Status:    contact.Status,
		CreatedAt: contact.CreatedAt,
	}
}

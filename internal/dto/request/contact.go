package request

type ContactRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Subject string  `json:"subject" validate:"required,max=200"`
	Message string  `json:"message" validate:"required,max=2000"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}

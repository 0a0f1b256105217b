package adaptor

import (
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.SubmitContact(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Message received", result)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *string
	if value := r.URL.Query().Get("status"); value != "" {
		status = &value
	}

	result, err := h.service.ListContacts(r.Context(), status)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseList(w, "Contacts retrieved", len(result), result)
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactId")

	var req request.UpdateContactStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), contactID, &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Contact status updated", result)
}

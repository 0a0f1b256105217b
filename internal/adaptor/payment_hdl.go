package adaptor

import (
	"io"
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// webhookBodyLimit caps the webhook payload read into memory.
const webhookBodyLimit = 1 << 16

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateIntent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Payment intent created", result)
}

func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req request.ConfirmPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.ConfirmPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Payment confirmed", result)
}

// Webhook receives processor notifications. The signature is computed over
// the exact raw bytes, so the body must not pass through a JSON decoder
// before verification.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		utils.ResponseBadRequest(w, "Unable to read payload", nil)
		return
	}

	signature := r.Header.Get("Stripe-Signature")

	if err := h.service.HandleWebhook(r.Context(), payload, signature); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Webhook processed", map[string]bool{"received": true})
}

func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetUserPayments(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseList(w, "Payment history retrieved", len(result), result)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "paymentId")

	result, err := h.service.GetPaymentByID(r.Context(), paymentID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Payment retrieved", result)
}

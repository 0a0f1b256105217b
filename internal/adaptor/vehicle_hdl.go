package adaptor

import (
	"net/http"

	"car-rental/internal/dto/request"
	"car-rental/internal/usecase"
	"car-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	service usecase.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service usecase.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log.With(zap.String("handler", "vehicle")),
	}
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := request.VehicleListQuery{
		MinPrice:  utils.ParseFloat(q.Get("min_price")),
		MaxPrice:  utils.ParseFloat(q.Get("max_price")),
		Available: utils.ParseBool(q.Get("available")),
		Sort:      q.Get("sort"),
	}
	if category := q.Get("category"); category != "" {
		query.Category = &category
	}
	if transmission := q.Get("transmission"); transmission != "" {
		query.Transmission = &transmission
	}

	result, err := h.service.ListVehicles(r.Context(), &query)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseList(w, "Vehicles retrieved", len(result), result)
}

func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleId")

	result, err := h.service.GetVehicleByID(r.Context(), vehicleID)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Vehicle retrieved", result)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.CreateVehicle(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Vehicle created", result)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleId")

	var req request.VehicleUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.UpdateVehicle(r.Context(), vehicleID, &req)
	if err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Vehicle updated", result)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleId")

	if err := h.service.DeleteVehicle(r.Context(), vehicleID); err != nil {
		handleServiceError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Vehicle deleted", nil)
}

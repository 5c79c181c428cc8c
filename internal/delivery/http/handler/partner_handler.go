package handler

import (
	"encoding/json"
	"net/http"

	"arogyamix-server/internal/delivery/dto"
	"arogyamix-server/internal/usecase"
	"arogyamix-server/pkg/response"
	"arogyamix-server/pkg/validator"
)

type PartnerHandler struct {
	partnerUsecase usecase.PartnerUsecase
	validator      *validator.CustomValidator
}

func NewPartnerHandler(partnerUsecase usecase.PartnerUsecase, validator *validator.CustomValidator) *PartnerHandler {
	return &PartnerHandler{
		partnerUsecase: partnerUsecase,
		validator:      validator,
	}
}

// Apply submits a generic partner application
func (h *PartnerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.PartnerApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	application, err := h.partnerUsecase.SubmitPartner(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit application")
		return
	}

	response.Success(w, http.StatusCreated, "Application submitted successfully", application)
}

// ApplyFarmer submits a farmer onboarding application
func (h *PartnerHandler) ApplyFarmer(w http.ResponseWriter, r *http.Request) {
	var req dto.FarmerApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	application, err := h.partnerUsecase.SubmitFarmer(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUnknownCropType, usecase.ErrUnknownFarmingMethod:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to submit application")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Application submitted successfully", application)
}

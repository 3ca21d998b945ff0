package inquiry

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/go-wedding-marketplace/internal/api"
	"github.com/FACorreiaa/go-wedding-marketplace/internal/types"
)

type HandlerImpl struct {
	inquiryService InquiryService
	logger         *slog.Logger
}

func NewHandlerImpl(inquiryService InquiryService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{inquiryService: inquiryService, logger: logger}
}

// CreateInquiry godoc
// @Summary      Send Inquiry
// @Description  Stores a pending inquiry from a user to a vendor.
// @Tags         Inquiries
// @Accept       json
// @Produce      json
// @Param        inquiry body types.CreateInquiryParams true "Inquiry"
// @Success      200 {object} types.Inquiry
// @Failure      400 {object} api.Response "Invalid Input"
// @Router       /inquiries [post]
func (h *HandlerImpl) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "CreateInquiry"))

	var params types.CreateInquiryParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}

	inq, err := h.inquiryService.CreateInquiry(r.Context(), params)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, inq)
}

// ListUserInquiries godoc
// @Summary      List User Inquiries
// @Tags         Inquiries
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {array} types.Inquiry
// @Failure      400 {object} api.Response "Invalid user ID"
// @Router       /inquiries/user/{user_id} [get]
func (h *HandlerImpl) ListUserInquiries(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "ListUserInquiries"))

	userID, err := api.ParseUUIDParam("user id", chi.URLParam(r, "user_id"))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	inquiries, err := h.inquiryService.ListForUser(r.Context(), userID)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, inquiries)
}

// ListVendorInquiries godoc
// @Summary      List Vendor Inquiries
// @Tags         Inquiries
// @Produce      json
// @Param        vendor_id path string true "Vendor ID"
// @Success      200 {array} types.Inquiry
// @Failure      400 {object} api.Response "Invalid vendor ID"
// @Router       /inquiries/vendor/{vendor_id} [get]
func (h *HandlerImpl) ListVendorInquiries(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "ListVendorInquiries"))

	vendorID, err := api.ParseUUIDParam("vendor id", chi.URLParam(r, "vendor_id"))
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	inquiries, err := h.inquiryService.ListForVendor(r.Context(), vendorID)
	if err != nil {
		api.HandleServiceError(w, r, l, err, "")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, inquiries)
}

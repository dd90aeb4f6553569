package handlers

import (
	"github.com/gin-gonic/gin"

	domainVendor "github.com/fixera/marketplace-api/internal/domain/vendor"
	"github.com/fixera/marketplace-api/internal/httperr"
	"github.com/fixera/marketplace-api/internal/httpresp"
	"github.com/fixera/marketplace-api/internal/middleware"
	ucVendor "github.com/fixera/marketplace-api/internal/usecase/vendor"
)

type VendorHandler struct {
	createUC     *ucVendor.CreateVendorProfile
	updateUC     *ucVendor.UpdateVendorProfile
	getUC        *ucVendor.GetVendorProfile
	listPublicUC *ucVendor.ListPublicVendors
	roleUC       *ucVendor.RoleOf
}

func NewVendorHandler(
	createUC *ucVendor.CreateVendorProfile,
	updateUC *ucVendor.UpdateVendorProfile,
	getUC *ucVendor.GetVendorProfile,
	listPublicUC *ucVendor.ListPublicVendors,
	roleUC *ucVendor.RoleOf,
) *VendorHandler {
	return &VendorHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		getUC:        getUC,
		listPublicUC: listPublicUC,
		roleUC:       roleUC,
	}
}

type VendorProfileRequest struct {
	BusinessName  string  `json:"business_name" binding:"required"`
	ServiceType   string  `json:"service_type" binding:"required"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	PricePerVisit float64 `json:"price_per_visit"`
	Description   string  `json:"description"`
}

func (r VendorProfileRequest) fields() domainVendor.ProfileFields {
	return domainVendor.ProfileFields{
		BusinessName:  r.BusinessName,
		ServiceType:   r.ServiceType,
		Phone:         r.Phone,
		Address:       r.Address,
		PricePerVisit: r.PricePerVisit,
		Description:   r.Description,
	}
}

func (h *VendorHandler) Create(c *gin.Context) {
	ownerID := middleware.Principal(c)

	var req VendorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	v, err := h.createUC.Execute(c.Request.Context(), ownerID, req.fields())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, v)
}

func (h *VendorHandler) Update(c *gin.Context) {
	ownerID := middleware.Principal(c)

	var req VendorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	v, err := h.updateUC.Execute(c.Request.Context(), ownerID, req.fields())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, v)
}

func (h *VendorHandler) GetMe(c *gin.Context) {
	v, err := h.getUC.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, v)
}

func (h *VendorHandler) ListPublic(c *gin.Context) {
	vendors, err := h.listPublicUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, vendors)
}

func (h *VendorHandler) Role(c *gin.Context) {
	role, err := h.roleUC.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"role": role})
}

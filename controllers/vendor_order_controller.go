package controllers

import (
	"errors"
	"strconv"

	"github.com/sierracataloguebusiness/sierra-catalogue/entity"
	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"
	"github.com/sierracataloguebusiness/sierra-catalogue/services"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
)

type VendorOrderController struct{ Svc *services.VendorOrderService }

func NewVendorOrderController(svc *services.VendorOrderService) *VendorOrderController {
	return &VendorOrderController{Svc: svc}
}

// GET /vendor/orders?status=&page=&limit=
func (vc *VendorOrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var status *entity.VendorStatus
	if raw := c.Query("status"); raw != "" {
		s := entity.VendorStatus(raw)
		status = &s
	}

	out, err := vc.Svc.ListForVendor(utils.CurrentUserID(c), status, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /vendor/orders/:id
func (vc *VendorOrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	vo, err := vc.Svc.DetailForVendor(utils.CurrentUserID(c), uint(id))
	if err != nil {
		vc.writeError(c, err)
		return
	}
	resp.OK(c, vo)
}

// PUT /vendor/orders/:id/items/:itemId
func (vc *VendorOrderController) UpdateItemStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	itemID, _ := strconv.Atoi(c.Param("itemId"))

	var body struct {
		Status entity.ItemStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vo, err := vc.Svc.UpdateItemStatus(utils.CurrentUserID(c), uint(id), uint(itemID), body.Status)
	if err != nil {
		vc.writeError(c, err)
		return
	}
	resp.OK(c, vo)
}

// PUT /vendor/orders/:id/items bulk เช่น Accept All / Reject All
func (vc *VendorOrderController) BulkUpdateItemStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Items []services.ItemStatusIn `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	vo, err := vc.Svc.BulkUpdateItemStatus(utils.CurrentUserID(c), uint(id), body.Items)
	if err != nil {
		vc.writeError(c, err)
		return
	}
	resp.OK(c, vo)
}

func (vc *VendorOrderController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		resp.BadRequest(c, "invalid status")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "vendor order not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "conflicting update, refresh and retry")
	default:
		resp.ServerError(c, err)
	}
}

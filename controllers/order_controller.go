package controllers

import (
	"errors"
	"strconv"

	"github.com/sierracataloguebusiness/sierra-catalogue/pkg/resp"
	"github.com/sierracataloguebusiness/sierra-catalogue/services"
	"github.com/sierracataloguebusiness/sierra-catalogue/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders checkout ด้วยรายการที่ FE ส่งมาตรง ๆ
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		oc.writeError(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /orders/checkout checkout จากตะกร้าใน DB
func (oc *OrderController) CheckoutFromCart(c *gin.Context) {
	var delivery services.DeliveryIn
	if err := c.ShouldBindJSON(&delivery); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.CheckoutFromCart(utils.CurrentUserID(c), &delivery)
	if err != nil {
		oc.writeError(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /profile/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := oc.Svc.ListForBuyer(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /orders/:id (เฉพาะเจ้าของออเดอร์)
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := oc.Svc.DetailForBuyer(utils.CurrentUserID(c), uint(id))
	if err != nil {
		oc.writeError(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Svc.Cancel(utils.CurrentUserID(c), uint(id)); err != nil {
		oc.writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

func (oc *OrderController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, "no items in order")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, "order can no longer be cancelled")
	case errors.Is(err, services.ErrTransaction):
		resp.ServerError(c, err)
	default:
		resp.ServerError(c, err)
	}
}

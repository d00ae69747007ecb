package controllers

import (
	"errors"
	"strconv"

	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"github.com/Fatima-Benaya/2nConv-ELLW/pkg/resp"
	"github.com/Fatima-Benaya/2nConv-ELLW/services"
	"github.com/Fatima-Benaya/2nConv-ELLW/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
	Hub *ws.TrackHub
}

func NewOrderController(svc *services.OrderService, hub *ws.TrackHub) *OrderController {
	return &OrderController{Svc: svc, Hub: hub}
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var payload services.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		resp.BadRequest(c, "Invalid payload.")
		return
	}

	if err := services.ValidateOrderPayload(&payload); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(&payload)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.Svc.List()
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, orders)
}

// PATCH /api/orders/:id/status — back-office only mutation of an order.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "Invalid order id.")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !entity.ValidOrderStatus(body.Status) {
		resp.BadRequest(c, "Status is not valid.")
		return
	}

	order, err := oc.Svc.UpdateStatus(uint(id), body.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Order not found.")
			return
		}
		resp.ServerError(c)
		return
	}

	if oc.Hub != nil {
		oc.Hub.BroadcastStatus(order.ID, order.Status)
	}
	resp.OK(c, order)
}

package controllers

import (
	"strconv"

	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	Auth   *services.AuthService
}

func NewOrderController(orders *services.OrderService, auth *services.AuthService) *OrderController {
	return &OrderController{Orders: orders, Auth: auth}
}

func queryLimit(c *gin.Context, def int) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// POST /orders/checkout
func (o *OrderController) Checkout(c *gin.Context) {
	staff, err := o.Auth.Restore(utils.CurrentUserID(c), utils.IsBootstrap(c))
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := o.Orders.Checkout(staff, &req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /orders (own history)
func (o *OrderController) Mine(c *gin.Context) {
	orders, err := o.Orders.ListForStaff(utils.CurrentUserID(c), queryLimit(c, 50))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orders
func (o *OrderController) List(c *gin.Context) {
	orders, err := o.Orders.List(queryLimit(c, 200))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /admin/orders/delete
func (o *OrderController) DeleteMany(c *gin.Context) {
	actor, err := o.Auth.Restore(utils.CurrentUserID(c), utils.IsBootstrap(c))
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	var req struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := o.Orders.DeleteMany(req.IDs, actor); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"deleted": req.IDs})
}

// GET /admin/orders/deleted-logs
func (o *OrderController) DeletedLogs(c *gin.Context) {
	logs, err := o.Orders.ListDeletedLogs()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, logs)
}

// POST /admin/orders/deleted-logs/purge
func (o *OrderController) PurgeLogs(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := o.Orders.PurgeLogs(req.IDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"purged": req.IDs})
}

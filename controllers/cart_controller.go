package controllers

import (
	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GET /cart
func (ct *CartController) Get(c *gin.Context) {
	items, total, err := ct.Cart.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total})
}

// POST /cart/items
func (ct *CartController) Add(c *gin.Context) {
	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ct.Cart.Add(utils.CurrentUserID(c), req.MenuItemID, req.Quantity); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"added": req.MenuItemID})
}

// PATCH /cart/items/:id
func (ct *CartController) UpdateQty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ct.Cart.UpdateQty(utils.CurrentUserID(c), id, req.Quantity); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"id": id, "quantity": req.Quantity})
}

// DELETE /cart/items/:id
func (ct *CartController) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ct.Cart.RemoveItem(utils.CurrentUserID(c), id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": id})
}

// DELETE /cart
func (ct *CartController) Clear(c *gin.Context) {
	if err := ct.Cart.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

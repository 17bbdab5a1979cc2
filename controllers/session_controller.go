package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Sessions *services.SessionManager
	Carts    *services.CartService
}

func NewSessionController(sessions *services.SessionManager, carts *services.CartService) *SessionController {
	return &SessionController{Sessions: sessions, Carts: carts}
}

// POST /sessions
func (h *SessionController) Create(c *gin.Context) {
	s := h.Sessions.Create()
	resp.Created(c, gin.H{"id": s.ID, "serviceMode": s.ServiceMode, "createdAt": s.CreatedAt})
}

// GET /sessions/:id
func (h *SessionController) Get(c *gin.Context) {
	view, err := h.Carts.View(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "session not found")
		return
	}
	resp.OK(c, view)
}

// DELETE /sessions/:id
func (h *SessionController) Close(c *gin.Context) {
	h.Sessions.Close(c.Param("id"))
	resp.OK(c, gin.H{"closed": true})
}

// GET /sessions/:id/totals
func (h *SessionController) Totals(c *gin.Context) {
	totals, err := h.Carts.Totals(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "session not found")
		return
	}
	resp.OK(c, totals)
}

// PATCH /sessions/:id/service-mode
func (h *SessionController) SetServiceMode(c *gin.Context) {
	var body struct {
		Mode string `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := h.Carts.SetServiceMode(c.Param("id"), entity.ServiceMode(body.Mode))
	switch {
	case errors.Is(err, services.ErrBadServiceMode):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrSessionNotFound):
		resp.NotFound(c, "session not found")
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"mode": body.Mode})
	}
}

// PATCH /sessions/:id/discount
func (h *SessionController) SetDiscount(c *gin.Context) {
	var body struct {
		Amount int64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		// malformed entry counts as no discount
		body.Amount = 0
	}
	if err := h.Carts.SetDiscount(c.Param("id"), body.Amount); err != nil {
		resp.NotFound(c, "session not found")
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /sessions/:id/table
func (h *SessionController) SetTable(c *gin.Context) {
	var body struct {
		TableID uint `json:"tableId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Carts.SetTable(c.Param("id"), body.TableID); err != nil {
		resp.NotFound(c, "session not found")
		return
	}
	resp.OK(c, gin.H{"tableId": body.TableID})
}

// PATCH /sessions/:id/payment-method
func (h *SessionController) SetPaymentMethod(c *gin.Context) {
	var body struct {
		PaymentMethodID uint `json:"paymentMethodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Carts.SetPaymentMethod(c.Param("id"), body.PaymentMethodID); err != nil {
		resp.NotFound(c, "session not found")
		return
	}
	resp.OK(c, gin.H{"paymentMethodId": body.PaymentMethodID})
}

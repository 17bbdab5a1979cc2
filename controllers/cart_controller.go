package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /sessions/:id/lines
func (h *CartController) Lines(c *gin.Context) {
	view, err := h.Svc.View(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": view.Lines, "totals": view.Totals})
}

// PATCH /sessions/:id/lines/:lineId/qty
func (h *CartController) AdjustQty(c *gin.Context) {
	lineID, _ := strconv.Atoi(c.Param("lineId"))

	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.AdjustQty(c.Param("id"), uint(lineID), body.Delta); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /sessions/:id/lines/:lineId
func (h *CartController) RemoveLine(c *gin.Context) {
	lineID, _ := strconv.Atoi(c.Param("lineId"))

	if err := h.Svc.RemoveLine(c.Param("id"), uint(lineID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /sessions/:id/combos
func (h *CartController) AddCombo(c *gin.Context) {
	var body struct {
		ComboID uint `json:"comboId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lineID, err := h.Svc.AddCombo(c.Param("id"), body.ComboID)
	if err != nil {
		if errors.Is(err, services.ErrComboNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lineId": lineID})
}

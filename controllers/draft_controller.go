package controllers

import (
	"errors"
	"net/http"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DraftController struct{ Svc *services.DraftService }

func NewDraftController(s *services.DraftService) *DraftController { return &DraftController{Svc: s} }

// POST /sessions/:id/draft
func (h *DraftController) Begin(c *gin.Context) {
	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Begin(c.Param("id"), body.ItemID); err != nil {
		h.fail(c, err)
		return
	}
	h.preview(c)
}

// POST /sessions/:id/draft/edit
func (h *DraftController) BeginEdit(c *gin.Context) {
	var body struct {
		LineID uint `json:"lineId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.BeginEdit(c.Param("id"), body.LineID); err != nil {
		h.fail(c, err)
		return
	}
	h.preview(c)
}

// POST /sessions/:id/draft/toggle
func (h *DraftController) Toggle(c *gin.Context) {
	var body struct {
		GroupID  uint `json:"groupId" binding:"required"`
		OptionID uint `json:"optionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Toggle(c.Param("id"), body.GroupID, body.OptionID); err != nil {
		h.fail(c, err)
		return
	}
	h.preview(c)
}

// PATCH /sessions/:id/draft
func (h *DraftController) Update(c *gin.Context) {
	var body struct {
		Qty  *int    `json:"qty"`
		Note *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sessionID := c.Param("id")
	if body.Qty != nil {
		if err := h.Svc.SetQty(sessionID, *body.Qty); err != nil {
			h.fail(c, err)
			return
		}
	}
	if body.Note != nil {
		if err := h.Svc.SetNote(sessionID, *body.Note); err != nil {
			h.fail(c, err)
			return
		}
	}
	h.preview(c)
}

// GET /sessions/:id/draft
func (h *DraftController) Preview(c *gin.Context) {
	h.preview(c)
}

// DELETE /sessions/:id/draft
func (h *DraftController) Cancel(c *gin.Context) {
	if err := h.Svc.Cancel(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}

// POST /sessions/:id/draft/commit
func (h *DraftController) Commit(c *gin.Context) {
	if err := h.Svc.Commit(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrDraftInvalid) {
			// draft stays in place so the operator can fix it
			resp.Conflict(c, err.Error())
			return
		}
		h.fail(c, err)
		return
	}
	resp.OK(c, gin.H{"committed": true})
}

func (h *DraftController) preview(c *gin.Context) {
	view, err := h.Svc.View(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.OK(c, view)
}

func (h *DraftController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrLineNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNoDraft):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	default:
		resp.ServerError(c, err)
	}
}

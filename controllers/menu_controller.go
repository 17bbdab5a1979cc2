package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GET /menu?category=&q=&tag=
func (ctl *MenuController) List(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("category"))
	items := ctl.Catalog.FilteredMenu(uint(categoryID), c.Query("q"), c.Query("tag"))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, ok := ctl.Catalog.Item(uint(id))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	// attach the full modifier groups the item references, in catalog order
	groups := make([]any, 0)
	for _, gid := range ctl.Catalog.GroupsFor(item.ID) {
		if g, ok := ctl.Catalog.Group(gid); ok {
			groups = append(groups, g)
		}
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "modifierGroups": groups})
}

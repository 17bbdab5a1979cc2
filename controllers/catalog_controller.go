package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// GET /catalog/modifier-groups
func (ctl *CatalogController) ModifierGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": ctl.Catalog.Groups()})
}

// GET /catalog/combos
func (ctl *CatalogController) Combos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": ctl.Catalog.Combos()})
}

// GET /catalog/payment-methods
func (ctl *CatalogController) PaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": ctl.Catalog.PaymentMethods()})
}

// GET /catalog/tables
func (ctl *CatalogController) Tables(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": ctl.Catalog.Tables()})
}

// GET /catalog/loyalty-tiers
func (ctl *CatalogController) LoyaltyTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": ctl.Catalog.LoyaltyTiers()})
}

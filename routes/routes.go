package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires the whole engine behind the HTTP surface and returns
// the totals hub so main can run it.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) (*ws.TotalsHub, error) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Catalog snapshot: loaded once, read-only for the life of the process
	catalog, err := repository.NewCatalogRepository(db).LoadCatalog()
	if err != nil {
		return nil, err
	}
	catalogSvc := services.NewCatalogService(catalog)

	sessions := services.NewSessionManager()
	selectionSvc := services.NewSelectionService(catalogSvc)
	pricingSvc := services.NewPricingService(catalogSvc)
	cartSvc := services.NewCartService(sessions, catalogSvc, pricingSvc)
	draftSvc := services.NewDraftService(sessions, catalogSvc, selectionSvc, pricingSvc)
	authSvc := services.NewAuthService(repository.NewOperatorRepository(db), cfg.JWTSecret, cfg.JWTTTL)

	hub := ws.NewTotalsHub(cartSvc)
	sessions.OnChange = hub.Publish

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	sessionCtrl := controllers.NewSessionController(sessions, cartSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	draftCtrl := controllers.NewDraftController(draftSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Everything a signed-in terminal can do
	pos := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		pos.GET("/menu", menuCtrl.List)
		pos.GET("/menu/:id", menuCtrl.Get)

		pos.GET("/catalog/modifier-groups", catalogCtrl.ModifierGroups)
		pos.GET("/catalog/combos", catalogCtrl.Combos)
		pos.GET("/catalog/payment-methods", catalogCtrl.PaymentMethods)
		pos.GET("/catalog/tables", catalogCtrl.Tables)
		pos.GET("/catalog/loyalty-tiers", catalogCtrl.LoyaltyTiers)

		pos.POST("/sessions", sessionCtrl.Create)
		pos.GET("/sessions/:id", sessionCtrl.Get)
		pos.DELETE("/sessions/:id", sessionCtrl.Close)
		pos.GET("/sessions/:id/totals", sessionCtrl.Totals)
		pos.PATCH("/sessions/:id/service-mode", sessionCtrl.SetServiceMode)
		pos.PATCH("/sessions/:id/discount", sessionCtrl.SetDiscount)
		pos.PATCH("/sessions/:id/table", sessionCtrl.SetTable)
		pos.PATCH("/sessions/:id/payment-method", sessionCtrl.SetPaymentMethod)

		pos.GET("/sessions/:id/lines", cartCtrl.Lines)
		pos.PATCH("/sessions/:id/lines/:lineId/qty", cartCtrl.AdjustQty)
		pos.DELETE("/sessions/:id/lines/:lineId", cartCtrl.RemoveLine)
		pos.POST("/sessions/:id/combos", cartCtrl.AddCombo)

		pos.POST("/sessions/:id/draft", draftCtrl.Begin)
		pos.POST("/sessions/:id/draft/edit", draftCtrl.BeginEdit)
		pos.POST("/sessions/:id/draft/toggle", draftCtrl.Toggle)
		pos.PATCH("/sessions/:id/draft", draftCtrl.Update)
		pos.GET("/sessions/:id/draft", draftCtrl.Preview)
		pos.DELETE("/sessions/:id/draft", draftCtrl.Cancel)
		pos.POST("/sessions/:id/draft/commit", draftCtrl.Commit)
	}

	// Customer-facing totals display
	r.GET("/ws/sessions/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	return hub, nil
}

package api

import (
	"net/http"

	"campaign-server/internal/apierrors"
	authHandler "campaign-server/internal/auth/handler"
	campaignHandler "campaign-server/internal/campaign/handler"
	contactListHandler "campaign-server/internal/contactlists/handler"
	"campaign-server/internal/metrics"
	"campaign-server/internal/progress"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type API struct {
	router             *gin.RouterGroup
	authHandler        authHandler.Handler
	campaignHandler    campaignHandler.Handler
	contactListHandler contactListHandler.Handler
	progressHub        *progress.Hub
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	campaignHandler campaignHandler.Handler,
	contactListHandler contactListHandler.Handler,
	progressHub *progress.Hub,
) API {
	return API{
		router:             router,
		authHandler:        authHandler,
		campaignHandler:    campaignHandler,
		contactListHandler: contactListHandler,
		progressHub:        progressHub,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		campaignsGroup := protectedGroup.Group("/campaigns")
		campaignsGroup.GET("/limits", a.campaignHandler.HandleGetLimits)
		campaignsGroup.POST("", a.campaignHandler.HandleCreateCampaign)
		campaignsGroup.GET("", a.campaignHandler.HandleListCampaigns)
		campaignsGroup.GET("/:campaign_id", a.campaignHandler.HandleGetCampaign)
		campaignsGroup.PUT("/:campaign_id", a.campaignHandler.HandleUpdateCampaign)
		campaignsGroup.POST("/:campaign_id/cancel", a.campaignHandler.HandleCancelCampaign)
		campaignsGroup.GET("/:campaign_id/report", a.campaignHandler.HandleGetCampaignReport)

		contactListsGroup := protectedGroup.Group("/contact-lists")
		contactListsGroup.POST("/:list_id/import", a.contactListHandler.HandleImportContacts)
		contactListsGroup.GET("/:list_id/contacts", a.contactListHandler.HandleListContacts)

		protectedGroup.GET("/progress/ws", a.HandleProgressStream)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

// HandleProgressStream upgrades to a WebSocket that receives the company's
// progress events
func (a *API) HandleProgressStream(c *gin.Context) {
	companyID, err := uuid.Parse(c.GetString(authHandler.CompanyIDKey))
	if err != nil {
		apierrors.Unauthorized(c, "company id not found in token")
		return
	}
	a.progressHub.ServeWS(c.Writer, c.Request, companyID)
}

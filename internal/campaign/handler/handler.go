package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/campaign/processor"
	"campaign-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor *processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest represents the HTTP request for creating a campaign.
// Omitting scheduled_at sends the campaign right away.
type CreateCampaignRequest struct {
	Name                 string     `json:"name" binding:"required,min=1,max=255"`
	ContactListID        uuid.UUID  `json:"contact_list_id" binding:"required"`
	WhatsappID           uuid.UUID  `json:"whatsapp_id" binding:"required"`
	ScheduledAt          *time.Time `json:"scheduled_at,omitempty"`
	Messages             []string   `json:"messages" binding:"required,min=1,max=5"`
	ConfirmationMessages []string   `json:"confirmation_messages,omitempty" binding:"max=5"`
	Confirmation         bool       `json:"confirmation"`
}

// UpdateCampaignRequest represents the HTTP request for editing a scheduled campaign
type UpdateCampaignRequest struct {
	Name                 string    `json:"name" binding:"required,min=1,max=255"`
	ContactListID        uuid.UUID `json:"contact_list_id" binding:"required"`
	WhatsappID           uuid.UUID `json:"whatsapp_id" binding:"required"`
	ScheduledAt          time.Time `json:"scheduled_at" binding:"required"`
	Messages             []string  `json:"messages" binding:"required,min=1,max=5"`
	ConfirmationMessages []string  `json:"confirmation_messages,omitempty" binding:"max=5"`
	Confirmation         bool      `json:"confirmation"`
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: companyID.String()})

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, companyID, processor.CreateCampaignParams{
		Name:                 req.Name,
		ContactListID:        req.ContactListID,
		WhatsappID:           req.WhatsappID,
		ScheduledAt:          req.ScheduledAt,
		Messages:             req.Messages,
		ConfirmationMessages: req.ConfirmationMessages,
		Confirmation:         req.Confirmation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists the company's campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: companyID.String()})

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if _, err := fmt.Sscanf(pageStr, "%d", &page); err != nil || page < 1 {
			page = 1
		}
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit < 1 || limit > 100 {
			limit = 20
		}
	}

	campaigns, err := h.processor.ListCampaigns(ctx, companyID, page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns": campaigns,
		"page":      page,
		"limit":     limit,
	})
}

// HandleGetCampaign retrieves a campaign
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, companyID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaign edits a scheduled campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, companyID, campaignID, processor.UpdateCampaignParams{
		Name:                 req.Name,
		ContactListID:        req.ContactListID,
		WhatsappID:           req.WhatsappID,
		ScheduledAt:          req.ScheduledAt,
		Messages:             req.Messages,
		ConfirmationMessages: req.ConfirmationMessages,
		Confirmation:         req.Confirmation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleCancelCampaign cancels a campaign that has not finished
func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.CancelCampaign(ctx, companyID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleGetCampaignReport returns delivery counts for a campaign
func (h *Handler) HandleGetCampaignReport(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}
	campaignID, ok := h.getCampaignID(c)
	if !ok {
		return
	}

	report, err := h.processor.GetCampaignReport(ctx, companyID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleGetLimits reports the admission result for a prospective campaign.
// A rejected result is still a 200.
func (h *Handler) HandleGetLimits(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}

	contactListID, ok := optionalUUID(c, "contact_list_id")
	if !ok {
		return
	}
	campaignID, ok := optionalUUID(c, "campaign_id")
	if !ok {
		return
	}

	result, err := h.processor.GetLimits(ctx, companyID, contactListID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func optionalUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, fmt.Sprintf("Invalid %s format", key))
		return nil, false
	}
	return &id, true
}

func (h *Handler) getCompanyID(c *gin.Context) (uuid.UUID, bool) {
	companyIDStr, exists := c.Get("Company-ID")
	if !exists {
		apierrors.Unauthorized(c, "Company ID not found in context")
		return uuid.UUID{}, false
	}

	companyID, err := uuid.Parse(companyIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid company ID format")
		return uuid.UUID{}, false
	}
	return companyID, true
}

func (h *Handler) getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignIDStr := c.Param("campaign_id")
	campaignID, err := uuid.Parse(campaignIDStr)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid campaign ID format")
		return uuid.UUID{}, false
	}
	return campaignID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrContactListNotFound):
		apierrors.NotFound(c, "Contact list not found")
	case errors.Is(err, processor.ErrConnectionNotFound):
		apierrors.NotFound(c, "WhatsApp connection not found")
	case errors.Is(err, processor.ErrInvalidMessages):
		apierrors.BadRequest(c, apierrors.CodeInvalidMessages, "A campaign needs between 1 and 5 messages")
	case errors.Is(err, processor.ErrScheduleInPast):
		apierrors.BadRequest(c, apierrors.CodeInvalidSchedule, "scheduled_at must be in the future")
	case errors.Is(err, processor.ErrCampaignNotEditable):
		apierrors.Conflict(c, apierrors.CodeCampaignNotEditable, "Only scheduled campaigns can be edited")
	case errors.Is(err, processor.ErrCampaignClosed):
		apierrors.Conflict(c, apierrors.CodeCampaignAlreadyClosed, "Campaign already finished or cancelled")
	case errors.Is(err, processor.ErrLaunchFailed):
		apierrors.ServiceUnavailable(c, apierrors.CodeQueueUnavailable, "The campaign could not be started. Please try again later.", err)
	default:
		apierrors.RespondWithError(c, err)
	}
}

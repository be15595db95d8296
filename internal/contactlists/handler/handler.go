package handler

import (
	"errors"
	"net/http"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/contactlists/processor"
	"campaign-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20

type Handler struct {
	processor *processor.ContactListProcessor
	logger    *observability.Logger
}

func New(processor *processor.ContactListProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleImportContacts imports a multipart "file" upload into a contact list.
// The request returns once every new row has been validated.
func (h *Handler) HandleImportContacts(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}
	listID, ok := h.getContactListID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "company_id", Value: companyID.String()},
		observability.Field{Key: "contact_list_id", Value: listID.String()},
	)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes+1<<20)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidImportFile, "A CSV file is required in the \"file\" field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded file", err)
		apierrors.BadRequest(c, apierrors.CodeInvalidImportFile, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	result, err := h.processor.ImportContacts(ctx, companyID, listID, file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleListContacts lists the rows of a contact list
func (h *Handler) HandleListContacts(c *gin.Context) {
	ctx := c.Request.Context()

	companyID, ok := h.getCompanyID(c)
	if !ok {
		return
	}
	listID, ok := h.getContactListID(c)
	if !ok {
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: companyID.String()})

	contacts, err := h.processor.ListContacts(ctx, companyID, listID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
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

func (h *Handler) getContactListID(c *gin.Context) (uuid.UUID, bool) {
	listID, err := uuid.Parse(c.Param("list_id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid contact list ID format")
		return uuid.UUID{}, false
	}
	return listID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrContactListNotFound):
		apierrors.NotFound(c, "Contact list not found")
	case errors.Is(err, processor.ErrNoSession):
		apierrors.Conflict(c, apierrors.CodeNoWhatsappConnection, "Connect a WhatsApp number before importing contacts")
	case errors.Is(err, processor.ErrFileTooLarge):
		apierrors.BadRequest(c, apierrors.CodeImportFileTooLarge, "The import file must be at most 10MB")
	case errors.Is(err, processor.ErrInvalidFile):
		apierrors.BadRequest(c, apierrors.CodeInvalidImportFile, "The import file is not a valid CSV")
	default:
		apierrors.RespondWithError(c, err)
	}
}

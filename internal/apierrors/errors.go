package apierrors

import (
	"net/http"

	"campaign-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// Machine-readable codes shared across handlers
const (
	CodeNotFound              = "NOT_FOUND"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeInternal              = "INTERNAL_ERROR"
	CodeFeatureDisabled       = "CAMPAIGNS_DISABLED"
	CodeContactLimitExceeded  = "CONTACT_LIMIT_EXCEEDED"
	CodeMonthlyLimitExceeded  = "MONTHLY_LIMIT_EXCEEDED"
	CodeInvalidTransition     = "INVALID_STATUS_TRANSITION"
	CodeDuplicate             = "DUPLICATE"
	CodeScheduleRequired      = "SCHEDULE_REQUIRED"
	CodeQueueUnavailable      = "QUEUE_UNAVAILABLE"
	CodeCampaignNotEditable   = "CAMPAIGN_NOT_EDITABLE"
	CodeInvalidImportFile     = "INVALID_IMPORT_FILE"
	CodeImportFileTooLarge    = "IMPORT_FILE_TOO_LARGE"
	CodeNoWhatsappConnection  = "NO_WHATSAPP_CONNECTION"
	CodeInvalidSchedule       = "INVALID_SCHEDULE"
	CodeInvalidMessages       = "INVALID_MESSAGES"
	CodeCampaignAlreadyClosed = "CAMPAIGN_ALREADY_CLOSED"
)

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respond writes the error body and logs it for correlation with the
// request id set by the logging middleware
func respond(c *gin.Context, statusCode int, code, message string) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
		observability.Field{Key: "error_message", Value: message},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, CodeNotFound, message)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, code, message string) {
	respond(c, http.StatusForbidden, code, message)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, code, message string) {
	respond(c, http.StatusConflict, code, message)
}

// UnprocessableEntity sends a 422 response for requests that are well formed
// but exceed a plan limit
func UnprocessableEntity(c *gin.Context, code, message string) {
	respond(c, http.StatusUnprocessableEntity, code, message)
}

// ServiceUnavailable sends a 503 response and logs the internal error
func ServiceUnavailable(c *gin.Context, code, message string, internalErr error) {
	logger.Error(c.Request.Context(), "service unavailable", internalErr)
	respond(c, http.StatusServiceUnavailable, code, message)
}

// InternalError sends a sanitized 500 response - never exposes internal details
func InternalError(c *gin.Context, internalErr error) {
	logger.Error(c.Request.Context(), "internal error", internalErr)
	respond(c, http.StatusInternalServerError, CodeInternal, "An internal error occurred. Please try again later.")
}

package apierrors

import (
	"errors"

	"campaign-server/internal/admission"
	"campaign-server/internal/store"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps errors shared by every handler (admission rejections
// and store failures) to a response. Handlers switch on their own processor
// errors first and fall back to this. Unknown errors become a sanitized 500.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, admission.ErrFeatureDisabled):
		Forbidden(c, CodeFeatureDisabled, "Campaigns are not enabled for your plan")
	case errors.Is(err, admission.ErrContactLimitExceeded):
		UnprocessableEntity(c, CodeContactLimitExceeded, "The contact list exceeds your plan's contact limit")
	case errors.Is(err, admission.ErrMonthlyLimitExceeded):
		UnprocessableEntity(c, CodeMonthlyLimitExceeded, "You have reached your monthly campaign limit")
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")
	case errors.Is(err, store.ErrInvalidTransition):
		Conflict(c, CodeInvalidTransition, "The campaign cannot move to that status")
	case errors.Is(err, store.ErrDuplicate):
		Conflict(c, CodeDuplicate, "Resource already exists")
	case errors.Is(err, store.ErrScheduleRequired):
		BadRequest(c, CodeScheduleRequired, "scheduled_at is required")
	default:
		InternalError(c, err)
	}
}

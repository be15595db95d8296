package handler

import (
	"strings"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/auth/processor"
	"campaign-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// CompanyIDKey is the gin context key holding the authenticated company id
const CompanyIDKey = "Company-ID"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware authenticates the request and scopes it to the
// company in the token. Browsers cannot set headers on a WebSocket upgrade,
// so the token may also come in the "token" query parameter.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tokenString := bearerToken(c)
	if tokenString == "" {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		return
	}

	companyID, err := claims.Company()
	if err != nil {
		h.logger.Warn(ctx, "token without usable company id", observability.Field{Key: "error", Value: err.Error()})
		apierrors.Unauthorized(c, err.Error())
		return
	}

	c.Set(CompanyIDKey, companyID.String())
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "company_id", Value: companyID.String()},
	))
	c.Next()
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

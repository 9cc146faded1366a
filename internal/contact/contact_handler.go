package contact

import (
	"net/http"

	"github.com/08Abhinay/portfolio/common"
	"github.com/08Abhinay/portfolio/internal/dto"
	"github.com/08Abhinay/portfolio/internal/metrics"
	"github.com/08Abhinay/portfolio/middleware"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service ContactServiceInterface
}

func NewContactHandler(s ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: s}
}

var _ ContactHandlerInterface = (*ContactHandler)(nil)

// Submit handles POST /api/contact. The mail configuration is checked
// before the body is read, so a misconfigured server answers 500 for any
// payload. Validation failures answer 400 without attempting delivery.
func (h *ContactHandler) Submit(c *gin.Context) {
	if err := h.service.Ready(); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeUnconfigured).Inc()
		c.Error(err)
		c.Abort()
		return
	}

	var req dto.ContactSubmission
	if !middleware.Bind(c, &req) {
		metrics.ContactSubmissions.WithLabelValues(bindFailureOutcome(c)).Inc()
		c.Abort()
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{Success: true})
}

// bindFailureOutcome separates oversized bodies from schema failures.
func bindFailureOutcome(c *gin.Context) string {
	if last := c.Errors.Last(); last != nil {
		if apiErr, ok := common.AsAPIError(last.Err); ok && apiErr.Status == http.StatusRequestEntityTooLarge {
			return metrics.OutcomeTooLarge
		}
	}
	return metrics.OutcomeInvalid
}

package contact

import (
	"context"

	"github.com/08Abhinay/portfolio/internal/dto"
	"github.com/08Abhinay/portfolio/internal/mailer"
	"github.com/gin-gonic/gin"
)

// Mailer defines the contract for the outbound mail transport.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// ContactServiceInterface defines the contract for relaying submissions.
type ContactServiceInterface interface {
	Ready() error
	Submit(ctx context.Context, sub *dto.ContactSubmission) error
}

// ContactHandlerInterface defines the contract for HTTP request handlers.
type ContactHandlerInterface interface {
	Submit(c *gin.Context)
}

package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/08Abhinay/portfolio/common"
	"github.com/08Abhinay/portfolio/internal/config"
	"github.com/08Abhinay/portfolio/internal/dto"
	"github.com/08Abhinay/portfolio/internal/metrics"
	"go.uber.org/zap"
)

const (
	NotConfiguredMessage = "Mail service is not configured on the server."
	SendFailedMessage    = "Unable to send message right now. Please try again later."
)

type ContactService struct {
	mailer     Mailer
	from       string
	to         string
	configured bool
	log        *zap.Logger
}

// NewContactService captures the mail settings once. A nil mailer or an
// incomplete configuration leaves the service permanently unready.
func NewContactService(cfg config.Mail, m Mailer, log *zap.Logger) *ContactService {
	return &ContactService{
		mailer:     m,
		from:       cfg.From(),
		to:         cfg.To(),
		configured: m != nil && cfg.Configured(),
		log:        log.Named("contact"),
	}
}

var _ ContactServiceInterface = (*ContactService)(nil)

// Ready reports whether submissions can be relayed at all.
func (s *ContactService) Ready() error {
	if !s.configured {
		return common.Errf(http.StatusInternalServerError, NotConfiguredMessage)
	}
	return nil
}

// Submit sends one email for a validated submission. Transport errors are
// logged and replaced with a generic APIError; nothing is retried.
func (s *ContactService) Submit(ctx context.Context, sub *dto.ContactSubmission) error {
	if err := s.Ready(); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeUnconfigured).Inc()
		return err
	}

	if err := ctx.Err(); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.log.Warn("request ended before contact form email was sent", zap.Error(err))
		return common.Errf(http.StatusInternalServerError, SendFailedMessage)
	}

	msg := ComposeMessage(sub, s.from, s.to)

	if err := s.mailer.Send(ctx, msg); err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.log.Error("failed to send contact form email",
			zap.Error(err),
			zap.Bool("timeout", errors.Is(err, context.DeadlineExceeded)),
		)
		return common.Errf(http.StatusInternalServerError, SendFailedMessage)
	}

	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSent).Inc()
	s.log.Info("contact form email sent", zap.Int("message_length", len(sub.Message)))
	return nil
}

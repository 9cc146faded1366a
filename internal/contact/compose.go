package contact

import (
	"fmt"
	"strings"

	"github.com/08Abhinay/portfolio/internal/dto"
	"github.com/08Abhinay/portfolio/internal/mailer"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML makes untrusted text safe to embed in an HTML email body.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// ComposeMessage turns a validated submission into the email sent to the
// site owner. Replies go straight to the visitor.
func ComposeMessage(sub *dto.ContactSubmission, from, to string) mailer.Message {
	safeMessage := strings.ReplaceAll(EscapeHTML(sub.Message), "\n", "<br />")

	return mailer.Message{
		From:    from,
		To:      to,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New portfolio message from %s", sub.Name),
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", sub.Name, sub.Email, sub.Message),
		HTML: fmt.Sprintf(
			"<p><strong>Name:</strong> %s</p>\n"+
				"<p><strong>Email:</strong> %s</p>\n"+
				"<p><strong>Message:</strong></p>\n"+
				"<p>%s</p>\n",
			EscapeHTML(sub.Name), EscapeHTML(sub.Email), safeMessage,
		),
	}
}

package contact

import (
	"testing"

	"github.com/08Abhinay/portfolio/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain text", want: "plain text"},
		{in: "<script>alert(1)</script>", want: "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{in: `Tom & "Jerry"`, want: "Tom &amp; &quot;Jerry&quot;"},
		{in: "it's", want: "it&#039;s"},
		{in: "&lt;", want: "&amp;lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestComposeMessage(t *testing.T) {
	sub := &dto.ContactSubmission{
		Name:    "Ada <b>Lovelace</b>",
		Email:   "ada@example.org",
		Message: "Hi!\n<script>steal()</script>",
	}

	msg := ComposeMessage(sub, "noreply@example.com", "inbox@example.com")

	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, "inbox@example.com", msg.To)
	assert.Equal(t, "ada@example.org", msg.ReplyTo)
	assert.Equal(t, "New portfolio message from Ada <b>Lovelace</b>", msg.Subject)
	assert.Equal(t, "Name: Ada <b>Lovelace</b>\nEmail: ada@example.org\n\nHi!\n<script>steal()</script>", msg.Text)

	assert.Contains(t, msg.HTML, "<p><strong>Name:</strong> Ada &lt;b&gt;Lovelace&lt;/b&gt;</p>")
	assert.Contains(t, msg.HTML, "<p>Hi!<br />&lt;script&gt;steal()&lt;/script&gt;</p>")
	assert.NotContains(t, msg.HTML, "<script>")
	assert.NotContains(t, msg.HTML, "<b>")
}

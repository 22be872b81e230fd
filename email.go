package email

import (
	"context"
	"strings"
)

// Email is a single transactional message. The sender address is not part
// of the message; it comes from the sender's configuration.
type Email struct {
	To      string
	Subject string
	// The email body for recipients with non-HTML email clients.
	TextBody string
	HTMLBody string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) error
}

// IsValidAddress reports whether addr has exactly one '@' with a non-empty
// local part and a non-empty domain. The delivery service does the real
// validation.
func IsValidAddress(addr string) bool {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	return !strings.Contains(domain, "@")
}

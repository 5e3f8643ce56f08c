package i

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// Ticketer signs and verifies maze tickets.
type Ticketer interface {
	// Issue signs t into a token that expires after ttl.
	Issue(t dmn.Ticket, ttl time.Duration) (string, error)

	// Parse validates a token and returns the ticket it carries.
	Parse(token string) (*dmn.Ticket, error)
}

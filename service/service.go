package service

import "carmarket-service/model"

// Principal identifies the authenticated caller of a service operation.
// Handlers resolve it from the request token; services never read ambient
// request state.
type Principal struct {
	ID   uint
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// Notifier pushes a newly created message to the connected participants of a
// listing's chat room. Delivery is best effort: the message is already durable
// when a notifier runs, and implementations must not fail the send path.
type Notifier interface {
	NewMessage(listingID uint, message Message)
}

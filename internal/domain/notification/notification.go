// Package notification defines the outbound notice contract consumed by the
// classification flow.
package notification

import "context"

// Kind identifies the notice template to send
type Kind string

const (
	// KindAmendmentRequest asks an individually registered occupant to convert
	// the contract to a business registration
	KindAmendmentRequest Kind = "amendment_request"
	// KindCorrespondenceArrival tells an occupant mail is waiting. Defined but
	// not dispatched by the classification flow today.
	KindCorrespondenceArrival Kind = "correspondence_arrival"
	// KindAddressMisuse alerts the office about unauthorized address use.
	// Defined for the misuse status; nothing dispatches it yet.
	KindAddressMisuse Kind = "address_misuse"
)

// Notice is one outbound message. An empty Destination makes the send a no-op:
// the directory does not always know a contact address, and classification
// must not fail because of that.
type Notice struct {
	Kind        Kind
	Destination string
	CompanyName string
}

// Dispatcher sends notices. Fire-and-forget from the caller's perspective;
// a send failure is reported but never blocks the flow that requested it.
type Dispatcher interface {
	Send(ctx context.Context, notice Notice) error
}

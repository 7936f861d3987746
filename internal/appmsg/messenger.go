package appmsg

import (
	"context"

	"github.com/google/uuid"
)

// Message is what a Transport carries to the companion.
type Message struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Tuples        []Tuple   `json:"tuples"`
}

// Transport delivers a message to the paired companion and reports the
// result. Implementations must be safe to call off the event loop.
type Transport interface {
	Deliver(ctx context.Context, msg Message) Result
}

// Outcome is the result of one Delivery.
type Outcome struct {
	TransactionID uuid.UUID
	Result        Result
}

// Delivery performs the transport call for a sent message. The host runs it
// off the event loop and hands the Outcome back to Messenger.Complete.
type Delivery func(ctx context.Context) Outcome

// Messenger models the watch messaging subsystem: a single outbox slot with
// sent/failed callbacks. All methods except the returned Delivery must be
// called from the host event loop; there is no internal locking.
type Messenger struct {
	transport  Transport
	open       bool
	inboxSize  int
	outboxSize int

	staged   *Dict
	inFlight uuid.UUID
	busy     bool

	onSent   func()
	onFailed func(Result)
}

// NewMessenger builds a closed Messenger backed by transport.
func NewMessenger(transport Transport) *Messenger {
	return &Messenger{transport: transport}
}

// Open allocates the inbox and outbox buffers.
func (m *Messenger) Open(inboxSize, outboxSize int) Result {
	if m.open {
		return Busy
	}
	if inboxSize < InboxSizeMinimum || outboxSize < OutboxSizeMinimum {
		return OutOfMemory
	}
	m.open = true
	m.inboxSize = inboxSize
	m.outboxSize = outboxSize
	return OK
}

// RegisterOutboxSent sets the callback fired when the companion acknowledges
// a message.
func (m *Messenger) RegisterOutboxSent(fn func()) Result {
	if m.onSent != nil {
		return CallbackAlreadyRegistered
	}
	m.onSent = fn
	return OK
}

// RegisterOutboxFailed sets the callback fired when a send fails.
func (m *Messenger) RegisterOutboxFailed(fn func(Result)) Result {
	if m.onFailed != nil {
		return CallbackAlreadyRegistered
	}
	m.onFailed = fn
	return OK
}

// DeregisterCallbacks removes both outbox callbacks.
func (m *Messenger) DeregisterCallbacks() {
	m.onSent = nil
	m.onFailed = nil
}

// OutboxBegin stages a new outbound dictionary. It fails with Closed before
// Open and with Busy while another message is staged or in flight.
func (m *Messenger) OutboxBegin() (*Dict, Result) {
	if !m.open {
		return nil, Closed
	}
	if m.staged != nil || m.busy {
		return nil, Busy
	}
	m.staged = newDict(m.outboxSize)
	return m.staged, OK
}

// OutboxSend submits the staged dictionary. The returned Delivery must be
// run by the host; its Outcome is later passed to Complete.
func (m *Messenger) OutboxSend() (Delivery, Result) {
	if !m.open {
		return nil, Closed
	}
	if m.busy {
		return nil, Busy
	}
	if m.staged == nil {
		return nil, InvalidArgs
	}

	id := uuid.New()
	msg := Message{TransactionID: id, Tuples: m.staged.Tuples()}
	m.staged = nil
	m.busy = true
	m.inFlight = id

	transport := m.transport
	return func(ctx context.Context) Outcome {
		if transport == nil {
			return Outcome{TransactionID: id, Result: NotConnected}
		}
		return Outcome{TransactionID: id, Result: transport.Deliver(ctx, msg)}
	}, OK
}

// Complete finishes the in-flight message and fires exactly one of the sent
// or failed callbacks. Outcomes for other transactions are ignored.
func (m *Messenger) Complete(out Outcome) {
	if !m.busy || out.TransactionID != m.inFlight {
		return
	}
	m.busy = false
	m.inFlight = uuid.Nil

	if out.Result == OK {
		if m.onSent != nil {
			m.onSent()
		}
		return
	}
	if m.onFailed != nil {
		m.onFailed(out.Result)
	}
}

// InFlight reports whether a message awaits its Outcome.
func (m *Messenger) InFlight() bool {
	return m.busy
}

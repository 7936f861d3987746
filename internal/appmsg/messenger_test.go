package appmsg

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type recordingTransport struct {
	result Result
	got    []Message
}

func (r *recordingTransport) Deliver(_ context.Context, msg Message) Result {
	r.got = append(r.got, msg)
	return r.result
}

func openMessenger(t *testing.T, tr Transport) *Messenger {
	t.Helper()
	m := NewMessenger(tr)
	if res := m.Open(InboxSizeMinimum, OutboxSizeMinimum); res != OK {
		t.Fatalf("Open = %s, want MSG_OK", res)
	}
	return m
}

func TestMessenger_BeginBeforeOpenIsClosed(t *testing.T) {
	m := NewMessenger(&recordingTransport{})
	dict, res := m.OutboxBegin()
	if dict != nil || res != Closed {
		t.Fatalf("OutboxBegin = %v, %s, want nil, MSG_CLOSED", dict, res)
	}
}

func TestMessenger_OpenRejectsSmallBuffersAndDoubleOpen(t *testing.T) {
	m := NewMessenger(nil)
	if res := m.Open(10, OutboxSizeMinimum); res != OutOfMemory {
		t.Fatalf("Open small inbox = %s, want MSG_OUT_OF_MEMORY", res)
	}
	if res := m.Open(InboxSizeMinimum, OutboxSizeMinimum); res != OK {
		t.Fatalf("Open = %s, want MSG_OK", res)
	}
	if res := m.Open(InboxSizeMinimum, OutboxSizeMinimum); res != Busy {
		t.Fatalf("second Open = %s, want MSG_BUSY", res)
	}
}

func TestMessenger_SendDeliversAndFiresSent(t *testing.T) {
	tr := &recordingTransport{result: OK}
	m := openMessenger(t, tr)

	sent, failed := 0, 0
	m.RegisterOutboxSent(func() { sent++ })
	m.RegisterOutboxFailed(func(Result) { failed++ })

	dict, res := m.OutboxBegin()
	if res != OK {
		t.Fatalf("OutboxBegin = %s, want MSG_OK", res)
	}
	if res := dict.WriteInt(0, 1); res != OK {
		t.Fatalf("WriteInt = %s, want MSG_OK", res)
	}
	delivery, res := m.OutboxSend()
	if res != OK || delivery == nil {
		t.Fatalf("OutboxSend = %v, %s, want delivery, MSG_OK", delivery, res)
	}
	if !m.InFlight() {
		t.Fatalf("InFlight = false after send")
	}

	out := delivery(context.Background())
	if len(tr.got) != 1 {
		t.Fatalf("transport got %d messages, want 1", len(tr.got))
	}
	msg := tr.got[0]
	if msg.TransactionID != out.TransactionID || msg.TransactionID == uuid.Nil {
		t.Fatalf("transaction id mismatch: msg=%s outcome=%s", msg.TransactionID, out.TransactionID)
	}
	if len(msg.Tuples) != 1 || msg.Tuples[0].Key != 0 || msg.Tuples[0].Value != 1 {
		t.Fatalf("tuples = %#v, want [{0 int 1}]", msg.Tuples)
	}

	m.Complete(out)
	if sent != 1 || failed != 0 {
		t.Fatalf("callbacks sent=%d failed=%d, want 1/0", sent, failed)
	}
	if m.InFlight() {
		t.Fatalf("InFlight = true after Complete")
	}
}

func TestMessenger_FailureFiresFailedWithReason(t *testing.T) {
	m := openMessenger(t, &recordingTransport{result: Busy})

	var reason Result
	calls := 0
	m.RegisterOutboxFailed(func(r Result) { reason = r; calls++ })

	dict, _ := m.OutboxBegin()
	dict.WriteInt(0, 1)
	delivery, _ := m.OutboxSend()
	m.Complete(delivery(context.Background()))

	if calls != 1 || reason != Busy {
		t.Fatalf("failed callback calls=%d reason=%s, want 1 MSG_BUSY", calls, reason)
	}
}

func TestMessenger_BusyWhileInFlight(t *testing.T) {
	m := openMessenger(t, &recordingTransport{})

	dict, _ := m.OutboxBegin()
	if _, res := m.OutboxBegin(); res != Busy {
		t.Fatalf("OutboxBegin while staged = %s, want MSG_BUSY", res)
	}
	dict.WriteInt(0, 1)
	if _, res := m.OutboxSend(); res != OK {
		t.Fatalf("OutboxSend = %s, want MSG_OK", res)
	}
	if dict, res := m.OutboxBegin(); dict != nil || res != Busy {
		t.Fatalf("OutboxBegin while in flight = %v, %s, want nil, MSG_BUSY", dict, res)
	}
}

func TestMessenger_SendWithoutBeginIsInvalid(t *testing.T) {
	m := openMessenger(t, &recordingTransport{})
	if _, res := m.OutboxSend(); res != InvalidArgs {
		t.Fatalf("OutboxSend = %s, want MSG_INVALID_ARGS", res)
	}
}

func TestMessenger_StaleOutcomeIgnored(t *testing.T) {
	m := openMessenger(t, &recordingTransport{})
	calls := 0
	m.RegisterOutboxSent(func() { calls++ })

	dict, _ := m.OutboxBegin()
	dict.WriteInt(0, 1)
	m.OutboxSend()

	m.Complete(Outcome{TransactionID: uuid.New(), Result: OK})
	if calls != 0 {
		t.Fatalf("stale outcome fired sent callback")
	}
	if !m.InFlight() {
		t.Fatalf("stale outcome cleared in-flight message")
	}
}

func TestMessenger_NilTransportReportsNotConnected(t *testing.T) {
	m := openMessenger(t, nil)
	dict, _ := m.OutboxBegin()
	dict.WriteInt(0, 1)
	delivery, _ := m.OutboxSend()
	if out := delivery(context.Background()); out.Result != NotConnected {
		t.Fatalf("Result = %s, want MSG_NOT_CONNECTED", out.Result)
	}
}

func TestMessenger_RegisterTwice(t *testing.T) {
	m := NewMessenger(nil)
	if res := m.RegisterOutboxSent(func() {}); res != OK {
		t.Fatalf("RegisterOutboxSent = %s", res)
	}
	if res := m.RegisterOutboxSent(func() {}); res != CallbackAlreadyRegistered {
		t.Fatalf("second RegisterOutboxSent = %s, want MSG_CALLBACK_ALREADY_REGISTERED", res)
	}
	m.DeregisterCallbacks()
	if res := m.RegisterOutboxSent(func() {}); res != OK {
		t.Fatalf("RegisterOutboxSent after deregister = %s", res)
	}
}

func TestDict_WriteOverflow(t *testing.T) {
	d := newDict(dictHeaderSize + tupleHeaderSize + int32Size)
	if res := d.WriteInt(0, 1); res != OK {
		t.Fatalf("first WriteInt = %s, want MSG_OK", res)
	}
	if res := d.WriteInt(1, 2); res != BufferOverflow {
		t.Fatalf("second WriteInt = %s, want MSG_BUFFER_OVERFLOW", res)
	}
	if d.Len() != 1 || d.Size() != 12 {
		t.Fatalf("Len=%d Size=%d, want 1/12", d.Len(), d.Size())
	}
}

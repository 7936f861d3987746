package watch

import (
	"log"
	"time"

	"github.com/five82/alertface/internal/appmsg"
)

// Outbound alert field.
const (
	AlertKey   uint32 = 0x0
	AlertValue int32  = 1
)

// Fixed label texts.
const (
	AlertText = "ALERT!"
	ErrorText = "ERROR"
)

// Clock supplies wall-clock time and the user's 12/24 hour preference.
type Clock interface {
	Now() time.Time
	Is24HourStyle() bool
}

// Outbox is the sending half of the messaging subsystem.
type Outbox interface {
	OutboxBegin() (*appmsg.Dict, appmsg.Result)
	OutboxSend() (appmsg.Delivery, appmsg.Result)
}

// Face is the watch face controller: it owns the alert flag and the label.
type Face struct {
	clock       Clock
	outbox      Outbox
	label       *TextLayer
	alertActive bool
}

// NewFace builds a controller with no label attached.
func NewFace(clock Clock, outbox Outbox) *Face {
	return &Face{clock: clock, outbox: outbox}
}

// SetLabel attaches (or with nil, detaches) the text layer the face writes to.
func (f *Face) SetLabel(l *TextLayer) {
	f.label = l
}

// AlertActive reports whether an alert is pending acknowledgement.
func (f *Face) AlertActive() bool {
	return f.alertActive
}

// Text returns what the label currently shows.
func (f *Face) Text() string {
	return f.label.Text()
}

// UpdateTime shows the current time unless an alert is active.
func (f *Face) UpdateTime() {
	if f.alertActive {
		return
	}
	f.label.SetText(FormatTime(f.clock.Now(), f.clock.Is24HourStyle()))
}

// OnButtonPressed raises an alert and submits {AlertKey: AlertValue} to the
// outbox. It returns the Delivery the host must run, or nil when the outbox
// could not be opened for writing.
func (f *Face) OnButtonPressed(b Button) appmsg.Delivery {
	f.alertActive = true
	f.label.SetText(AlertText)

	dict, res := f.outbox.OutboxBegin()
	if res != appmsg.OK || dict == nil {
		return nil
	}
	if res := dict.WriteInt(AlertKey, AlertValue); res != appmsg.OK {
		log.Printf("alert write failed on %s: %s", b, res)
	}
	delivery, res := f.outbox.OutboxSend()
	if res != appmsg.OK {
		log.Printf("alert send rejected on %s: %s", b, res)
		return nil
	}
	return delivery
}

// OnSendAcknowledged clears the alert and restores the clock.
func (f *Face) OnSendAcknowledged() {
	f.alertActive = false
	f.UpdateTime()
}

// OnSendFailed logs the reason and shows ErrorText. The alert stays active,
// so minute ticks leave the label alone until the next press succeeds.
func (f *Face) OnSendFailed(reason appmsg.Result) {
	log.Printf("outbox send failed: %s", appmsg.Translate(reason))
	f.label.SetText(ErrorText)
}

// FormatTime renders t as zero-padded HH:MM in 24 or 12 hour style.
func FormatTime(t time.Time, is24h bool) string {
	if is24h {
		return t.Format("15:04")
	}
	return t.Format("03:04")
}

// SystemClock reads the local wall clock. Use24h carries the host setting.
type SystemClock struct {
	Use24h bool
}

func (c SystemClock) Now() time.Time {
	return time.Now()
}

func (c SystemClock) Is24HourStyle() bool {
	return c.Use24h
}

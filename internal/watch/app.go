package watch

import (
	"fmt"

	"github.com/five82/alertface/internal/appmsg"
)

// State is the application lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Messenger is the part of the messaging subsystem the app drives.
type Messenger interface {
	Outbox
	Open(inboxSize, outboxSize int) appmsg.Result
	RegisterOutboxSent(fn func()) appmsg.Result
	RegisterOutboxFailed(fn func(appmsg.Result)) appmsg.Result
	DeregisterCallbacks()
	Complete(out appmsg.Outcome)
}

// labelFrame is where the clock label sits inside the window.
func labelFrame(bounds Rect) Rect {
	return Rect{Origin: Point{X: 0, Y: 57}, Size: Size{W: bounds.Size.W, H: 50}}
}

// App wires a Face to a window, the messenger and the minute tick.
type App struct {
	face      *Face
	messenger Messenger
	window    *Window
	label     *TextLayer
	state     State
	ticking   bool
	pending   appmsg.Delivery
}

// NewApp builds an uninitialized app.
func NewApp(clock Clock, messenger Messenger) *App {
	return &App{
		face:      NewFace(clock, messenger),
		messenger: messenger,
	}
}

// Init moves the app from Uninitialized to Running.
func (a *App) Init() error {
	if a.state != StateUninitialized {
		return fmt.Errorf("init app: state is %s", a.state)
	}

	a.messenger.RegisterOutboxSent(a.face.OnSendAcknowledged)
	a.messenger.RegisterOutboxFailed(a.face.OnSendFailed)
	if res := a.messenger.Open(appmsg.InboxSizeMinimum, appmsg.OutboxSizeMinimum); res != appmsg.OK {
		return fmt.Errorf("open app message: %s", res)
	}

	a.window = NewWindow()
	for _, b := range Buttons {
		a.window.SubscribeClick(b, a.alertClick)
	}
	a.window.SetHandlers(WindowHandlers{
		Load:   a.windowLoad,
		Unload: a.windowUnload,
	})
	a.state = StateRunning
	a.window.Push(true)
	a.ticking = true
	return nil
}

// Deinit moves the app from Running to Terminated.
func (a *App) Deinit() {
	if a.state != StateRunning {
		return
	}
	a.ticking = false
	a.window.Destroy()
	a.messenger.DeregisterCallbacks()
	a.state = StateTerminated
}

func (a *App) windowLoad(w *Window) {
	a.label = NewTextLayer(labelFrame(w.Bounds()))
	a.label.Alignment = AlignCenter
	a.label.Font = FontBitham30Black
	w.AddLayer(a.label)
	a.face.SetLabel(a.label)
	a.face.UpdateTime()
}

func (a *App) windowUnload(w *Window) {
	w.RemoveLayer(a.label)
	a.face.SetLabel(nil)
	a.label = nil
}

func (a *App) alertClick(b Button) {
	a.pending = a.face.OnButtonPressed(b)
}

// Click dispatches a button press and returns the Delivery to run, if any.
func (a *App) Click(b Button) appmsg.Delivery {
	if a.state != StateRunning {
		return nil
	}
	a.pending = nil
	a.window.Click(b)
	delivery := a.pending
	a.pending = nil
	return delivery
}

// MinuteTick is called by the host at every minute boundary.
func (a *App) MinuteTick() {
	if a.state != StateRunning || !a.ticking {
		return
	}
	a.face.UpdateTime()
}

// Refresh redraws the clock, e.g. after the host's time style changed.
func (a *App) Refresh() {
	if a.state != StateRunning {
		return
	}
	a.face.UpdateTime()
}

// Deliver hands a finished Delivery back to the messenger.
func (a *App) Deliver(out appmsg.Outcome) {
	if a.state != StateRunning {
		return
	}
	a.messenger.Complete(out)
}

// State returns the lifecycle state.
func (a *App) State() State {
	return a.state
}

// Label returns the label text, or "" when no label is loaded.
func (a *App) Label() string {
	return a.face.Text()
}

// LabelLayer returns the loaded label, or nil.
func (a *App) LabelLayer() *TextLayer {
	return a.label
}

// AlertActive reports the face's alert flag.
func (a *App) AlertActive() bool {
	return a.face.AlertActive()
}

// Window returns the app window; nil before Init.
func (a *App) Window() *Window {
	return a.window
}

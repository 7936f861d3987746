package watch

// Screen geometry of the watch display, in pixels.
const (
	ScreenWidth  = 144
	ScreenHeight = 168
)

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Size is a pixel extent.
type Size struct {
	W, H int
}

// Rect is a frame within the window.
type Rect struct {
	Origin Point
	Size   Size
}

// Alignment is horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Font names a system font. The host decides how to render it.
type Font string

const (
	FontGothic18      Font = "gothic-18"
	FontBitham30Black Font = "bitham-30-black"
)

// TextLayer is a single text region inside a window.
type TextLayer struct {
	Frame     Rect
	Alignment Alignment
	Font      Font
	text      string
}

// NewTextLayer creates an empty layer with the given frame.
func NewTextLayer(frame Rect) *TextLayer {
	return &TextLayer{Frame: frame, Font: FontGothic18}
}

// SetText replaces the layer's text. A nil layer ignores the call.
func (l *TextLayer) SetText(text string) {
	if l == nil {
		return
	}
	l.text = text
}

// Text returns the current text.
func (l *TextLayer) Text() string {
	if l == nil {
		return ""
	}
	return l.text
}

// WindowHandlers are invoked when a window's content is loaded or unloaded.
type WindowHandlers struct {
	Load   func(*Window)
	Unload func(*Window)
}

// ClickHandler reacts to a single click on a button.
type ClickHandler func(Button)

// Window is a full-screen window with child text layers.
type Window struct {
	bounds   Rect
	handlers WindowHandlers
	clicks   map[Button]ClickHandler
	layers   []*TextLayer
	loaded   bool
	animated bool
}

// NewWindow creates an unloaded window covering the whole screen.
func NewWindow() *Window {
	return &Window{
		bounds: Rect{Size: Size{W: ScreenWidth, H: ScreenHeight}},
		clicks: make(map[Button]ClickHandler),
	}
}

// Bounds returns the root layer bounds.
func (w *Window) Bounds() Rect {
	return w.bounds
}

// SetHandlers installs the load and unload handlers.
func (w *Window) SetHandlers(h WindowHandlers) {
	w.handlers = h
}

// SubscribeClick binds handler to single clicks of b.
func (w *Window) SubscribeClick(b Button, handler ClickHandler) {
	w.clicks[b] = handler
}

// AddLayer attaches a text layer to the window.
func (w *Window) AddLayer(l *TextLayer) {
	if l == nil {
		return
	}
	w.layers = append(w.layers, l)
}

// RemoveLayer detaches a text layer.
func (w *Window) RemoveLayer(l *TextLayer) {
	for i, existing := range w.layers {
		if existing == l {
			w.layers = append(w.layers[:i], w.layers[i+1:]...)
			return
		}
	}
}

// Layers returns the attached text layers in draw order.
func (w *Window) Layers() []*TextLayer {
	out := make([]*TextLayer, len(w.layers))
	copy(out, w.layers)
	return out
}

// Loaded reports whether the load handler has run without a matching unload.
func (w *Window) Loaded() bool {
	return w.loaded
}

// Animated reports whether the window was pushed with a transition.
func (w *Window) Animated() bool {
	return w.animated
}

// Push puts the window on screen, running the load handler.
func (w *Window) Push(animated bool) {
	if w.loaded {
		return
	}
	w.animated = animated
	w.loaded = true
	if w.handlers.Load != nil {
		w.handlers.Load(w)
	}
}

// Destroy unloads the window if needed and drops its subscriptions.
func (w *Window) Destroy() {
	if w.loaded {
		w.loaded = false
		if w.handlers.Unload != nil {
			w.handlers.Unload(w)
		}
	}
	w.clicks = make(map[Button]ClickHandler)
	w.layers = nil
}

// Click dispatches a button press to the subscribed handler. It reports
// whether a handler ran.
func (w *Window) Click(b Button) bool {
	if !w.loaded {
		return false
	}
	handler, ok := w.clicks[b]
	if !ok || handler == nil {
		return false
	}
	handler(b)
	return true
}

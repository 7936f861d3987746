package watch

// Button identifies one of the watch's four hardware buttons.
type Button int

const (
	ButtonBack Button = iota
	ButtonSelect
	ButtonUp
	ButtonDown
)

// Buttons lists every button in SDK order.
var Buttons = []Button{ButtonBack, ButtonSelect, ButtonUp, ButtonDown}

func (b Button) String() string {
	switch b {
	case ButtonBack:
		return "back"
	case ButtonSelect:
		return "select"
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

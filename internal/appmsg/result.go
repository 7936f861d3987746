package appmsg

// Result is a messaging subsystem status code. Values match the watch SDK's
// AppMessageResult bit flags so they survive a round trip through the
// companion unchanged.
type Result uint32

const (
	OK                        Result = 0
	SendTimeout               Result = 1 << 1
	SendRejected              Result = 1 << 2
	NotConnected              Result = 1 << 3
	AppNotRunning             Result = 1 << 4
	InvalidArgs               Result = 1 << 5
	Busy                      Result = 1 << 6
	BufferOverflow            Result = 1 << 7
	AlreadyReleased           Result = 1 << 9
	CallbackAlreadyRegistered Result = 1 << 10
	CallbackNotRegistered     Result = 1 << 11
	OutOfMemory               Result = 1 << 12
	Closed                    Result = 1 << 13
	InternalError             Result = 1 << 14
)

// UnknownError is the label for any code outside the known set.
const UnknownError = "UNKNOWN ERROR"

var resultNames = map[Result]string{
	OK:                        "MSG_OK",
	SendTimeout:               "MSG_SEND_TIMEOUT",
	SendRejected:              "MSG_SEND_REJECTED",
	NotConnected:              "MSG_NOT_CONNECTED",
	AppNotRunning:             "MSG_APP_NOT_RUNNING",
	InvalidArgs:               "MSG_INVALID_ARGS",
	Busy:                      "MSG_BUSY",
	BufferOverflow:            "MSG_BUFFER_OVERFLOW",
	AlreadyReleased:           "MSG_ALREADY_RELEASED",
	CallbackAlreadyRegistered: "MSG_CALLBACK_ALREADY_REGISTERED",
	CallbackNotRegistered:     "MSG_CALLBACK_NOT_REGISTERED",
	OutOfMemory:               "MSG_OUT_OF_MEMORY",
	Closed:                    "MSG_CLOSED",
	InternalError:             "MSG_INTERNAL_ERROR",
}

// Translate returns the human-readable label for a result code.
func Translate(r Result) string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return UnknownError
}

// ParseResult looks up a code by its label, accepting names with or without
// the MSG_ prefix.
func ParseResult(name string) (Result, bool) {
	for code, label := range resultNames {
		if label == name || label == "MSG_"+name {
			return code, true
		}
	}
	return 0, false
}

func (r Result) String() string {
	return Translate(r)
}

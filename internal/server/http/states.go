package http

// serverState is a stage of the single request-response exchange. The connection is
// closed after any of them, either on success or on error.
type serverState uint8

const (
	eAwaitRequest serverState = iota + 1
	eParsed
	eResolved
	eInvoked
	eWritten
)

func (s serverState) String() string {
	switch s {
	case eAwaitRequest:
		return "await request"
	case eParsed:
		return "parsed"
	case eResolved:
		return "resolved"
	case eInvoked:
		return "invoked"
	case eWritten:
		return "written"
	default:
		return "unknown"
	}
}

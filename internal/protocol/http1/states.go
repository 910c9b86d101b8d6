package http1

// State is a stage of the request parsing.
type State uint8

const (
	eRequestLine State = iota + 1
	eHeaders
	eBody
	eDone
)

func (p State) String() string {
	switch p {
	case eRequestLine:
		return "request line"
	case eHeaders:
		return "headers"
	case eBody:
		return "body"
	case eDone:
		return "done"
	default:
		return "unknown"
	}
}

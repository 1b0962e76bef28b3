package clip

import "fmt"

// ErrorKind classifies a parse failure: structural problems with the token
// stream versus a value that failed its type's coercion rule.
type ErrorKind int

const (
	// ErrBadFormat is a token matching no recognized shape.
	ErrBadFormat ErrorKind = iota
	// ErrUnknownKey is a well-formed token naming no registered entry.
	// Only reported under WithReportUnknown.
	ErrUnknownKey
	// ErrMissingValue is a truncated argument vector where a value was
	// expected. Always fatal to the scan.
	ErrMissingValue
	// ErrBadValue is a value token that failed coercion.
	ErrBadValue
)

// Error is a parse failure routed to the caller's handler. Errors never
// propagate as panics across the parse boundary.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e Error) Message() string {
	return e.msg
}

func (e Error) Error() string {
	return e.msg
}

func newError(kind ErrorKind, format string, args ...any) Error {
	return Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// ErrorResult is a handler's verdict on whether scanning continues past a
// reported failure.
type ErrorResult int

const (
	Continue ErrorResult = iota
	Terminate
)

// ErrorHandler observes each parse failure in token order and decides whether
// the scan continues. Handlers do not affect the parse result: any reported
// failure makes Parse return false.
type ErrorHandler func(Error) ErrorResult

// Sink adapts a handler with no continue/terminate signal; scanning always
// continues after a failure it observes.
func Sink(fn func(Error)) ErrorHandler {
	return func(e Error) ErrorResult {
		fn(e)
		return Continue
	}
}

package clip

import (
	"fmt"
	"strings"
)

// Parse scans args against the registered entries and returns false if any
// error was reported. args[0] is the invocation name; scanning starts at
// args[1]. handler observes each failure in token order and may terminate the
// scan early (a nil handler continues silently). Running out of tokens while
// a value is expected aborts regardless of the handler's signal.
//
// The registry must not be modified while Parse runs. Repeated keys never
// error: each successful set fully replaces prior state.
func (p *Parser) Parse(args []string, handler ErrorHandler, opts ...ParseOpt) bool {
	initializeColorFromEnv()

	cfg := &parseCfg{}
	for _, opt := range opts {
		opt(cfg)
	}

	success := true
	// Reports a failure and returns true if parsing should continue.
	report := func(kind ErrorKind, format string, fmtArgs ...any) bool {
		success = false
		if handler == nil {
			return true
		}
		return handler(newError(kind, format, fmtArgs...)) == Continue
	}

	if len(args) > 0 {
		p.invokeName = args[0]
	}

	for i := 1; i < len(args); i++ {
		token := args[i]
		switch {
		case len(token) > len(LongDelim) && strings.HasPrefix(token, LongDelim):
			key, value, hasValue := cutValue(token[len(LongDelim):])
			if !hasValue {
				if flag := p.flagByWord(key); flag != nil {
					flag.set()
					continue
				}
				// Not a flag: the value is the next token.
				i++
				if i >= len(args) {
					report(ErrMissingValue, "Unexpected termination. Expected parameter for command %q.", token)
					return false
				}
				value = args[i]
			}
			if arg := p.valueByWord(key); arg != nil {
				if !arg.set(value) && !report(ErrBadValue, "Unexpected format for argument %q with parameter %q.", key, value) {
					return false
				}
			} else if cfg.reportUnknown {
				if !report(ErrUnknownKey, "Unrecognized command %q.", key) {
					return false
				}
			}
		case len(token) > 1 && token[0] == ShortDelim:
			// Flags first. There may be multiple chained together.
			isFlag := false
			k := 1
			for ; k < len(token); k++ {
				flag := p.flagByShort(token[k])
				if flag == nil {
					break
				}
				flag.set()
				isFlag = true
			}
			if isFlag {
				if k < len(token) && cfg.reportUnknown {
					if !report(ErrUnknownKey, "Unrecognized flag %q.", string(token[k])) {
						return false
					}
				}
				continue
			}

			// Not a flag: a single-character command with a parameter.
			key, value, hasValue := cutValue(token[1:])
			if !hasValue {
				i++
				if i >= len(args) {
					report(ErrMissingValue, "Unexpected termination. Expected parameter for command %q.", token)
					return false
				}
				value = args[i]
			}
			if len(key) != 1 {
				if !report(ErrBadFormat, "Command %q has an unexpected format.", token) {
					return false
				}
			} else if arg := p.valueByShort(key[0]); arg != nil {
				if !arg.set(value) && !report(ErrBadValue, "Unexpected format for argument %q with parameter %q.", key, value) {
					return false
				}
			} else if cfg.reportUnknown {
				if !report(ErrUnknownKey, "Unrecognized command %q.", key) {
					return false
				}
			}
		default:
			if !report(ErrBadFormat, "Unrecognized command format %q.", token) {
				return false
			}
		}
	}
	return success
}

// ParseOrExit is host glue over Parse: failures are printed to stderr
// followed by the help text, then the process exits with code 1.
func (p *Parser) ParseOrExit(args []string, opts ...ParseOpt) {
	ok := p.Parse(args, Sink(func(e Error) {
		fmt.Fprintln(stderrWriter, e.Message())
	}), opts...)
	if !ok {
		fmt.Fprintln(stderrWriter)
		fmt.Fprint(stderrWriter, p.GenerateHelp(""))
		osExit(1)
	}
}

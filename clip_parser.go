package clip

import "fmt"

// Token grammar constants. Short-form tokens start with ShortDelim, long-form
// tokens with LongDelim, and inline values are attached with ValueDelim.
const (
	ShortDelim = byte('-')
	LongDelim  = "--"
	ValueDelim = byte('=')
)

// Keyword sets accepted by bool-valued arguments, matched case-insensitively.
var (
	TrueWords  = []string{"true", "t", "yes", "y", "1"}
	FalseWords = []string{"false", "f", "no", "n", "0"}
)

// ProgrammingError wraps errors caused by incorrect library setup/configuration.
// These are bugs in the code using clip, not user input errors.
type ProgrammingError struct {
	msg string
}

func (e *ProgrammingError) Error() string {
	return e.msg
}

// NewProgrammingError creates a new programming error
func NewProgrammingError(msg string) *ProgrammingError {
	return &ProgrammingError{msg: msg}
}

type entryMeta struct {
	short       string // single-char key, "" if none
	word        string // multi-char key, "" if none
	usage       string
	defaultText string // rendered default for help output, "" for optionals
}

func (m *entryMeta) hasShort(c byte) bool {
	return m.short != "" && m.short[0] == c
}

func (m *entryMeta) hasWord(key string) bool {
	return m.word != "" && m.word == key
}

type flagEntry struct {
	entryMeta
	set func() // writes the negation of the flag's default
}

type valueEntry struct {
	entryMeta
	set func(token string) bool // coerces one token into the bound storage
}

// Parser holds registered flags and valued arguments and scans an argument
// vector against them. Entries bind caller-owned storage at registration time;
// the storage must outlive every Parse call. A Parser is not safe for
// concurrent use.
type Parser struct {
	flags      []*flagEntry
	values     []*valueEntry
	invokeName string
}

func NewParser() *Parser {
	return &Parser{}
}

// InvokeName returns the invocation name captured from token 0 of the most
// recent Parse call, or "" if no parse has run.
func (p *Parser) InvokeName() string {
	return p.invokeName
}

func (p *Parser) flagByShort(c byte) *flagEntry {
	for _, f := range p.flags {
		if f.hasShort(c) {
			return f
		}
	}
	return nil
}

func (p *Parser) flagByWord(key string) *flagEntry {
	for _, f := range p.flags {
		if f.hasWord(key) {
			return f
		}
	}
	return nil
}

func (p *Parser) valueByShort(c byte) *valueEntry {
	for _, v := range p.values {
		if v.hasShort(c) {
			return v
		}
	}
	return nil
}

func (p *Parser) valueByWord(key string) *valueEntry {
	for _, v := range p.values {
		if v.hasWord(key) {
			return v
		}
	}
	return nil
}

func (p *Parser) checkValid(short, word string, verifyUnique bool) error {
	if short == "" && word == "" {
		return NewProgrammingError("argument must have a short key, a word key, or both")
	}
	if len(short) > 1 {
		return NewProgrammingError(fmt.Sprintf("short key %q must be a single character", short))
	}
	if word != "" && word[0] == ShortDelim {
		return NewProgrammingError(fmt.Sprintf("word key %q cannot start with %q", word, string(ShortDelim)))
	}
	if verifyUnique {
		return p.checkUnique(short, word)
	}
	return nil
}

func (p *Parser) checkUnique(short, word string) error {
	if short != "" {
		c := short[0]
		if p.flagByShort(c) != nil || p.valueByShort(c) != nil {
			return NewProgrammingError(fmt.Sprintf("short key %q already defined", short))
		}
	}
	if word != "" {
		if p.flagByWord(word) != nil || p.valueByWord(word) != nil {
			return NewProgrammingError(fmt.Sprintf("word key %q already defined", word))
		}
	}
	return nil
}

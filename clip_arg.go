package clip

import (
	"fmt"
	"strconv"
)

// FlagArg declares a no-value boolean option. Presence of its key writes the
// negation of the default into the bound storage, which supports opt-out
// flags (default true, presence clears).
type FlagArg struct {
	word         string
	short        string
	usage        string
	def          bool
	verifyUnique bool
}

// NewFlag starts a flag declaration. word may be "" for a short-only flag,
// but at least one key must be set by registration time.
func NewFlag(word string) *FlagArg {
	return &FlagArg{word: word, verifyUnique: true}
}

func (f *FlagArg) SetShort(s string) *FlagArg {
	f.short = s
	return f
}

func (f *FlagArg) SetUsage(u string) *FlagArg {
	f.usage = u
	return f
}

func (f *FlagArg) SetDefault(d bool) *FlagArg {
	f.def = d
	return f
}

func (f *FlagArg) SetVerifyUnique(b bool) *FlagArg {
	f.verifyUnique = b
	return f
}

func (f *FlagArg) Register(p *Parser) (*bool, error) {
	ptr := new(bool)
	return ptr, f.RegisterWithPtr(p, ptr)
}

// RegisterWithPtr binds caller-owned storage. The default is written into the
// storage immediately; the storage must outlive every Parse call.
func (f *FlagArg) RegisterWithPtr(p *Parser, ptr *bool) error {
	if err := p.checkValid(f.short, f.word, f.verifyUnique); err != nil {
		return err
	}
	*ptr = f.def
	def := f.def
	p.flags = append(p.flags, &flagEntry{
		entryMeta: entryMeta{
			short:       f.short,
			word:        f.word,
			usage:       f.usage,
			defaultText: strconv.FormatBool(f.def),
		},
		set: func() { *ptr = !def },
	})
	return nil
}

// ValueArg declares a valued argument: an option taking exactly one value
// token, coerced per T's rule. There is no default setter; for non-optional
// registration the storage's value at registration time is the default.
type ValueArg[T Bindable] struct {
	word         string
	short        string
	usage        string
	verifyUnique bool
}

func NewValue[T Bindable](word string) *ValueArg[T] {
	return &ValueArg[T]{word: word, verifyUnique: true}
}

// Typed shorthands for the common storage types.
func NewBool(word string) *ValueArg[bool] { return NewValue[bool](word) }

func NewInt(word string) *ValueArg[int] { return NewValue[int](word) }

func NewInt64(word string) *ValueArg[int64] { return NewValue[int64](word) }

func NewUint(word string) *ValueArg[uint] { return NewValue[uint](word) }

func NewUint64(word string) *ValueArg[uint64] { return NewValue[uint64](word) }

func NewFloat64(word string) *ValueArg[float64] { return NewValue[float64](word) }

func NewString(word string) *ValueArg[string] { return NewValue[string](word) }

func (v *ValueArg[T]) SetShort(s string) *ValueArg[T] {
	v.short = s
	return v
}

func (v *ValueArg[T]) SetUsage(u string) *ValueArg[T] {
	v.usage = u
	return v
}

func (v *ValueArg[T]) SetVerifyUnique(b bool) *ValueArg[T] {
	v.verifyUnique = b
	return v
}

func (v *ValueArg[T]) Register(p *Parser) (*T, error) {
	ptr := new(T)
	return ptr, v.RegisterWithPtr(p, ptr)
}

// RegisterWithPtr binds caller-owned storage. The current value of *ptr is
// used as the displayable default.
func (v *ValueArg[T]) RegisterWithPtr(p *Parser, ptr *T) error {
	if err := p.checkValid(v.short, v.word, v.verifyUnique); err != nil {
		return err
	}
	p.values = append(p.values, &valueEntry{
		entryMeta: v.meta(defaultTextOf(*ptr)),
		set:       func(token string) bool { return coerce(ptr, token) },
	})
	return nil
}

func (v *ValueArg[T]) RegisterOptional(p *Parser) (*Opt[T], error) {
	ptr := new(Opt[T])
	return ptr, v.RegisterOptionalWithPtr(p, ptr)
}

// RegisterOptionalWithPtr binds Opt storage that stays unset until a token
// successfully coerces. Optional entries carry no displayable default.
func (v *ValueArg[T]) RegisterOptionalWithPtr(p *Parser, ptr *Opt[T]) error {
	if err := p.checkValid(v.short, v.word, v.verifyUnique); err != nil {
		return err
	}
	p.values = append(p.values, &valueEntry{
		entryMeta: v.meta(""),
		set: func(token string) bool {
			var tmp T
			if !coerce(&tmp, token) {
				return false
			}
			ptr.put(tmp)
			return true
		},
	})
	return nil
}

func (v *ValueArg[T]) meta(defaultText string) entryMeta {
	return entryMeta{
		short:       v.short,
		word:        v.word,
		usage:       v.usage,
		defaultText: defaultText,
	}
}

// CharArg declares a single-character valued argument bound to byte storage.
// It is its own builder because byte and uint8 are one type in Go: NewValue
// would give a uint8 destination numeric semantics, while a char destination
// accepts exactly one raw character.
type CharArg struct {
	word         string
	short        string
	usage        string
	verifyUnique bool
}

func NewChar(word string) *CharArg {
	return &CharArg{word: word, verifyUnique: true}
}

func (c *CharArg) SetShort(s string) *CharArg {
	c.short = s
	return c
}

func (c *CharArg) SetUsage(u string) *CharArg {
	c.usage = u
	return c
}

func (c *CharArg) SetVerifyUnique(b bool) *CharArg {
	c.verifyUnique = b
	return c
}

func (c *CharArg) Register(p *Parser) (*byte, error) {
	ptr := new(byte)
	return ptr, c.RegisterWithPtr(p, ptr)
}

func (c *CharArg) RegisterWithPtr(p *Parser, ptr *byte) error {
	if err := p.checkValid(c.short, c.word, c.verifyUnique); err != nil {
		return err
	}
	p.values = append(p.values, &valueEntry{
		entryMeta: entryMeta{
			short:       c.short,
			word:        c.word,
			usage:       c.usage,
			defaultText: fmt.Sprintf("%c", *ptr),
		},
		set: func(token string) bool { return setChar(ptr, token) },
	})
	return nil
}

func (c *CharArg) RegisterOptional(p *Parser) (*Opt[byte], error) {
	ptr := new(Opt[byte])
	return ptr, c.RegisterOptionalWithPtr(p, ptr)
}

func (c *CharArg) RegisterOptionalWithPtr(p *Parser, ptr *Opt[byte]) error {
	if err := p.checkValid(c.short, c.word, c.verifyUnique); err != nil {
		return err
	}
	p.values = append(p.values, &valueEntry{
		entryMeta: entryMeta{short: c.short, word: c.word, usage: c.usage},
		set: func(token string) bool {
			var tmp byte
			if !setChar(&tmp, token) {
				return false
			}
			ptr.put(tmp)
			return true
		},
	})
	return nil
}

// defaultTextOf renders a registration-time value for help output. Strings
// are quoted so an empty default reads as "".
func defaultTextOf[T Bindable](v T) string {
	if s, ok := any(v).(string); ok {
		return `"` + s + `"`
	}
	return fmt.Sprintf("%v", v)
}

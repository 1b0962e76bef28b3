package clip

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Bindable is the set of storage types a valued argument can write to. byte
// storage with single-character semantics goes through NewChar instead, since
// byte and uint8 are the same type in Go.
type Bindable interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

type numShape int

const (
	shapeGeneral numShape = iota
	shapeHex              // 0x / 0X prefix
	shapeNegHex           // -0x / -0X prefix
)

// numericShape classifies a numeric token and strips any hex prefix.
func numericShape(token string) (numShape, string) {
	if len(token) > 2 && token[0] == '-' && token[1] == '0' && (token[2] == 'x' || token[2] == 'X') {
		return shapeNegHex, token[3:]
	}
	if len(token) > 1 && token[0] == '0' && (token[1] == 'x' || token[1] == 'X') {
		return shapeHex, token[2:]
	}
	return shapeGeneral, token
}

// parseSigned64 parses into a 64-bit accumulator. Overflow past 64 bits is not
// a failure: strconv's range result is already the saturated extreme.
func parseSigned64(token string) (int64, bool) {
	shape, digits := numericShape(token)
	var v int64
	var err error
	switch shape {
	case shapeHex:
		v, err = strconv.ParseInt(digits, 16, 64)
	case shapeNegHex:
		v, err = strconv.ParseInt("-"+digits, 16, 64)
	default:
		v, err = strconv.ParseInt(token, 10, 64)
	}
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// parseUnsigned64 is parseSigned64 for unsigned destinations. Negative-hex
// tokens are rejected outright; general negatives fail in ParseUint.
func parseUnsigned64(token string) (uint64, bool) {
	shape, digits := numericShape(token)
	var v uint64
	var err error
	switch shape {
	case shapeHex:
		v, err = strconv.ParseUint(digits, 16, 64)
	case shapeNegHex:
		return 0, false
	default:
		v, err = strconv.ParseUint(token, 10, 64)
	}
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// setSigned coerces token into dst, saturating to [lo, hi] rather than failing
// on out-of-range values.
func setSigned[T int | int8 | int16 | int32 | int64](dst *T, token string, lo, hi int64) bool {
	v, ok := parseSigned64(token)
	if !ok {
		return false
	}
	if v > hi {
		v = hi
	} else if v < lo {
		v = lo
	}
	*dst = T(v)
	return true
}

func setUnsigned[T uint | uint8 | uint16 | uint32 | uint64](dst *T, token string, hi uint64) bool {
	v, ok := parseUnsigned64(token)
	if !ok {
		return false
	}
	if v > hi {
		v = hi
	}
	*dst = T(v)
	return true
}

func setBool(dst *bool, token string) bool {
	lower := strings.ToLower(token)
	for _, w := range TrueWords {
		if lower == w {
			*dst = true
			return true
		}
	}
	for _, w := range FalseWords {
		if lower == w {
			*dst = false
			return true
		}
	}
	return false
}

// setFloat coerces into a float destination of the given bit size. Go's
// ParseFloat only reads p-exponent hex floats, so hex tokens go through the
// integer hex reader and are converted. Range errors saturate to the parsed
// extreme instead of failing.
func setFloat[T float32 | float64](dst *T, token string, bits int) bool {
	shape, digits := numericShape(token)
	if shape == shapeHex || shape == shapeNegHex {
		v, err := strconv.ParseUint(digits, 16, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return false
		}
		f := float64(v)
		if shape == shapeNegHex {
			f = -f
		}
		*dst = T(f)
		return true
	}
	v, err := strconv.ParseFloat(token, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false
	}
	*dst = T(v)
	return true
}

// setChar accepts only a token of exactly one character and copies the raw
// byte. No numeric parsing.
func setChar(dst *byte, token string) bool {
	if len(token) != 1 {
		return false
	}
	*dst = token[0]
	return true
}

func setString(dst *string, token string) bool {
	*dst = token
	return true
}

// coerce dispatches to the rule matching dst's type. uint8 and int32
// destinations get numeric semantics here; character semantics are selected
// at registration via NewChar.
func coerce[T Bindable](dst *T, token string) bool {
	switch d := any(dst).(type) {
	case *bool:
		return setBool(d, token)
	case *int:
		return setSigned(d, token, math.MinInt, math.MaxInt)
	case *int8:
		return setSigned(d, token, math.MinInt8, math.MaxInt8)
	case *int16:
		return setSigned(d, token, math.MinInt16, math.MaxInt16)
	case *int32:
		return setSigned(d, token, math.MinInt32, math.MaxInt32)
	case *int64:
		return setSigned(d, token, math.MinInt64, math.MaxInt64)
	case *uint:
		return setUnsigned(d, token, math.MaxUint)
	case *uint8:
		return setUnsigned(d, token, math.MaxUint8)
	case *uint16:
		return setUnsigned(d, token, math.MaxUint16)
	case *uint32:
		return setUnsigned(d, token, math.MaxUint32)
	case *uint64:
		return setUnsigned(d, token, math.MaxUint64)
	case *float32:
		return setFloat(d, token, 32)
	case *float64:
		return setFloat(d, token, 64)
	case *string:
		return setString(d, token)
	}
	return false
}

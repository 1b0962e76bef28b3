package clip

import "strings"

// cutValue splits a stripped token on the first ValueDelim. An inline value
// that is the empty string ("--key=") is a real value, distinct from no
// inline value being present.
func cutValue(token string) (key, value string, hasValue bool) {
	idx := strings.IndexByte(token, ValueDelim)
	if idx == -1 {
		return token, "", false
	}
	return token[:idx], token[idx+1:], true
}

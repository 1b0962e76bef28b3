package clip

// Opt is storage for a required-but-deferred argument: it stays unset until a
// parse successfully writes it, so the host can tell "never supplied" apart
// from "supplied its zero value". A later successful write replaces the value
// (last write wins).
type Opt[T any] struct {
	value   T
	present bool
}

func (o *Opt[T]) IsSet() bool {
	return o.present
}

// Get returns the held value and whether one has been set.
func (o *Opt[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOr returns the held value, or fallback if unset.
func (o *Opt[T]) GetOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o *Opt[T]) put(v T) {
	o.value = v
	o.present = true
}

package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequiresAKey(t *testing.T) {
	p := NewParser()
	_, err := NewFlag("").Register(p)
	assert.Error(t, err)
	var progErr *ProgrammingError
	assert.ErrorAs(t, err, &progErr)

	_, err = NewInt("").Register(p)
	assert.Error(t, err)
}

func TestRegisterRejectsBadKeys(t *testing.T) {
	p := NewParser()

	_, err := NewFlag("-leading-dash").Register(p)
	assert.Error(t, err)

	_, err = NewFlag("").SetShort("ab").Register(p)
	assert.Error(t, err)
}

func TestRegisterUniqueKeys(t *testing.T) {
	p := NewParser()
	_, err := NewFlag("verbose").SetShort("v").Register(p)
	assert.NoError(t, err)

	// Keys are unique across both entry families.
	_, err = NewFlag("verbose").Register(p)
	assert.Error(t, err)
	_, err = NewInt("").SetShort("v").Register(p)
	assert.Error(t, err)
	_, err = NewString("verbose").Register(p)
	assert.Error(t, err)

	_, err = NewInt("verbosity").SetShort("V").Register(p)
	assert.NoError(t, err)
}

func TestRegisterUniquenessWaived(t *testing.T) {
	p := NewParser()
	first, err := NewFlag("verbose").SetShort("v").Register(p)
	assert.NoError(t, err)
	_, err = NewFlag("verbose").SetShort("v").SetVerifyUnique(false).Register(p)
	assert.NoError(t, err)

	// The earlier entry keeps winning lookups.
	assert.True(t, p.Parse([]string{"", "-v"}, nil))
	assert.True(t, *first)
}

func TestRegisterFlagWritesDefaultImmediately(t *testing.T) {
	p := NewParser()
	var optOut bool
	assert.NoError(t, NewFlag("no-color").SetDefault(true).RegisterWithPtr(p, &optOut))
	assert.True(t, optOut)

	optIn := true
	assert.NoError(t, NewFlag("color").RegisterWithPtr(p, &optIn))
	assert.False(t, optIn)
}

func TestRegisterValueKeepsCurrentValueAsDefault(t *testing.T) {
	p := NewParser()
	retries := 3
	assert.NoError(t, NewInt("retries").RegisterWithPtr(p, &retries))
	assert.Equal(t, 3, retries)
	assert.Equal(t, "3", p.values[0].defaultText)

	name := "world"
	assert.NoError(t, NewString("name").RegisterWithPtr(p, &name))
	assert.Equal(t, `"world"`, p.values[1].defaultText)
}

func TestRegisterOptionalHasNoDefaultText(t *testing.T) {
	p := NewParser()
	r, err := NewInt("retries").RegisterOptional(p)
	assert.NoError(t, err)
	assert.Equal(t, "", p.values[0].defaultText)
	assert.False(t, r.IsSet())
}

func TestRegisteredPointersAreCallerOwned(t *testing.T) {
	p := NewParser()
	var threshold int32 = 10
	assert.NoError(t, NewValue[int32]("threshold").RegisterWithPtr(p, &threshold))

	assert.True(t, p.Parse([]string{"", "--threshold", "42"}, nil))
	assert.Equal(t, int32(42), threshold)

	// A second parse against the same registry re-binds the same storage.
	assert.True(t, p.Parse([]string{"", "--threshold=7"}, nil))
	assert.Equal(t, int32(7), threshold)
}

package identitymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalentContents(t *testing.T) {
	f := &foo{}
	b := &bar{}
	first, err := WithObjects(f, b)
	require.NoError(t, err)
	second, err := AddAll(StartEmpty(), Entry{ID: 1, Object: b}, Entry{ID: 0, Object: f})
	require.NoError(t, err)

	assert.True(t, Equivalent(first, second))

	other, err := WithObjects(&foo{}, b)
	require.NoError(t, err)
	assert.False(t, Equivalent(first, other))

	renamed, err := AddAll(StartEmpty(), Entry{ID: "x", Object: f}, Entry{ID: 1, Object: b})
	require.NoError(t, err)
	assert.False(t, Equivalent(first, renamed))

	assert.False(t, Equivalent(first, StartEmpty()))
}

func TestEquivalentIgnoreStacks(t *testing.T) {
	populated := func() MapsObjectsByIdentity {
		m, err := WithObjects(&baz{})
		require.NoError(t, err)
		return m
	}
	base := populated()

	assert.True(t, Equivalent(
		IgnoreTheseIn(base, fooClass, barClass),
		IgnoreTheseIn(base, barClass, fooClass),
	))
	assert.False(t, Equivalent(
		IgnoreTheseIn(base, fooClass, barClass),
		IgnoreTheseIn(populated(), fooClass, barClass),
	))
	assert.False(t, Equivalent(IgnoreTheseIn(base, fooClass), base))
}

func TestEquivalentWhitelists(t *testing.T) {
	assert.True(t, Equivalent(WhitelistThe(fooClass, barClass), WhitelistThe(barClass, fooClass)))
	assert.False(t, Equivalent(WhitelistThe(fooClass), WhitelistThe(barClass)))
	assert.False(t, Equivalent(WhitelistThe(fooClass), StartEmpty()))

	nested := WhitelistFor(WhitelistThe(fooClass, barClass), barClass, bazClass)
	assert.True(t, Equivalent(nested, WhitelistThe(barClass)))
}

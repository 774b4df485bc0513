package mention

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds([]string{"user", "ROLE", " channel "})
	require.Nil(t, err)
	assert.Equal(t, []Kind{KindUser, KindRole, KindChannel}, kinds)

	_, err = ParseKinds([]string{"user", "sticker"})
	assert.True(t, errors.Is(err, ErrInvalidKind))
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		require.Nil(t, err)
		assert.Equal(t, kind, parsed)
	}
	assert.Equal(t, "kind(99)", Kind(99).String())
	assert.Nil(t, Kind(99).Pattern())
}

func TestFindMatchesEmote(t *testing.T) {
	matches := findMatches(KindEmote, "hi <a:party_blob:555> and <:blob:77>")
	require.Len(t, matches, 2)
	assert.Equal(t, 3, matches[0].Offset)
	assert.Equal(t, "party_blob", matches[0].Name())
	assert.True(t, matches[0].Animated())
	assert.Equal(t, "<a:party_blob:555>", matches[0].Text)
	assert.Equal(t, "blob", matches[1].Name())
	assert.False(t, matches[1].Animated())
	assert.EqualValues(t, 77, matches[1].ID)
}

func TestFindMatchesMalformedID(t *testing.T) {
	matches := findMatches(KindUser, "<@99999999999999999999999> <@123>")
	require.Len(t, matches, 1)
	assert.EqualValues(t, 123, matches[0].ID)
	assert.Equal(t, 27, matches[0].Offset)
}

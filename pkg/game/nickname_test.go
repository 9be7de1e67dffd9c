package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNickname(t *testing.T) {
	assert.Equal(t, "player_1", Nickname("player_1"))
	assert.Equal(t, "badnick!", Nickname("bad nick!"))
	assert.Equal(t, "abc", Nickname("a\tb\nc"))
	assert.Equal(t, strings.Repeat("x", MaxNicknameLength), Nickname(strings.Repeat("x", 40)))

	for _, nick := range []string{"", "   ", "\x1b"} {
		n := Nickname(nick)
		assert.NotEmpty(t, n)
		assert.LessOrEqual(t, len(n), MaxNicknameLength)
	}
}

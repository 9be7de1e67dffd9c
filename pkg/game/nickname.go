package game

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNicknameLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips characters that cannot be displayed and truncates the
// result. An empty nickname is replaced with a random one.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	} else if nick == "" {
		nick = RandomNickname()
	}

	return nick
}

func RandomNickname() string {
	nick := petname.Generate(2, "-")
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	}

	return nick
}

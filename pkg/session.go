package pkg

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

const maxNicknameLength = 16

// Session is one SSH connection running a viewer
type Session struct {
	Id      int
	Nick    string
	Term    string
	Seed    int64
	Started time.Time
}

func (s Session) String() string {
	return fmt.Sprintf("#%d %s (%s)", s.Id, s.Nick, s.Term)
}

// Nickname keeps the letters, digits, dashes and underscores of an SSH user
// name. Users without a usable name get a generated one.
func Nickname(user string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(user) {
		if b.Len() >= maxNicknameLength {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return petname.Generate(2, "-")
	}
	return b.String()
}

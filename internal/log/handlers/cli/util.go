package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscapes matches ANSI escape sequences such as colors.
var ansiEscapes = regexp.MustCompile(`[\x1B\x9B][[\]()#;?]*` +
	`(?:(?:(?:[a-zA-Z\d]*(?:;[a-zA-Z\\d]*)*)?\x07)` +
	`|(?:(?:\d{1,4}(?:;\d{0,4})*)?[\dA-PRZcf-ntqry=><~]))`)

// escapeAwareRuneCountInString counts the runes in s ignoring escape sequences.
func escapeAwareRuneCountInString(s string) int {
	n := utf8.RuneCountInString(s)
	for _, sm := range ansiEscapes.FindAllString(s, -1) {
		n -= utf8.RuneCountInString(sm)
	}
	return n
}

// rightPad pads str with spaces up to length visible runes.
func rightPad(str string, length int) string {
	c := length - escapeAwareRuneCountInString(str)
	if c < 0 {
		c = 0
	}
	return str + strings.Repeat(" ", c)
}

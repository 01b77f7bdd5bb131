package vim

import "strings"

// EscapeAll backslash-escapes every character of s. The result survives both
// Vim's command-line tokenizer and its expression parser, at the cost of
// escaping more than strictly necessary.
func EscapeAll(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeChars backslash-escapes only the characters of s that appear in
// charset. All other characters pass through unchanged.
func EscapeChars(s, charset string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(charset, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeCommand builds a Vim ex command from a command name and a single
// argument. The argument is fully escaped; an empty argument yields the bare
// command name with no trailing space.
func EscapeCommand(cmd, arg string) string {
	if arg == "" {
		return cmd
	}
	return cmd + " " + EscapeAll(arg)
}

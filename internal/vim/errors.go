package vim

import (
	"errors"
	"fmt"
)

// ErrInvalidOpenIn is returned when an EditRequest carries an open-in mode
// that ParseOpenIn would reject. This is a caller bug, not a server condition.
var ErrInvalidOpenIn = errors.New("invalid open-in mode")

// BinaryNotFoundError is returned when none of the candidate Vim binaries
// resolve via the execution search path.
type BinaryNotFoundError struct {
	Candidates []string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("the Vim command was not found: %v", e.Candidates)
}

// ServerNotFoundError is returned when no advertised Vim server matches the
// caller's pattern. It distinguishes "nothing is listening at all" from
// "servers are listening but none match", so the caller can decide whether to
// launch a fresh instance.
type ServerNotFoundError struct {
	Pattern string
	Servers []string // advertised names at resolution time
	Bin     string   // binary that was queried
}

// NoneListening reports whether the server universe was empty.
func (e *ServerNotFoundError) NoneListening() bool {
	return len(e.Servers) == 0
}

func (e *ServerNotFoundError) Error() string {
	if e.NoneListening() {
		return fmt.Sprintf("the Vim server is not listening (the following command returned an empty list: '%s --serverlist')", e.Bin)
	}
	return fmt.Sprintf("the regular expression '%s' does not match any of the running Vim servers: %v", e.Pattern, e.Servers)
}

// ServerUnresponsiveError is returned by Ping when the selected server is
// advertised but does not answer the liveness probe.
type ServerUnresponsiveError struct {
	ServerName string
}

func (e *ServerUnresponsiveError) Error() string {
	return fmt.Sprintf("the Vim server '%s' is not responding", e.ServerName)
}

// ExprError is returned when a remote expression produced no output. The
// backend returns empty output both when it crashed and when it silently
// rejected the expression; the two cases are indistinguishable on this side
// of the protocol.
type ExprError struct {
	ServerName string
	Expression string
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("the Vim server '%s' has not responded to the expression: %s", e.ServerName, e.Expression)
}

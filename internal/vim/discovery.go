package vim

import (
	"os/exec"
	"regexp"
	"strings"
)

// DefaultBinaries is the default candidate list used to locate a Vim binary,
// tried in order.
var DefaultBinaries = []string{"vim", "gvim"}

// FindBinary resolves the first candidate found on the execution search path
// and returns its absolute path. Candidates are tried strictly in order; an
// empty list falls back to DefaultBinaries.
func FindBinary(candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultBinaries
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", &BinaryNotFoundError{Candidates: candidates}
}

// ListServers queries bin for the names of all advertised Vim servers. A
// failed invocation is reported as an empty list: an absent server is a
// normal state, not a fault.
func ListServers(bin string) []string {
	out, err := exec.Command(bin, "--serverlist").Output()
	if err != nil {
		return nil
	}

	var servers []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			servers = append(servers, line)
		}
	}
	return servers
}

// SelectServer returns the first name matched by pattern, a case-insensitive
// regular expression search (not a full match: "foo" matches "MYFOOBAR").
// Names are considered in the order provided.
func SelectServer(names []string, pattern string, bin string) (string, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return "", err
	}
	for _, name := range names {
		if re.MatchString(name) {
			return name, nil
		}
	}
	return "", &ServerNotFoundError{Pattern: pattern, Servers: names, Bin: bin}
}

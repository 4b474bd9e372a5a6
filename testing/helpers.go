package testing

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
)

// OutputLines returns the non-empty lines written to tc.Out.
func (tc *TestCase) OutputLines() []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(tc.Out.Bytes()))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, scanner.Text())
		}
	}
	return lines
}

// LogEntries decodes every captured log line.
func (tc *TestCase) LogEntries() []map[string]any {
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(tc.Logs.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		tc.Require().NoError(json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// AssertLogged asserts that some captured entry has the given message.
func (tc *TestCase) AssertLogged(message string) map[string]any {
	for _, entry := range tc.LogEntries() {
		if entry["message"] == message {
			return entry
		}
	}
	tc.Failf("log entry not found", "no entry with message %q in:\n%s", message, tc.Logs.String())
	return nil
}

// File: services/conversation/timeparse.go
package conversation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timePattern accepts a 1-2 digit hour, optional :MM, and an optional
// am/pm suffix, with whitespace allowed between the pieces.
var timePattern = regexp.MustCompile(`^(\d{1,2})(?:\s*:\s*([0-5]\d))?\s*([aApP][mM])?$`)

// NormalizeTime parses loose human time text ("4pm", "4:30", "16:00") into a
// zero-padded HH:MM token. Input that does not match the pattern is passed
// through unchanged: downstream slot-matching simply won't find it, which
// turns malformed input into a "not available" reply instead of a parse
// error.
func NormalizeTime(raw string) string {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return raw
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return raw
	}

	minute := m[2]
	if minute == "" {
		minute = "00"
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%s", hour, minute)
}

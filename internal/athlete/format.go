package athlete

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime renders milliseconds as minutes:seconds.hundredths.
func FormatTime(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d.%02d", ms/60000, ms/1000%60, ms/10%100)
}

// ParseTime reads a clock string back into milliseconds. Accepted forms are
// "mm:ss.hh", "mm:ss" and a plain number of seconds. Anything unparseable
// yields 0.
func ParseTime(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var mins int64
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
	case 2:
		m, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || m < 0 {
			return 0
		}
		mins = m
	default:
		return 0
	}
	secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || secs < 0 {
		return 0
	}
	return mins*60000 + int64(secs*1000+0.5)
}

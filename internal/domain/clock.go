package domain

import "fmt"

// ParseClock converts an HH:MM clock time to minutes since midnight.
func ParseClock(s string) (int, error) {
	var hours, mins int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &mins); err != nil {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", s)
	}
	if hours < 0 || hours > 24 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return hours*60 + mins, nil
}

// FormatClock converts minutes since midnight back to HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

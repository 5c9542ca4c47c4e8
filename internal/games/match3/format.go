package match3

import "fmt"

// FormatTime renders a second count as "1 min 5 s", or "45 s" under a minute.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%d s", seconds)
	}
	return fmt.Sprintf("%d min %d s", seconds/60, seconds%60)
}

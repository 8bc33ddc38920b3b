package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/readrawhex/gantry/octoprint"
)

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % 60
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return string(runes[:limit-1]) + "…"
}

func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1 // room for ellipsis rune
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// formatTemp renders one heater reading as "actual° / target°". A zero
// target means the heater is off, shown as "actual° / off".
func formatTemp(t octoprint.TemperatureData) string {
	if t.Target == 0 {
		return fmt.Sprintf("%.1f° / off", t.Actual)
	}
	return fmt.Sprintf("%.1f° / %.1f°", t.Actual, t.Target)
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

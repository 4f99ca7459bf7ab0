package utils

import (
	"fmt"
	"time"
)

// FormatDuration renders a remaining wait as "1h 29m" / "4m 10s" / "12s".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatCoins renders an amount with its unit.
func FormatCoins(n int64) string {
	return fmt.Sprintf("%d coins", n)
}

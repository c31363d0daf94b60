package timeline

import (
	"strconv"
	"time"
)

// FormatElapsed renders d in Portuguese using its two most significant units,
// e.g. "2 dias e 3 horas" or "45 minutos".
func FormatElapsed(d time.Duration) string {
	if d < time.Minute {
		return "menos de 1 minuto"
	}

	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)

	var parts []string
	if days > 0 {
		parts = append(parts, unit(days, "dia", "dias"))
	}
	if hours > 0 {
		parts = append(parts, unit(hours, "hora", "horas"))
	}
	if minutes > 0 && days == 0 {
		parts = append(parts, unit(minutes, "minuto", "minutos"))
	}

	switch len(parts) {
	case 1:
		return parts[0]
	default:
		return parts[0] + " e " + parts[1]
	}
}

func unit(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

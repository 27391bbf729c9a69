package output

import (
	"strings"

	"github.com/blackwell-systems/schedlint/internal/health"
	"github.com/blackwell-systems/schedlint/internal/rules"
)

// SeverityLabel renders a bracketed, color-coded severity tag.
func SeverityLabel(s rules.Severity) string {
	label := "[" + strings.ToUpper(string(s)) + "]"
	switch s {
	case rules.SeverityError:
		return StyleError.Render(label)
	case rules.SeverityWarning:
		return StyleWarning.Render(label)
	default:
		return StyleMuted.Render(label)
	}
}

// StatusLabel renders a health status with its tier color.
func StatusLabel(status string) string {
	switch status {
	case health.StatusCritical:
		return StyleError.Render(status)
	case health.StatusWarning:
		return StyleWarning.Render(status)
	default:
		return StyleSuccess.Render(status)
	}
}

package utils

// ANSI escape sequences used to colorize terminal messages.
const (
	SuccessColor = "\x1b[92m"
	ErrorColor   = "\x1b[91m"
	DefaultColor = "\x1b[0m"
)

// DecorateText wraps the message into the requested color, terminated by a
// reset back to the terminal default.
func DecorateText(s, color string) string {
	switch color {
	case SuccessColor, ErrorColor:
		return color + s + DefaultColor
	default:
		return s
	}
}

package params

import (
	"log/slog"
	"strings"
	"time"
)

func Good(name string, logger *slog.Logger) {}

func Bad(logger *slog.Logger, name string) {} // want "Parameter 'logger' must be parameter 2"

func Unrelated(name string, count int) {}

func repeat(s string) string {
	_ = time.Now()

	return strings.Repeat(s, 0) + strings.Repeat(s, 2) // want "Do not call strings.Repeat with a zero count"
}

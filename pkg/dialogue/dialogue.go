// Package dialogue is the narrow contract for user-visible prompts. The
// bar registry only needs blocking alerts ("You have too many active
// missions."); the presentation surface decides how to show them.
package dialogue

import "log/slog"

// Alerter displays a blocking alert message to the player.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a plain function to the Alerter interface.
type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

// LogAlerter is the headless fallback: alerts go to the log. Interactive
// clients supply their own Alerter (the terminal client shows a modal).
type LogAlerter struct {
	Logger *slog.Logger
}

var _ Alerter = (*LogAlerter)(nil)

func (a *LogAlerter) Alert(msg string) {
	a.Logger.Info("Alert", "message", msg)
}

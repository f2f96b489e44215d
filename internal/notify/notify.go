// Package notify dispatches desktop notifications for score alerts.
// Dispatch shells out to the platform notifier; hosts without one get
// a no-op so alerting can never take the dashboard down.
package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Notifier delivers one alert to the desktop.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// New returns the best notifier for the current platform: osascript on
// macOS, notify-send on Linux, a no-op anywhere else or when the
// helper binary is missing.
func New() Notifier {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("osascript"); err == nil {
			return &commandNotifier{build: osascriptArgs}
		}
	case "linux":
		if _, err := exec.LookPath("notify-send"); err == nil {
			return &commandNotifier{build: notifySendArgs}
		}
	}
	return Noop{}
}

// Noop swallows alerts.
type Noop struct{}

// Notify implements Notifier.
func (Noop) Notify(context.Context, string, string) error { return nil }

// commandNotifier runs a platform notification command per alert.
type commandNotifier struct {
	build func(title, body string) (string, []string)
}

func (n *commandNotifier) Notify(ctx context.Context, title, body string) error {
	name, args := n.build(title, body)
	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("dispatch notification: %w", err)
	}
	return nil
}

func notifySendArgs(title, body string) (string, []string) {
	return "notify-send", []string{title, body}
}

func osascriptArgs(title, body string) (string, []string) {
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	return "osascript", []string{"-e", script}
}

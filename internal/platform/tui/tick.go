// Package tui provides the Bubble Tea integration for the frogger platform.
// It handles the terminal UI loop, input mapping, score keeping and SSH
// hosting around a registry.Game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigReloadMsg carries a configuration change picked up by the watcher.
type ConfigReloadMsg config.Reload

// waitForReload blocks on the watcher channel and turns the next reload into
// a message. It returns nil when the channel is closed.
func waitForReload(reloads <-chan config.Reload) tea.Cmd {
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-reloads
		if !ok {
			return nil
		}
		return ConfigReloadMsg(r)
	}
}

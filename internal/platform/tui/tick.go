// Package tui provides the Bubble Tea front end for ecoclean: the quiz,
// the clean-up game, the scoreboard and the SSH session that ties them
// together. Each screen runs on the Bubble Tea update loop, which is the
// only place game commands are issued.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame. Loop identifies the
// game model that scheduled it; ticks from a previous model are dropped.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh tick loop id.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}

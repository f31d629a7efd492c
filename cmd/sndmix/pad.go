// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ik5/sndmix/audio"
	"github.com/ik5/sndmix/internal/config"
	"github.com/ik5/sndmix/internal/device"
)

const maxPads = 9

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	playingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type refreshMsg time.Time

// padModel is the game logic side: key presses start and stop sounds while
// the device drains the mixer on its own goroutine.
type padModel struct {
	mixer *audio.Mixer
	pads  []*audio.Instance
	last  *audio.Instance
}

func refresh() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func (m padModel) Init() tea.Cmd { return refresh() }

func (m padModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m, refresh()
	case tea.KeyMsg:
		key := msg.String()

		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.mixer.StopAll()
		case "l":
			if m.last != nil {
				m.last.SetLoop(!m.last.IsLooping())
			}
		case "+", "=":
			m.mixer.SetMasterVolume(m.mixer.MasterVolume() + 0.1)
		case "-":
			m.mixer.SetMasterVolume(m.mixer.MasterVolume() - 0.1)
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				if i := int(key[0] - '1'); i < len(m.pads) {
					m.pads[i].Play()
					m.last = m.pads[i]
				}
			}
		}
	}

	return m, nil
}

func (m padModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sndmix pad"))
	fmt.Fprintf(&b, "  master %.0f%%\n\n", m.mixer.MasterVolume()*100)

	for i, p := range m.pads {
		line := fmt.Sprintf("%d  %-24s %-8s loop=%-5v %s", i+1, p.Name(), p.State(), p.IsLooping(), p.Duration().Round(time.Millisecond))
		if p.IsPlaying() {
			b.WriteString(playingStyle.Render(line))
		} else {
			b.WriteString(idleStyle.Render(line))
		}
		b.WriteByte('\n')
	}

	stats := m.mixer.Stats()
	fmt.Fprintf(&b, "\nvoices %d  ticks %d\n", stats.Voices, stats.Ticks)
	b.WriteString(helpStyle.Render("1-9 play  s stop all  l loop last  +/- master  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func runPad(cfg config.Config, logger *zap.Logger, args []string) error {
	if len(args) == 0 {
		return errors.New("pad needs at least one sound")
	}

	if len(args) > maxPads {
		args = args[:maxPads]
	}

	m, st, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	model := padModel{mixer: m}
	for _, name := range args {
		inst, err := m.Load(st, name)
		if err != nil {
			return err
		}

		model.pads = append(model.pads, inst)
	}

	out, err := device.Open(m, cfg.SampleRate, logger.Named("device"))
	if err != nil {
		return err
	}
	defer out.Close()

	out.Start()

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("pad ui: %w", err)
	}

	return nil
}

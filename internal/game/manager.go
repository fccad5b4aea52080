package game

import (
	"image/color"
	"log"

	"chosenoffset.com/damselgrove/internal/config"
	"chosenoffset.com/damselgrove/internal/mapscanner"
	"chosenoffset.com/damselgrove/internal/render"
)

// State identifies which screen the manager is running.
type State int

const (
	StateTitle State = iota
	StatePlaying
)

// Manager handles the overall game state: the title screen with its map
// list, and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State

	Cfg      *config.Config
	Maps     []mapscanner.MapEntry
	Selected int

	Game     *Game
	Renderer render.Renderer
	InputMgr render.InputManager
}

// NewManager creates a new game manager starting on the title screen.
func NewManager(r render.Renderer, input render.InputManager, cfg *config.Config, maps []mapscanner.MapEntry) *Manager {
	return &Manager{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		State:        StateTitle,
		Cfg:          cfg,
		Maps:         maps,
		Renderer:     r,
		InputMgr:     input,
	}
}

// Update updates the current screen.
func (m *Manager) Update() error {
	switch m.State {
	case StateTitle:
		m.updateTitle()
	case StatePlaying:
		if m.Game == nil {
			m.State = StateTitle
			return nil
		}
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.Game = nil
			m.State = StateTitle
			return nil
		}
		return m.Game.Update()
	}
	return nil
}

func (m *Manager) updateTitle() {
	if m.InputMgr.IsKeyJustPressed(render.KeyUp) || m.InputMgr.IsKeyJustPressed(render.KeyW) {
		m.Selected--
		if m.Selected < 0 {
			m.Selected = len(m.Maps) - 1
		}
	}
	if m.InputMgr.IsKeyJustPressed(render.KeyDown) || m.InputMgr.IsKeyJustPressed(render.KeyS) {
		m.Selected++
		if m.Selected >= len(m.Maps) {
			m.Selected = 0
		}
	}

	if m.InputMgr.IsKeyJustPressed(render.KeyEnter) || m.InputMgr.IsKeyJustPressed(render.KeySpace) {
		entry := m.Maps[m.Selected]
		g, err := NewGame(m.Renderer, m.InputMgr, m.Cfg, entry.Path)
		if err != nil {
			log.Printf("Failed to load map %q: %v", entry.Name, err)
			return
		}
		m.Game = g
		m.State = StatePlaying
	}
}

// Draw draws the current screen.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateTitle:
		m.drawTitle(screen)
	case StatePlaying:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	}
}

func (m *Manager) drawTitle(screen render.Image) {
	screen.Fill(color.RGBA{16, 20, 32, 255})

	x := m.ScreenWidth/2 - 80
	y := m.ScreenHeight / 3
	m.Renderer.DrawText(screen, "D A M S E L G R O V E", x, y, color.White, 1.0)
	m.Renderer.DrawText(screen, "Arrows to choose a map, Enter to play", x-40, y+30, color.White, 1.0)

	for i, entry := range m.Maps {
		prefix := "  "
		if i == m.Selected {
			prefix = "> "
		}
		m.Renderer.DrawText(screen, prefix+entry.Name, x, y+60+i*20, color.White, 1.0)
	}
}

// Layout returns the logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

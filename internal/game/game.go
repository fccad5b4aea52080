package game

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"chosenoffset.com/damselgrove/internal/camera"
	"chosenoffset.com/damselgrove/internal/config"
	"chosenoffset.com/damselgrove/internal/dice"
	"chosenoffset.com/damselgrove/internal/entity"
	"chosenoffset.com/damselgrove/internal/gamestate"
	"chosenoffset.com/damselgrove/internal/render"
	"chosenoffset.com/damselgrove/internal/sheet"
	"chosenoffset.com/damselgrove/internal/sprite"
	"chosenoffset.com/damselgrove/internal/world"
)

// Game holds all in-level state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	WorldMap *world.Map
	Reg      *sprite.Registry
	Player   *entity.Player
	Damsels  []*entity.Damsel
	Cam      *camera.Camera
	Progress *gamestate.GameState

	Renderer render.Renderer
	InputMgr render.InputManager

	// UI state
	Messages []Message
}

// NewGame loads a map and its sheets, spawns the player and the damsels
// and wires the camera. Asset failures abort setup and are propagated.
func NewGame(r render.Renderer, input render.InputManager, cfg *config.Config, mapPath string) (*Game, error) {
	worldMap, err := world.LoadMap(mapPath, r)
	if err != nil {
		return nil, err
	}

	reg := sprite.NewRegistry()
	if _, err := worldMap.BuildTiles(reg, GroupVisible, GroupObstacles); err != nil {
		return nil, fmt.Errorf("failed to build terrain: %w", err)
	}

	sheetsDir := filepath.Join(cfg.DataDir, "sheets")
	playerSheet, err := sheet.Load(filepath.Join(sheetsDir, "player.json"), r)
	if err != nil {
		return nil, err
	}
	damselSheet, err := sheet.Load(filepath.Join(sheetsDir, "damsel.json"), r)
	if err != nil {
		return nil, err
	}

	spawn := worldMap.Data.PlayerSpawn
	player, err := entity.NewPlayer(reg, playerSheet, spawn.X, spawn.Y, cfg.PlayerSpeed, input,
		GroupObstacles, GroupFriendlies)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	roller := dice.NewRoller(rand.New(rand.NewSource(time.Now().UnixNano())))
	var damsels []*entity.Damsel
	for i, ds := range worldMap.Data.DamselSpawns {
		d, err := entity.NewDamsel(reg, damselSheet, ds.X, ds.Y, roller,
			GroupObstacles, GroupVisible, GroupDamsels, GroupFriendlies)
		if err != nil {
			return nil, fmt.Errorf("failed to create damsel %d: %w", i, err)
		}
		damsels = append(damsels, d)
	}

	g := &Game{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		WorldMap:     worldMap,
		Reg:          reg,
		Player:       player,
		Damsels:      damsels,
		Cam:          camera.New(cfg.ScreenWidth, cfg.ScreenHeight, player, reg, GroupVisible),
		Progress:     gamestate.New(),
		Renderer:     r,
		InputMgr:     input,
	}

	log.Printf("Loaded map %q: %d damsels to rescue", worldMap.Data.Name, len(damsels))
	return g, nil
}

// Update handles one tick of game logic: player input and movement,
// damsel behavior, the camera's inverse-motion pass, and rescue checks.
func (g *Game) Update() error {
	// Delta time for timers (assuming 60 FPS)
	dt := 1.0 / 60.0
	g.updateMessages(dt)

	g.Player.Update()

	for _, d := range g.Damsels {
		if d.Alive() {
			d.Update(GroupEnemies, GroupFriendlies)
		}
	}

	g.Cam.Update()
	g.checkRescues()

	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// checkRescues saves any damsel the player touches: the damsel leaves all
// its groups and the rescue counter advances.
func (g *Game) checkRescues() {
	for _, d := range g.Damsels {
		if !d.Alive() {
			continue
		}
		if !g.Player.Mover.Hitbox.Overlaps(d.Mover.Hitbox) {
			continue
		}

		d.Die()
		n := g.Progress.IncrementCounter(RescuedCounter, 1)
		g.ShowMessage(fmt.Sprintf("Damsel rescued! (%d/%d)", n, len(g.Damsels)))

		if n == len(g.Damsels) {
			g.Progress.SetFlag(AllRescuedFlag, true)
			g.ShowMessage("Everyone is safe!")
		}
	}
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	log.Printf("Message: %s", text)
}

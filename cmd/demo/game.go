package main

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/inputkit/ebitensource"
	"github.com/milk9111/inputkit/input"
	"github.com/milk9111/inputkit/profiles"
)

const eventLogSize = 18

// Game drives one input world and displays its live state: action values on
// the left, the transition event log on the right. Tab toggles the group
// panel, F2 copies the state dump to the clipboard, and edits to the
// profile on disk hot-reload the whole world.
type Game struct {
	profilePath string
	workers     int

	world   *input.World
	applied *profiles.Applied

	watcher *profiles.Watcher
	reload  bool

	eventLog []string
	overlay  *overlay
	face     ebtext.Face

	clipboardOK bool
}

func NewGame(profilePath string, workers int) (*Game, error) {
	g := &Game{
		profilePath: profilePath,
		workers:     workers,
		face:        ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if err := g.loadWorld(); err != nil {
		return nil, err
	}

	if watcher, err := profiles.NewWatcher("profiles", "profiles/scripts"); err == nil {
		g.watcher = watcher
	} else {
		fmt.Printf("demo: profile watching disabled: %v\n", err)
	}

	g.clipboardOK = clipboard.Init() == nil
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) loadWorld() error {
	data, err := profiles.Load(g.profilePath)
	if err != nil {
		return err
	}
	profile, err := profiles.Parse(data)
	if err != nil {
		return err
	}

	w := input.NewWorld()
	w.SetWorkers(g.workers)
	applied, err := profiles.Apply(w, profile, ebitensource.Builder())
	if err != nil {
		return err
	}

	g.world = w
	g.applied = applied
	g.overlay = newOverlay(w, applied)
	return nil
}

func (g *Game) Update() error {
	g.drainWatcher()
	if g.reload {
		g.reload = false
		if err := g.loadWorld(); err != nil {
			fmt.Printf("demo: profile reload failed: %v\n", err)
		} else {
			g.logLine("profile reloaded")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.overlay.visible = !g.overlay.visible
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) && g.clipboardOK {
		clipboard.Write(clipboard.FmtText, []byte(g.stateDump()))
	}

	g.world.Update(1.0 / float64(ebiten.TPS()))
	for _, evt := range g.world.Events().Drain() {
		if evt.Kind == input.EventUpdated {
			continue
		}
		g.logLine(fmt.Sprintf("%-14s %s (%.2f, %.2f, %.2f)", evt.Kind, evt.Name, evt.Value.X, evt.Value.Y, evt.Value.Z))
	}

	g.overlay.update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff})

	y := 16.0
	g.drawLine(screen, 16, y, "actions (Tab: groups, F2: copy state)")
	y += 20
	for _, name := range g.sortedActionNames() {
		id := g.applied.Actions[name]
		line := fmt.Sprintf("%-10s", name)
		if v, ok := g.world.LastValue(id); ok {
			line += fmt.Sprintf(" (%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
		} else {
			line += " (no value)"
		}
		g.drawLine(screen, 16, y, line)
		y += 16
	}

	y = 16
	for _, line := range g.eventLog {
		g.drawLine(screen, 480, y, line)
		y += 16
	}

	g.overlay.draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 960, 540
}

func (g *Game) drawLine(screen *ebiten.Image, x, y float64, line string) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, line, g.face, op)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case reload, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			fmt.Printf("demo: %s changed\n", reload.Path)
			g.reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			fmt.Printf("demo: watcher error: %v\n", err)
		default:
			return
		}
	}
}

func (g *Game) logLine(line string) {
	g.eventLog = append(g.eventLog, line)
	if len(g.eventLog) > eventLogSize {
		g.eventLog = g.eventLog[len(g.eventLog)-eventLogSize:]
	}
}

func (g *Game) sortedActionNames() []string {
	names := make([]string, 0, len(g.applied.Actions))
	for name := range g.applied.Actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *Game) sortedGroupNames() []string {
	names := make([]string, 0, len(g.applied.Groups))
	for name := range g.applied.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *Game) stateDump() string {
	var b strings.Builder
	for _, name := range g.sortedGroupNames() {
		id := g.applied.Groups[name]
		fmt.Fprintf(&b, "group %s enabled=%v\n", name, g.world.GroupEnabled(id))
	}
	for _, name := range g.sortedActionNames() {
		id := g.applied.Actions[name]
		if v, ok := g.world.LastValue(id); ok {
			fmt.Fprintf(&b, "action %s value=(%.3f, %.3f, %.3f)\n", name, v.X, v.Y, v.Z)
		} else {
			fmt.Fprintf(&b, "action %s value=none\n", name)
		}
	}
	return b.String()
}

package tui

import (
	"fmt"

	"typer3d/internal/entity"
	"typer3d/internal/scene"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// viewRadius is the world distance shown from the hub center to the map edge.
const viewRadius = 10

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTyped   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleAvatar  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleScenery = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// View draws scene state onto a screen.
type View struct {
	screen tcell.Screen
}

// NewView creates a view on screen.
func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// project maps a world point to a cell. +z is up the screen and +x is right; cells
// are twice as tall as wide.
func (v *View) project(p mgl32.Vec3) (x, y int) {
	w, h := v.screen.Size()
	cx, cy := w/2, h/2
	rows := float32(h-4) / 2 / viewRadius
	cols := rows * 2
	return cx + int(p.X()*cols), cy - int(p.Z()*rows)
}

// Draw renders one frame.
func (v *View) Draw(s *scene.Scene) {
	v.screen.Clear()
	fr := s.Snapshot()
	w, h := v.screen.Size()

	for _, d := range fr.Objects {
		x, y := v.project(d.Center)
		if x < 0 || y < 1 || x >= w || y >= h-1 {
			continue
		}
		switch d.Kind {
		case entity.KindAvatar:
			v.screen.SetContent(x, y, '@', nil, styleAvatar)
		case entity.KindEnemy:
			st := styleEnemy
			if d.Colliding {
				st = styleHit
			}
			v.screen.SetContent(x, y, 'B', nil, st)
		case entity.KindFriendlyProjectile, entity.KindEnemyProjectile:
			v.screen.SetContent(x, y, '*', nil, styleShot)
		case entity.KindNeutral:
			if d.CastsShadow {
				v.screen.SetContent(x, y, '#', nil, styleScenery)
			}
		}
	}

	for lane := 0; lane < entity.LaneCount; lane++ {
		e := s.EnemyInLane(lane)
		if e == nil || s.Word(lane) == "" {
			continue
		}
		x, y := v.project(e.Center())
		v.drawWord(x-len(s.Word(lane))/2, y+1, s.Word(lane), s.TypedIndex(lane))
	}

	hud := fr.HUD
	switch {
	case hud.GameOver, hud.Paused:
		v.drawString((w-len(hud.Text))/2, 0, hud.Text, styleBanner)
	default:
		v.drawWord((w-len(hud.Text))/2, 0, hud.Text, hud.Typed)
	}

	status := fmt.Sprintf("level %d  lane %d  F1 no-clip  2 pause  1 restart  Esc quit", fr.Level, fr.Lane)
	v.drawString(0, h-1, status, styleStatus)
	v.screen.Show()
}

func (v *View) drawWord(x, y int, word string, typed int) {
	for i, r := range word {
		st := styleText
		if i < typed {
			st = styleTyped
		}
		v.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (v *View) drawString(x, y int, s string, st tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, st)
	}
}

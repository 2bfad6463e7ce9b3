package main

import (
	"fmt"
	"image/color"

	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/Mairuzu0/Boost-Game/rocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const bannerScale = 4

type hudState struct {
	LevelIndex int
	LevelCount int
	LevelName  string
	State      rocket.State
	FPS        float64
	Frames     int
}

type hud struct {
	face text.Face
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) Draw(screen *ebiten.Image, s hudState) {
	label := fmt.Sprintf("Level %d/%d  %s", s.LevelIndex+1, s.LevelCount, s.LevelName)
	if common.DebugBuild {
		label += fmt.Sprintf("    FPS: %.1f  Frames: %d", s.FPS, s.Frames)
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, label, h.face, op)

	switch s.State {
	case rocket.Dying:
		h.banner(screen, "CRASHED", colornames.Orangered)
	case rocket.Succeeding:
		h.banner(screen, "LANDED", colornames.Gold)
	}
}

func (h *hud) banner(screen *ebiten.Image, msg string, clr color.Color) {
	const bandHeight = 90
	top := float32(common.BaseHeight/2 - bandHeight/2)
	vector.FillRect(screen, 0, top, common.BaseWidth, bandHeight, color.NRGBA{A: 140}, false)

	op := &text.DrawOptions{}
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(common.BaseWidth/2, common.BaseHeight/2-13*bannerScale/2)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, msg, h.face, op)
}

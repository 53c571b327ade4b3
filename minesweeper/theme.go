package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

type theme struct {
	name       string
	background color.Color
	light      color.Color // 凸起边框的亮边
	shadow     color.Color
	text       color.Color
	tint       ebiten.ColorScale // 贴图整体调色
}

var themes = map[string]*theme{
	"light": {
		name:       "light",
		background: color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
		light:      colornames.White,
		shadow:     colornames.Gray,
		text:       colornames.Black,
	},
	"dark": {
		name:       "dark",
		background: color.RGBA{R: 0x30, G: 0x30, B: 0x36, A: 0xff},
		light:      colornames.Dimgray,
		shadow:     color.RGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xff},
		text:       colornames.Lightgray,
		tint:       darkTint(),
	},
}

func darkTint() ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(0.6, 0.6, 0.68, 1)
	return cs
}

func lookupTheme(name string) (*theme, error) {
	if t, ok := themes[name]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

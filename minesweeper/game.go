package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jan-bar/LittleMine/atlas"
	"github.com/jan-bar/LittleMine/board"
	"github.com/jan-bar/LittleMine/session"
	"golang.org/x/image/font/basicfont"
)

type game struct {
	s     *session.Session
	sheet *sheet
	theme *theme
	font  text.Face

	// 输入的[宽 高 雷]数据
	input string
	// Layout 记录的窗口大小,在 Update 中处理
	outW, outH   int
	doneW, doneH int
}

func newGame(s *session.Session, sh *sheet, th *theme) *game {
	g := &game{
		s:     s,
		sheet: sh,
		theme: th,
		font:  text.NewGoXFace(basicfont.Face7x13),
	}
	g.fit()
	return g
}

var buttons = []struct {
	eb  ebiten.MouseButton
	btn session.Button
}{
	{ebiten.MouseButtonLeft, session.Left},
	{ebiten.MouseButtonRight, session.Right},
	{ebiten.MouseButtonMiddle, session.Middle},
}

// 难度模式: 初级,中级,高级,最大
var presets = []struct {
	key      ebiten.Key
	w, h, mc int
}{
	{ebiten.KeyB, 9, 9, 10},
	{ebiten.KeyI, 16, 16, 40},
	{ebiten.KeyE, 30, 16, 99},
	{-1, 30, 24, 99},
}

func (g *game) Update() error {
	if g.outW != g.doneW || g.outH != g.doneH {
		g.doneW, g.doneH = g.outW, g.outH
		if w, h := g.s.WindowSize(); g.outW != w || g.outH != h {
			g.s.Resize(g.outW, g.outH)
			g.fit()
		}
	}

	mx, my := ebiten.CursorPosition()
	g.s.MoveCursor(float64(mx), float64(my))
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.s.Press(b.btn)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.s.Release(b.btn)
		}
	}

	for _, p := range presets {
		if p.key >= 0 && inpututil.IsKeyJustReleased(p.key) {
			g.newGame(p.w, p.h, p.mc)
		}
	}

	switch {
	case inpututil.IsKeyJustReleased(ebiten.KeyUp):
		g.adjust(1)
	case inpututil.IsKeyJustReleased(ebiten.KeyDown):
		g.adjust(-1)
	case inpututil.IsKeyJustReleased(ebiten.KeyL):
		g.setTheme("light")
	case inpututil.IsKeyJustReleased(ebiten.KeyD):
		g.setTheme("dark")
	}

	g.entry()
	return nil
}

func (g *game) adjust(delta int) {
	if g.s.AdjustMines(delta) {
		g.prompt()
	}
}

func (g *game) setTheme(name string) {
	if t, err := lookupTheme(name); err == nil && t != g.theme {
		g.theme = t
		log.WithField("theme", name).Info("theme changed")
	}
}

func (g *game) newGame(w, h, mc int) {
	g.s.NewGame(w, h, mc)
	g.fit()
}

// fit 窗口大小对齐到整数个格子
func (g *game) fit() {
	w, h := g.s.WindowSize()
	g.outW, g.outH = w, h
	g.doneW, g.doneH = w, h
	ebiten.SetWindowSize(w, h)
	g.prompt()
}

func (g *game) prompt() {
	g.input = fmt.Sprintf("W:%d,H:%d,M:%d >", g.s.Width(), g.s.Height(), g.s.StartingMines())
}

var eKey = map[ebiten.Key]string{
	ebiten.KeyDigit0: "0",
	ebiten.KeyDigit1: "1",
	ebiten.KeyDigit2: "2",
	ebiten.KeyDigit3: "3",
	ebiten.KeyDigit4: "4",
	ebiten.KeyDigit5: "5",
	ebiten.KeyDigit6: "6",
	ebiten.KeyDigit7: "7",
	ebiten.KeyDigit8: "8",
	ebiten.KeyDigit9: "9",
	ebiten.KeySpace:  " ",

	ebiten.KeyBackspace:   "d", // 删除
	ebiten.KeyEnter:       "e", // 回车
	ebiten.KeyNumpadEnter: "e", // 回车
}

// 输入宽高的上限
const maxSide = 64

func (g *game) entry() {
	for k, v := range eKey {
		if !inpututil.IsKeyJustReleased(k) {
			continue
		}
		switch v {
		case "d":
			if i := len(g.input) - 1; g.input[i] != '>' {
				g.input = g.input[:i]
			}
		case "e":
			w, h, mc, ok := parseEntry(g.input[strings.IndexByte(g.input, '>')+1:])
			if !ok {
				log.WithField("input", g.input).Warn("invalid game size")
				g.prompt()
				return
			}
			g.newGame(w, h, mc)
			return
		default:
			g.input += v
		}
	}
}

// parseEntry 读取"宽 高 雷数",或单个数字1~4选择难度模式
func parseEntry(s string) (w, h, mc int, ok bool) {
	var p [3]int
	switch n, _ := fmt.Sscanf(s, "%d %d %d", &p[0], &p[1], &p[2]); n {
	case 3:
		w, h, mc = p[0], p[1], p[2]
		ok = w >= 1 && w <= maxSide && h >= 1 && h <= maxSide &&
			mc >= 0 && mc <= session.MaxMines(w, h)
	case 1:
		if i := p[0] - 1; i >= 0 && i < len(presets) {
			w, h, mc, ok = presets[i].w, presets[i].h, presets[i].mc, true
		}
	}
	return
}

// 顶部计数器区域
const hudY, hudH = 6, 36

func (g *game) Draw(screen *ebiten.Image) {
	th, l := g.theme, g.s.Layout()
	pw, ph := g.s.WindowSize()
	screen.Fill(th.background)

	// 顶部计数器区域和雷区的凹陷边框
	bw, bh := g.s.Width()*l.Cell, g.s.Height()*l.Cell
	g.bevel(screen, 0, 0, pw, ph, false)
	g.bevel(screen, l.Left-4, hudY, bw+8, hudH, true)
	g.bevel(screen, l.Left, l.Top, bw, bh, true)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale = th.tint
	atlas.Frame(g.s, func(x, y int, _ board.Tile, uv atlas.UV) {
		cx, cy := l.CellOrigin(x, y)
		op.GeoM.Reset()
		op.GeoM.Translate(float64(cx), float64(cy))
		screen.DrawImage(g.sheet.tile(uv), op)
	})

	hud := atlas.Counters(g.s)
	g.counter(screen, op, l.Left, hud.Mines)
	g.counter(screen, op, pw-l.Right-4-3*atlas.GlyphW, hud.Timer)

	fr := l.FaceRect(pw)
	op.GeoM.Reset()
	op.GeoM.Translate(float64(fr.Min.X), float64(fr.Min.Y))
	screen.DrawImage(g.sheet.face(hud.Face), op)

	// 显示输入的[宽 高 雷]数据
	to := &text.DrawOptions{}
	to.GeoM.Translate(float64(l.Left), float64(l.Top-13))
	to.ColorScale.ScaleWithColor(th.text)
	text.Draw(screen, g.input, g.font, to)
}

func (g *game) counter(screen *ebiten.Image, op *ebiten.DrawImageOptions, x int, glyphs [3]atlas.Glyph) {
	op.GeoM.Reset()
	op.GeoM.Translate(float64(x), hudY+6)
	for _, v := range glyphs {
		screen.DrawImage(g.sheet.glyph(v), op)
		op.GeoM.Translate(atlas.GlyphW, 0)
	}
}

// bevel 画凸起或凹陷的边框
func (g *game) bevel(screen *ebiten.Image, x, y, w, h int, sunken bool) {
	tl, br := g.theme.light, g.theme.shadow
	if sunken {
		tl, br = br, tl
	}
	x0, y0 := float32(x)-1, float32(y)-1
	x1, y1 := float32(x+w)+1, float32(y+h)+1
	vector.StrokeLine(screen, x0, y0, x1, y0, 2, tl, false)
	vector.StrokeLine(screen, x0, y0, x0, y1, 2, tl, false)
	vector.StrokeLine(screen, x0, y1, x1, y1, 2, br, false)
	vector.StrokeLine(screen, x1, y0, x1, y1, 2, br, false)
}

// Layout 只记录窗口大小,雷区在 Update 中调整
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return g.s.WindowSize()
}

package atlas

import (
	"github.com/jan-bar/LittleMine/board"
	"github.com/jan-bar/LittleMine/session"
)

// FrameView 绘制一帧需要的数据
type FrameView interface {
	View
	Board() *board.Board
	Face() session.Face
	MineCount() int
	Seconds() int
}

// Frame 按行遍历所有格子及其贴图
func Frame(v FrameView, f func(x, y int, t board.Tile, uv UV)) {
	b := v.Board()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			t := b.Get(x, y)
			f(x, y, t, Resolve(t, x, y, v))
		}
	}
}

// HUD 顶部的剩余雷数,计时器和笑脸
type HUD struct {
	Mines, Timer [3]Glyph
	Face         UV
}

// Counters 剩余雷数可能为负,插旗过多时显示负号
func Counters(v FrameView) HUD {
	return HUD{
		Mines: FormatCounter(v.MineCount()),
		Timer: FormatCounter(v.Seconds()),
		Face:  FaceUV(v.Face()),
	}
}

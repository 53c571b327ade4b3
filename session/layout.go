package session

import (
	"image"
	"math"
)

// Layout 界面像素布局,雷区四周留边,顶部为计数器和笑脸
type Layout struct {
	Cell   int // 格子宽高
	Left   int
	Top    int
	Right  int
	Bottom int

	FaceSize int // 笑脸按钮宽高
	FaceY    int
}

var DefaultLayout = Layout{
	Cell:     16,
	Left:     12,
	Top:      55,
	Right:    8,
	Bottom:   8,
	FaceSize: 24,
	FaceY:    16,
}

// WindowSize 雷区宽高对应的界面像素宽高
func (l Layout) WindowSize(w, h int) (int, int) {
	return l.Left + w*l.Cell + l.Right, l.Top + h*l.Cell + l.Bottom
}

// Dims 界面像素宽高最多能放下的雷区宽高,至少为1
func (l Layout) Dims(pw, ph int) (w, h int) {
	w = (pw - l.Left - l.Right) / l.Cell
	h = (ph - l.Top - l.Bottom) / l.Cell
	return max(w, 1), max(h, 1)
}

// CellAt 像素坐标所在的格子,结果可能在雷区外
func (l Layout) CellAt(px, py float64) (x, y int) {
	x = int(math.Floor((px - float64(l.Left)) / float64(l.Cell)))
	y = int(math.Floor((py - float64(l.Top)) / float64(l.Cell)))
	return
}

// CellOrigin 格子左上角像素坐标
func (l Layout) CellOrigin(x, y int) (int, int) {
	return l.Left + x*l.Cell, l.Top + y*l.Cell
}

// FaceRect 笑脸按钮在界面水平居中
func (l Layout) FaceRect(pw int) image.Rectangle {
	x := (pw - l.FaceSize) / 2
	return image.Rect(x, l.FaceY, x+l.FaceSize, l.FaceY+l.FaceSize)
}

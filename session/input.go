package session

import (
	"image"
	"math"
)

// Button 鼠标按键
type Button uint8

const (
	Left Button = iota
	Right
	Middle
)

// Face 笑脸按钮状态
type Face uint8

const (
	FaceNormal Face = iota
	// FacePressed 在笑脸上按住左键
	FacePressed
	FaceDead
	FaceWin
	// FaceSurprised 在雷区按住左键
	FaceSurprised
)

// MoveCursor 记录鼠标像素坐标
func (s *Session) MoveCursor(px, py float64) {
	s.mouseX, s.mouseY = px, py
}

// CursorCell 鼠标所在格子,不在雷区内时返回false
func (s *Session) CursorCell() (x, y int, ok bool) {
	x, y = s.layout.CellAt(s.mouseX, s.mouseY)
	return x, y, s.board.In(x, y)
}

func (s *Session) overFace() bool {
	pw, _ := s.WindowSize()
	pt := image.Pt(int(math.Floor(s.mouseX)), int(math.Floor(s.mouseY)))
	return pt.In(s.layout.FaceRect(pw))
}

// Press 右键插旗,中键翻开周围,左键只记录按住状态
func (s *Session) Press(b Button) {
	switch b {
	case Left:
		s.held = true
	case Right:
		if x, y, ok := s.CursorCell(); ok {
			s.Flag(x, y)
		}
	case Middle:
		if x, y, ok := s.CursorCell(); ok {
			s.Chord(x, y)
		}
	}
}

// Release 左键松开时翻开格子,在笑脸位置松开则重新开局
func (s *Session) Release(b Button) {
	if b != Left {
		return
	}
	s.held = false

	if x, y, ok := s.CursorCell(); ok {
		s.Reveal(x, y)
	} else if s.overFace() {
		s.Reset()
	}
}

// Face 笑脸状态,按住笑脸优先,其次是输赢
func (s *Session) Face() Face {
	switch {
	case s.held && s.overFace():
		return FacePressed
	case s.state == Lost:
		return FaceDead
	case s.state == Won:
		return FaceWin
	}
	if _, _, ok := s.CursorCell(); ok && s.held {
		return FaceSurprised
	}
	return FaceNormal
}

// Package atlas 把雷区和计数器映射到贴图坐标
//
// 贴图是竖排的素材条,坐标为像素坐标.
package atlas

import (
	"fmt"

	"github.com/jan-bar/LittleMine/session"
)

// UV 贴图左上角像素坐标
type UV struct {
	U, V int
}

const (
	SpriteSize = 16 // 格子贴图宽高
	spriteRows = 16 // 第1列素材条的贴图数

	GlyphW    = 13 // 计数器数字宽
	GlyphH    = 23
	glyphRows = 12

	FaceSize = 24
	faceRows = 5
)

// Sprite 格子贴图,0~15 与素材条序号一致,其余是生成的悬停贴图
type Sprite uint8

// 1~8 为数字,使用 Digit
const (
	Blank           Sprite = 0
	QuestionPressed Sprite = iota + 8
	MineSprite
	WrongFlag
	Detonated
	Question
	Flag
	Unrevealed
	// Hover 悬停在未打开格子上
	Hover
	// HoverFlag 悬停在插旗格子上
	HoverFlag
	// Pressed 按住左键,和空白格子相同
	Pressed
)

// Digit 周围雷数1~8对应的贴图
func Digit(n int) Sprite {
	if n < 1 || n > 8 {
		panic(fmt.Sprintf("atlas: no digit sprite for %d", n))
	}
	return Sprite(n)
}

func (s Sprite) UV() UV {
	switch {
	case s < spriteRows:
		return UV{0, (spriteRows - 1 - int(s)) * SpriteSize}
	case s == Hover:
		return UV{SpriteSize, 0}
	case s == HoverFlag:
		return UV{SpriteSize, SpriteSize}
	case s == Pressed:
		return Blank.UV()
	}
	panic(fmt.Sprintf("atlas: unknown sprite %d", uint8(s)))
}

// Glyph 计数器字符,0~9 为数字
type Glyph uint8

const (
	GlyphBlank Glyph = 10
	GlyphMinus Glyph = 11
)

func (g Glyph) UV() UV {
	if g >= glyphRows {
		panic(fmt.Sprintf("atlas: unknown glyph %d", uint8(g)))
	}
	return UV{0, (glyphRows - 1 - int(g)) * GlyphH}
}

// FormatCounter 3位计数器,超出[-99,999]时截断,负数最左边为负号
func FormatCounter(n int) [3]Glyph {
	n = min(max(n, -99), 999)
	var g [3]Glyph
	s := fmt.Sprintf("%3d", n)
	for i := range g {
		switch c := s[i]; c {
		case ' ':
			g[i] = GlyphBlank
		case '-':
			g[i] = GlyphMinus
		default:
			g[i] = Glyph(c - '0')
		}
	}
	return g
}

// 笑脸素材条序号
var faceIndex = [...]int{
	session.FaceNormal:    0,
	session.FacePressed:   4,
	session.FaceDead:      2,
	session.FaceWin:       3,
	session.FaceSurprised: 1,
}

// FaceUV 笑脸按钮贴图
func FaceUV(f session.Face) UV {
	if int(f) >= len(faceIndex) {
		panic(fmt.Sprintf("atlas: unknown face %d", uint8(f)))
	}
	return UV{0, (faceRows - 1 - faceIndex[f]) * FaceSize}
}

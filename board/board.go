// Package board 扫雷盘面: 按行存储的压缩格子,布雷,翻开(非递归洪水填充),插旗
package board

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Board 雷区,左上角为原点,按行存储
type Board struct {
	w, h  int
	tiles []Tile
	// 尚未打开的非雷格子数,为0时赢
	left   int
	placed bool
	rnd    *rand.Rand
}

// Point 格子坐标
type Point struct{ X, Y int }

// New 创建全0的雷区
func New(width, height int) *Board {
	return NewWithRand(width, height, nil)
}

// NewWithRand 使用指定随机数布雷,rnd为nil时使用全局随机数
func NewWithRand(width, height int, rnd *rand.Rand) *Board {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("board: invalid size %dx%d", width, height))
	}
	return &Board{
		w:     width,
		h:     height,
		tiles: make([]Tile, width*height),
		left:  width * height,
		rnd:   rnd,
	}
}

func (b *Board) Width() int  { return b.w }
func (b *Board) Height() int { return b.h }

// TilesLeft 为0表示所有非雷格子都已打开
func (b *Board) TilesLeft() int { return b.left }

// Placed 是否已经布雷
func (b *Board) Placed() bool { return b.placed }

// In 判断坐标是否在雷区内
func (b *Board) In(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

func (b *Board) index(x, y int) int {
	if !b.In(x, y) {
		panic(fmt.Sprintf("board: (%d,%d) out of range %dx%d", x, y, b.w, b.h))
	}
	return y*b.w + x
}

func (b *Board) Get(x, y int) Tile { return b.tiles[b.index(x, y)] }

func (b *Board) Set(x, y int, t Tile) { b.tiles[b.index(x, y)] = t }

// Clear 所有格子清0,尺寸不变
func (b *Board) Clear() {
	for i := range b.tiles {
		b.tiles[i] = 0
	}
	b.left = b.w * b.h
	b.placed = false
}

var aroundPos = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbours [x,y]周围合法的8个位置
func (b *Board) Neighbours(x, y int, f func(x, y int)) {
	for _, p := range aroundPos {
		if nx, ny := x+p.X, y+p.Y; b.In(nx, ny) {
			f(nx, ny)
		}
	}
}

// Flag 切换插旗,返回剩余雷数的变化量: 插旗-1,取消+1,已打开的格子返回0
func (b *Board) Flag(x, y int) int {
	i := b.index(x, y)
	t := b.tiles[i]
	if t.Revealed() {
		return 0
	}
	b.tiles[i] = t ^ tileFlag
	if t.Flagged() {
		return 1
	}
	return -1
}

// Bytes 按行拷贝所有格子的原始字节
func (b *Board) Bytes() []byte {
	r := make([]byte, len(b.tiles))
	for i, t := range b.tiles {
		r[i] = byte(t)
	}
	return r
}

// String 调试输出: '#'未打开,'F'旗子,'*'雷,'.'空白,数字为周围雷数
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			sb.WriteByte(b.Get(x, y).debugChar())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Layout 不关心是否打开的完整布局,布雷结果调试用
func (b *Board) Layout() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			sb.WriteByte(((b.Get(x, y) | tileRevealed) &^ tileFlag).debugChar())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (t Tile) debugChar() byte {
	switch {
	case t.Flagged():
		return 'F'
	case !t.Revealed():
		return '#'
	}
	switch t.Kind() {
	case Mine:
		return '*'
	case Number:
		return byte('0' + t.Adjacent())
	}
	return '.'
}

package board

import (
	"fmt"
	"math/rand/v2"
)

func (b *Board) intN(n int) int {
	if b.rnd != nil {
		return b.rnd.IntN(n)
	}
	return rand.IntN(n)
}

// Avoided 判断[x,y]是否在首次点击位置的3x3范围内(切比雪夫距离<=1)
func Avoided(x, y, avoidX, avoidY int) bool {
	return abs(x-avoidX) <= 1 && abs(y-avoidY) <= 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Capacity 首次点击[avoidX,avoidY]时最多能布多少个雷
func (b *Board) Capacity(avoidX, avoidY int) int {
	n := b.w * b.h
	for y := avoidY - 1; y <= avoidY+1; y++ {
		for x := avoidX - 1; x <= avoidX+1; x++ {
			if b.In(x, y) {
				n--
			}
		}
	}
	return n
}

// PlaceMines 随机布count个雷,避开[avoidX,avoidY]及其周围8格
//
// 每个雷周围的非雷格子周围雷数加1,空白格子变成数字1.
// 随机位置重复或落在避让范围内就重新取,count不能超过 Capacity.
func (b *Board) PlaceMines(count, avoidX, avoidY int) {
	if b.placed {
		panic("board: mines already placed")
	}
	if c := b.Capacity(avoidX, avoidY); count < 0 || count > c {
		panic(fmt.Sprintf("board: cannot place %d mines on %dx%d avoiding (%d,%d), capacity %d",
			count, b.w, b.h, avoidX, avoidY, c))
	}

	for i := 0; i < count; {
		x, y := b.intN(b.w), b.intN(b.h)
		if Avoided(x, y, avoidX, avoidY) {
			continue
		}
		if b.Get(x, y).Kind() == Mine {
			continue
		}
		b.addMine(x, y)
		i++
	}

	b.left -= count
	b.placed = true
}

// addMine [x,y]放一个雷,周围的非雷格子周围雷数加1,保留已插的旗
func (b *Board) addMine(x, y int) {
	b.Set(x, y, b.Get(x, y)&tileFlag|mineTile())

	b.Neighbours(x, y, func(nx, ny int) {
		nt := b.Get(nx, ny)
		switch nt.Kind() {
		case Empty:
			b.Set(nx, ny, nt&tileFlag|numberTile(1))
		case Mine: // 已经是雷
		case Number:
			adj := nt.Adjacent() + 1
			if adj > MaxAdjacent {
				panic(fmt.Sprintf("board: adjacent count %d at (%d,%d) tile %s", adj, nx, ny, nt))
			}
			b.Set(nx, ny, nt&tileFlag|numberTile(adj))
		default:
			panic(fmt.Sprintf("board: impossible tile %s at (%d,%d)", nt, nx, ny))
		}
	})
}

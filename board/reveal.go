package board

import "fmt"

// Outcome 翻开一个格子的结果
type Outcome uint8

const (
	NoOp    Outcome = iota // 已打开或已插旗
	Cleared                // 打开了至少1个格子
	HitMine                // 踩雷
)

func (o Outcome) String() string {
	switch o {
	case NoOp:
		return "noop"
	case Cleared:
		return "cleared"
	case HitMine:
		return "hit mine"
	}
	return fmt.Sprintf("outcome(%d)", uint8(o))
}

// Reveal 翻开[x,y],返回结果以及本次新打开的格子数
//
// 踩雷时格子保持原样,由调用方记录死亡位置.
// 空白格子使用显式栈展开整个连通区域,大雷区不会栈溢出.
func (b *Board) Reveal(x, y int) (Outcome, int) {
	t := b.Get(x, y)
	if t.Flagged() || t.Revealed() {
		return NoOp, 0
	}

	switch t.Kind() {
	case Mine:
		return HitMine, 0
	case Number:
		b.open(x, y, t)
		return Cleared, 1
	case Empty:
		return Cleared, b.flood(x, y, t)
	}
	panic(fmt.Sprintf("board: impossible tile %s at (%d,%d)", t, x, y))
}

func (b *Board) open(x, y int, t Tile) {
	if t.Kind() == Number && (t.Adjacent() == 0 || t.Adjacent() > MaxAdjacent) {
		panic(fmt.Sprintf("board: number tile %s at (%d,%d) has invalid adjacent count", t, x, y))
	}
	b.Set(x, y, t|tileRevealed)
	b.left--
}

func (b *Board) flood(x, y int, t Tile) int {
	b.open(x, y, t)
	n := 1

	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.Neighbours(p.X, p.Y, func(nx, ny int) {
			nt := b.Get(nx, ny)
			if nt.Revealed() {
				return
			}
			if nt.Kind() == Mine {
				panic(fmt.Sprintf("board: empty tile (%d,%d) borders mine %s at (%d,%d)",
					p.X, p.Y, nt, nx, ny))
			}
			if nt.Flagged() {
				return // 插旗的格子不自动打开
			}

			b.open(nx, ny, nt)
			n++
			if nt.Kind() == Empty {
				stack = append(stack, Point{nx, ny})
			}
		})
	}
	return n
}

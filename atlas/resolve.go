package atlas

import (
	"fmt"

	"github.com/jan-bar/LittleMine/board"
	"github.com/jan-bar/LittleMine/session"
)

// View 计算贴图需要的一局游戏的只读状态, *session.Session 实现了该接口
type View interface {
	State() session.State
	DeathPosition() (board.Point, bool)
	CursorCell() (x, y int, ok bool)
	MouseHeld() bool
	TilesLeft() int
}

// Resolve 计算[x,y]格子的贴图,按顺序匹配:
//  1. 输了: 踩到的雷,其余的雷(不管是否插旗),插错的旗
//  2. 鼠标悬停
//  3. 格子本身的状态
func Resolve(t board.Tile, x, y int, v View) UV {
	return resolve(t, x, y, v).UV()
}

func resolve(t board.Tile, x, y int, v View) Sprite {
	if t.Flagged() && t.Revealed() {
		panic(fmt.Sprintf("atlas: tile %s at (%d,%d) is flagged and revealed", t, x, y))
	}

	state := v.State()
	if state == session.Lost {
		if death, _ := v.DeathPosition(); death == (board.Point{X: x, Y: y}) {
			if t.Kind() != board.Mine {
				panic(fmt.Sprintf("atlas: death position (%d,%d) is not a mine: %s", x, y, t))
			}
			return Detonated
		}
		switch {
		case t.Kind() == board.Mine:
			return MineSprite
		case t.Flagged():
			return WrongFlag
		}
	}

	if cx, cy, ok := v.CursorCell(); ok && cx == x && cy == y &&
		!state.Terminal() && v.TilesLeft() != 0 {
		switch {
		case t.Flagged():
			return HoverFlag
		case !t.Revealed():
			if v.MouseHeld() {
				return Pressed
			}
			return Hover
		}
	}

	switch {
	case t.Flagged():
		return Flag
	case !t.Revealed():
		return Unrevealed
	}

	switch t.Kind() {
	case board.Empty:
		return Blank
	case board.Number:
		if n := t.Adjacent(); n < 1 || n > board.MaxAdjacent {
			panic(fmt.Sprintf("atlas: number tile %s at (%d,%d) has adjacent count %d", t, x, y, n))
		}
		return Digit(t.Adjacent())
	case board.Mine:
		panic(fmt.Sprintf("atlas: revealed mine %s at (%d,%d) while %s", t, x, y, state))
	}
	panic(fmt.Sprintf("atlas: impossible tile %s at (%d,%d)", t, x, y))
}

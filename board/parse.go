package board

import (
	"fmt"
	"strings"
)

// Parse 解析 Layout 输出的布局,得到已布雷且全部未打开的雷区
//
// '*'为雷,'.'为空白,数字必须和雷的位置一致.
func Parse(layout string) (*Board, error) {
	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("board: empty layout")
	}

	b := New(w, len(rows))
	mines := 0
	for y, r := range rows {
		if len(r) != w {
			return nil, fmt.Errorf("board: row %d has width %d, want %d", y, len(r), w)
		}
		for x := 0; x < w; x++ {
			switch c := r[x]; {
			case c == '*':
				b.addMine(x, y)
				mines++
			case c == '.', c >= '1' && c <= '8':
			default:
				return nil, fmt.Errorf("board: invalid char %q at (%d,%d)", c, x, y)
			}
		}
	}

	for y, r := range rows {
		for x := 0; x < w; x++ {
			c, t := r[x], b.Get(x, y)
			switch {
			case c == '*':
			case c == '.' && t.Kind() == Empty:
			case c != '.' && t.Kind() == Number && t.Adjacent() == int(c-'0'):
			default:
				return nil, fmt.Errorf("board: (%d,%d) is %q but has %d adjacent mines", x, y, c, t.Adjacent())
			}
		}
	}

	b.left -= mines
	b.placed = true
	return b, nil
}

package atlas

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jan-bar/LittleMine/board"
	"github.com/jan-bar/LittleMine/session"
	"github.com/sirupsen/logrus/hooks/test"
)

type view struct {
	state  session.State
	death  board.Point
	cx, cy int
	cursor bool
	held   bool
	left   int
}

func (v view) State() session.State { return v.state }
func (v view) DeathPosition() (board.Point, bool) {
	return v.death, v.state == session.Lost
}
func (v view) CursorCell() (int, int, bool) { return v.cx, v.cy, v.cursor }
func (v view) MouseHeld() bool              { return v.held }
func (v view) TilesLeft() int               { return v.left }

func tile(f board.Fields) board.Tile { return board.Tile(board.Encode(f)) }

var (
	hidden     = tile(board.Fields{})
	flagged    = tile(board.Fields{Flagged: true})
	blank      = tile(board.Fields{Revealed: true})
	three      = tile(board.Fields{Revealed: true, Kind: board.Number, Adjacent: 3})
	eight      = tile(board.Fields{Revealed: true, Kind: board.Number, Adjacent: 8})
	hiddenNum  = tile(board.Fields{Kind: board.Number, Adjacent: 2})
	mine       = tile(board.Fields{Kind: board.Mine})
	flagMine   = tile(board.Fields{Flagged: true, Kind: board.Mine})
	flagNumber = tile(board.Fields{Flagged: true, Kind: board.Number, Adjacent: 1})
)

func expectPanic(t *testing.T, contains string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		if msg, _ := r.(string); !strings.Contains(msg, contains) {
			t.Fatalf("panic %v does not contain %q", r, contains)
		}
	}()
	f()
}

func TestSpriteUV(t *testing.T) {
	tests := []struct {
		s    Sprite
		want UV
	}{
		{Blank, UV{0, 240}},
		{Digit(1), UV{0, 224}},
		{Digit(8), UV{0, 112}},
		{QuestionPressed, UV{0, 96}},
		{MineSprite, UV{0, 80}},
		{WrongFlag, UV{0, 64}},
		{Detonated, UV{0, 48}},
		{Question, UV{0, 32}},
		{Flag, UV{0, 16}},
		{Unrevealed, UV{0, 0}},
		{Hover, UV{16, 0}},
		{HoverFlag, UV{16, 16}},
		{Pressed, UV{0, 240}},
	}
	for _, tt := range tests {
		if got := tt.s.UV(); got != tt.want {
			t.Errorf("sprite %d UV = %v, want %v", tt.s, got, tt.want)
		}
	}
	expectPanic(t, "unknown sprite", func() { Sprite(Pressed + 1).UV() })
	expectPanic(t, "no digit sprite for 0", func() { Digit(0) })
	expectPanic(t, "no digit sprite for 9", func() { Digit(9) })
}

func TestGlyphAndFaceUV(t *testing.T) {
	glyphs := []struct {
		g    Glyph
		want UV
	}{
		{0, UV{0, 253}},
		{9, UV{0, 46}},
		{GlyphBlank, UV{0, 23}},
		{GlyphMinus, UV{0, 0}},
	}
	for _, tt := range glyphs {
		if got := tt.g.UV(); got != tt.want {
			t.Errorf("glyph %d UV = %v, want %v", tt.g, got, tt.want)
		}
	}
	expectPanic(t, "unknown glyph", func() { Glyph(12).UV() })

	faces := []struct {
		f    session.Face
		want UV
	}{
		{session.FaceNormal, UV{0, 96}},
		{session.FaceSurprised, UV{0, 72}},
		{session.FaceDead, UV{0, 48}},
		{session.FaceWin, UV{0, 24}},
		{session.FacePressed, UV{0, 0}},
	}
	for _, tt := range faces {
		if got := FaceUV(tt.f); got != tt.want {
			t.Errorf("face %d UV = %v, want %v", tt.f, got, tt.want)
		}
	}
	expectPanic(t, "unknown face", func() { FaceUV(session.Face(9)) })
}

func TestFormatCounter(t *testing.T) {
	const b, m = GlyphBlank, GlyphMinus
	tests := []struct {
		n    int
		want [3]Glyph
	}{
		{0, [3]Glyph{b, b, 0}},
		{7, [3]Glyph{b, b, 7}},
		{42, [3]Glyph{b, 4, 2}},
		{999, [3]Glyph{9, 9, 9}},
		{1000, [3]Glyph{9, 9, 9}},
		{-1, [3]Glyph{b, m, 1}},
		{-42, [3]Glyph{m, 4, 2}},
		{-150, [3]Glyph{m, 9, 9}},
	}
	for _, tt := range tests {
		if got := FormatCounter(tt.n); got != tt.want {
			t.Errorf("FormatCounter(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	playing := view{state: session.InProgress, left: 10}
	hover := playing
	hover.cursor, hover.cx, hover.cy = true, 1, 1
	held := hover
	held.held = true
	lost := view{state: session.Lost, death: board.Point{X: 1, Y: 1}, left: 10}
	lost.cursor, lost.cx, lost.cy = true, 1, 1
	won := view{state: session.Won, cursor: true, cx: 1, cy: 1}
	notStarted := view{state: session.NotStarted, left: 81, cursor: true, cx: 1, cy: 1}
	lastTile := hover
	lastTile.left = 0

	tests := []struct {
		name string
		t    board.Tile
		x, y int
		v    view
		want Sprite
	}{
		{"hidden", hidden, 0, 0, playing, Unrevealed},
		{"hidden number", hiddenNum, 0, 0, playing, Unrevealed},
		{"hidden mine", mine, 0, 0, playing, Unrevealed},
		{"flag", flagged, 0, 0, playing, Flag},
		{"blank", blank, 0, 0, playing, Blank},
		{"number", three, 0, 0, playing, Digit(3)},
		{"eight", eight, 0, 0, playing, Digit(8)},

		{"hover", hidden, 1, 1, hover, Hover},
		{"hover number", hiddenNum, 1, 1, hover, Hover},
		{"hover flag", flagged, 1, 1, hover, HoverFlag},
		{"hover revealed", three, 1, 1, hover, Digit(3)},
		{"hover other cell", hidden, 0, 1, hover, Unrevealed},
		{"pressed", hidden, 1, 1, held, Pressed},
		{"pressed flag", flagged, 1, 1, held, HoverFlag},
		{"hover before start", hidden, 1, 1, notStarted, Hover},
		{"no hover without tiles left", hidden, 1, 1, lastTile, Unrevealed},

		{"detonated", mine, 1, 1, lost, Detonated},
		{"exposed mine", mine, 0, 0, lost, MineSprite},
		{"flagged mine exposed", flagMine, 0, 0, lost, MineSprite},
		{"wrong flag", flagged, 0, 0, lost, WrongFlag},
		{"wrong flag number", flagNumber, 0, 0, lost, WrongFlag},
		{"lost hidden", hidden, 0, 0, lost, Unrevealed},
		{"lost number", three, 0, 0, lost, Digit(3)},

		{"won mine", mine, 1, 1, won, Unrevealed},
		{"won flagged mine", flagMine, 0, 0, won, Flag},
		{"won number", three, 0, 0, won, Digit(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.t, tt.x, tt.y, tt.v); got != tt.want.UV() {
				t.Fatalf("Resolve = %v, want %v", got, tt.want.UV())
			}
		})
	}
}

func TestResolvePanics(t *testing.T) {
	playing := view{state: session.InProgress, left: 10}
	zero := tile(board.Fields{Revealed: true, Kind: board.Number})
	revealedMine := tile(board.Fields{Revealed: true, Kind: board.Mine})
	both := tile(board.Fields{Flagged: true, Revealed: true})
	badKind := tile(board.Fields{Revealed: true, Kind: 3})
	lost := view{state: session.Lost, death: board.Point{X: 2, Y: 3}}

	expectPanic(t, "(4,5) has adjacent count 0", func() { Resolve(zero, 4, 5, playing) })
	expectPanic(t, "revealed mine", func() { Resolve(revealedMine, 0, 0, playing) })
	expectPanic(t, "flagged and revealed", func() { Resolve(both, 0, 0, playing) })
	expectPanic(t, "impossible tile", func() { Resolve(badKind, 0, 0, playing) })
	expectPanic(t, "death position (2,3) is not a mine", func() { Resolve(hidden, 2, 3, lost) })
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	log, _ := test.NewNullLogger()
	return session.New(9, 9, 10,
		session.WithLogger(log),
		session.WithRand(rand.New(rand.NewPCG(3, 4))),
	)
}

func TestFrame(t *testing.T) {
	s := newSession(t)
	s.Reveal(4, 4)

	seen := make(map[board.Point]bool)
	var last board.Point
	n := 0
	Frame(s, func(x, y int, tile board.Tile, uv UV) {
		p := board.Point{X: x, Y: y}
		if seen[p] {
			t.Fatalf("(%d,%d) visited twice", x, y)
		}
		if n > 0 && (y < last.Y || y == last.Y && x <= last.X) {
			t.Fatalf("(%d,%d) visited after (%d,%d)", x, y, last.X, last.Y)
		}
		if tile != s.Board().Get(x, y) {
			t.Fatalf("(%d,%d) tile %s, want %s", x, y, tile, s.Board().Get(x, y))
		}
		if uv != Resolve(tile, x, y, s) {
			t.Fatalf("(%d,%d) uv %v", x, y, uv)
		}
		seen[p], last = true, p
		n++
	})
	if n != 81 {
		t.Fatalf("Frame visited %d cells, want 81", n)
	}
}

func TestCounters(t *testing.T) {
	s := newSession(t)
	hud := Counters(s)
	if want := [3]Glyph{GlyphBlank, 1, 0}; hud.Mines != want {
		t.Fatalf("mines = %v, want %v", hud.Mines, want)
	}
	if want := [3]Glyph{GlyphBlank, GlyphBlank, 0}; hud.Timer != want {
		t.Fatalf("timer = %v, want %v", hud.Timer, want)
	}
	if hud.Face != FaceUV(session.FaceNormal) {
		t.Fatalf("face = %v", hud.Face)
	}

	for _, p := range []board.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}} {
		s.Flag(p.X, p.Y)
	}
	if want := [3]Glyph{GlyphBlank, GlyphMinus, 2}; Counters(s).Mines != want {
		t.Fatalf("mines = %v, want %v", Counters(s).Mines, want)
	}
}

func TestCountersAfterWin(t *testing.T) {
	log, _ := test.NewNullLogger()
	// 4x4 去掉首次点击的3x3范围,剩余7格全是雷
	s := session.New(4, 4, 7, session.WithLogger(log))
	s.Reveal(1, 1)
	if s.State() != session.Won {
		t.Fatalf("state = %s, want won", s.State())
	}
	if want := [3]Glyph{GlyphBlank, GlyphBlank, 7}; Counters(s).Mines != want {
		t.Fatalf("mines = %v, want %v", Counters(s).Mines, want)
	}
	mines := 0
	Frame(s, func(x, y int, tile board.Tile, uv UV) {
		if tile.Kind() != board.Mine {
			return
		}
		mines++
		if uv != Unrevealed.UV() {
			t.Fatalf("mine (%d,%d) uv %v after win", x, y, uv)
		}
	})
	if mines != 7 {
		t.Fatalf("%d mines, want 7", mines)
	}
}

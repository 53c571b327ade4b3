// Package session 一局扫雷的状态: 计时,剩余雷数,输赢,首次点击时才布雷
package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jan-bar/LittleMine/board"
	"github.com/sirupsen/logrus"
)

// State 一局游戏的状态,输赢后只能重新开始
type State uint8

const (
	NotStarted State = iota
	InProgress
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Terminal 已经分出输赢
func (s State) Terminal() bool { return s == Won || s == Lost }

type Session struct {
	board  *board.Board
	layout Layout
	clock  Clock
	rnd    *rand.Rand
	log    logrus.FieldLogger

	// 显示的剩余雷数,插旗过多时为负数
	mines         int
	startingMines int

	// 设置的雷数,雷区太小放不下时 startingMines 会被截断
	wantMines int

	state  State
	death  board.Point // state 为 Lost 时有效
	start  time.Time
	finish time.Duration // state 为 Won/Lost 时有效

	mouseX, mouseY float64
	held           bool
}

type Option func(*Session)

func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

// WithRand 固定随机数,便于复现布雷
func WithRand(r *rand.Rand) Option { return func(s *Session) { s.rnd = r } }

func WithLogger(l logrus.FieldLogger) Option { return func(s *Session) { s.log = l } }

func WithLayout(l Layout) Option { return func(s *Session) { s.layout = l } }

// New 开局初始数据,此时还没有布雷
func New(width, height, mines int, opts ...Option) *Session {
	s := &Session{
		layout: DefaultLayout,
		clock:  SystemClock,
		log:    logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(s)
	}
	s.NewGame(width, height, mines)
	return s
}

// MaxMines 首次点击的3x3范围内不布雷,因此最多 w*h-9 个雷
func MaxMines(width, height int) int {
	return max(width*height-9, 0)
}

// NewGame 按新的宽高和雷数重新开局
func (s *Session) NewGame(width, height, mines int) {
	width, height = max(width, 1), max(height, 1)
	s.wantMines = max(mines, 0)
	s.startingMines = min(s.wantMines, MaxMines(width, height))
	s.board = board.NewWithRand(width, height, s.rnd)
	s.reset()
}

// Reset 保持宽高和雷数,重新开局
func (s *Session) Reset() {
	s.board = board.NewWithRand(s.board.Width(), s.board.Height(), s.rnd)
	s.reset()
}

func (s *Session) reset() {
	s.mines = s.startingMines
	s.state = NotStarted
	s.death = board.Point{}
	s.start = time.Time{}
	s.finish = 0

	s.log.WithFields(logrus.Fields{
		"width":  s.board.Width(),
		"height": s.board.Height(),
		"mines":  s.startingMines,
	}).Debug("new game")
}

// AdjustMines 增减雷数并重新开局,超出范围时不做任何操作
func (s *Session) AdjustMines(delta int) bool {
	n := s.startingMines + delta
	if n < 0 || n > MaxMines(s.board.Width(), s.board.Height()) {
		return false
	}
	s.startingMines, s.wantMines = n, n
	s.Reset()
	return true
}

// Resize 界面大小改变,按能放下的格子数重新开局,当前这局直接丢弃
//
// 雷数按设置的雷数重新截断,窗口缩小再放大后恢复原来的雷数.
func (s *Session) Resize(pw, ph int) (width, height int) {
	width, height = s.layout.Dims(pw, ph)
	s.log.WithFields(logrus.Fields{
		"pixels": fmt.Sprintf("%dx%d", pw, ph),
		"width":  width,
		"height": height,
	}).Info("resized")
	s.NewGame(width, height, s.wantMines)
	return
}

func (s *Session) playable(x, y int) bool {
	return !s.state.Terminal() && s.board.In(x, y)
}

// begin 首次翻开时才布雷,避开点击位置及其周围
func (s *Session) begin(x, y int) {
	if s.state != NotStarted {
		return
	}
	s.board.PlaceMines(s.startingMines, x, y)
	s.start = s.clock.Now()
	s.state = InProgress

	s.log.WithFields(logrus.Fields{
		"width":  s.board.Width(),
		"height": s.board.Height(),
		"mines":  s.startingMines,
		"x":      x,
		"y":      y,
	}).Info("game started")
}

// Reveal 翻开[x,y],雷区外,插旗或已分出输赢时不做任何操作
func (s *Session) Reveal(x, y int) {
	if !s.playable(x, y) || s.board.Get(x, y).Flagged() {
		return
	}
	s.begin(x, y)
	s.reveal(x, y)
}

func (s *Session) reveal(x, y int) {
	switch o, _ := s.board.Reveal(x, y); o {
	case board.HitMine:
		s.lose(x, y)
	case board.Cleared:
		if s.board.TilesLeft() == 0 {
			s.win()
		}
	}
}

// Chord 翻开[x,y]以及周围8个格子,中途踩雷则停止
func (s *Session) Chord(x, y int) {
	if !s.playable(x, y) {
		return
	}
	s.begin(x, y)
	s.reveal(x, y)
	s.board.Neighbours(x, y, func(nx, ny int) {
		if !s.state.Terminal() {
			s.reveal(nx, ny)
		}
	})
}

// Flag 插旗或取消插旗,已打开的格子不能插旗
func (s *Session) Flag(x, y int) {
	if !s.playable(x, y) {
		return
	}
	s.mines += s.board.Flag(x, y)
}

func (s *Session) lose(x, y int) {
	s.state = Lost
	s.death = board.Point{X: x, Y: y}
	s.finish = s.since()

	l := s.log.WithFields(logrus.Fields{
		"x":       x,
		"y":       y,
		"elapsed": s.finish,
	})
	l.Info("game lost")
	l.Debugf("board:\n%s", s.board.Layout())
}

func (s *Session) win() {
	s.state = Won
	s.finish = s.since()

	s.log.WithFields(logrus.Fields{
		"width":   s.board.Width(),
		"height":  s.board.Height(),
		"mines":   s.startingMines,
		"elapsed": s.finish,
	}).Info("game won")
}

func (s *Session) since() time.Duration {
	now := s.clock.Now()
	if now.Before(s.start) {
		panic(fmt.Sprintf("session: clock went backwards, now %s is before start %s", now, s.start))
	}
	return now.Sub(s.start)
}

func (s *Session) State() State          { return s.state }
func (s *Session) Board() *board.Board   { return s.board }
func (s *Session) Layout() Layout        { return s.layout }
func (s *Session) Width() int            { return s.board.Width() }
func (s *Session) Height() int           { return s.board.Height() }
func (s *Session) TilesLeft() int        { return s.board.TilesLeft() }
func (s *Session) MinesPlaced() bool     { return s.board.Placed() }
func (s *Session) MineCount() int        { return s.mines }
func (s *Session) StartingMines() int    { return s.startingMines }
func (s *Session) MouseHeld() bool       { return s.held }
func (s *Session) Mouse() (x, y float64) { return s.mouseX, s.mouseY }

// DeathPosition 踩到的第1个雷,没输时返回false
func (s *Session) DeathPosition() (board.Point, bool) {
	return s.death, s.state == Lost
}

// FinishTime 分出输赢时记录的用时
func (s *Session) FinishTime() (time.Duration, bool) {
	return s.finish, s.state.Terminal()
}

// Elapsed 计时器: 未开始为0,结束后固定为结束用时
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case NotStarted:
		return 0
	case Won, Lost:
		return s.finish
	}
	return s.since()
}

// Seconds 计时器显示的整秒数
func (s *Session) Seconds() int {
	return int(s.Elapsed() / time.Second)
}

// WindowSize 当前雷区对应的界面像素宽高
func (s *Session) WindowSize() (int, int) {
	return s.layout.WindowSize(s.board.Width(), s.board.Height())
}

package session

import "time"

// Clock 计时用的时钟,测试时可以替换
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock time.Now 带单调时钟读数,计算用时不受系统时间调整影响
var SystemClock Clock = ClockFunc(time.Now)

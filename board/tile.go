package board

import "fmt"

// Tile 一个格子的全部状态压缩在1个字节中
//
//	bit 0   插旗
//	bit 1   已打开
//	bit 2-3 类型: 空白,雷,数字
//	bit 4-7 周围雷数(0-8)
type Tile uint8

const (
	tileFlag     = 0x01 // 该bit表示插旗
	tileRevealed = 0x02 // 该bit表示已打开
	tileKindMask = 0x0c // 格子类型掩码
	tileKindBit  = 2
	tileAdjMask  = 0xf0 // 周围雷数掩码
	tileAdjBit   = 4

	// MaxAdjacent 周围8个格子最多8个雷
	MaxAdjacent = 8
)

// Kind 格子类型,布雷时写入一次,之后不会再变
type Kind uint8

const (
	Empty Kind = iota
	Mine
	Number
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	case Number:
		return "number"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (t Tile) Flagged() bool  { return t&tileFlag != 0 }
func (t Tile) Revealed() bool { return t&tileRevealed != 0 }
func (t Tile) Kind() Kind     { return Kind(t&tileKindMask) >> tileKindBit }
func (t Tile) Adjacent() int  { return int(t&tileAdjMask) >> tileAdjBit }

func (t Tile) String() string {
	return fmt.Sprintf("%#08b(%s,adj=%d,flag=%t,open=%t)",
		uint8(t), t.Kind(), t.Adjacent(), t.Flagged(), t.Revealed())
}

func mineTile() Tile { return Tile(Mine) << tileKindBit }

func numberTile(adj int) Tile {
	return Tile(Number)<<tileKindBit | Tile(adj)<<tileAdjBit
}

// Fields 解码后的格子各字段
type Fields struct {
	Flagged  bool
	Revealed bool
	Kind     Kind
	Adjacent uint8
}

// Decode 任意字节都能解码,只有引擎自己保证写入合法组合
func Decode(b byte) Fields {
	t := Tile(b)
	return Fields{
		Flagged:  t.Flagged(),
		Revealed: t.Revealed(),
		Kind:     t.Kind(),
		Adjacent: uint8(t.Adjacent()),
	}
}

// Encode 各字段按掩码截断后写入对应bit
func Encode(f Fields) byte {
	var b byte
	if f.Flagged {
		b |= tileFlag
	}
	if f.Revealed {
		b |= tileRevealed
	}
	b |= byte(f.Kind) << tileKindBit & tileKindMask
	b |= f.Adjacent << tileAdjBit & tileAdjMask
	return b
}

package session

import "testing"

// center 格子中心的像素坐标
func center(s *Session, x, y int) (float64, float64) {
	px, py := s.Layout().CellOrigin(x, y)
	half := float64(s.Layout().Cell) / 2
	return float64(px) + half, float64(py) + half
}

func faceCenter(s *Session) (float64, float64) {
	pw, _ := s.WindowSize()
	r := s.Layout().FaceRect(pw)
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}

func TestCursorCell(t *testing.T) {
	s, _, _ := newTest(t, 9, 9, 10)
	s.MoveCursor(center(s, 3, 5))
	if x, y, ok := s.CursorCell(); !ok || x != 3 || y != 5 {
		t.Fatalf("CursorCell = (%d,%d) %t", x, y, ok)
	}
	s.MoveCursor(0, 0)
	if _, _, ok := s.CursorCell(); ok {
		t.Fatal("cursor in the border reported a cell")
	}
	s.MoveCursor(center(s, 9, 0))
	if _, _, ok := s.CursorCell(); ok {
		t.Fatal("cursor right of the board reported a cell")
	}
}

func TestLeftClickReveals(t *testing.T) {
	s, _, _ := newTest(t, 3, 3, 1)
	started(t, s, corner)

	s.MoveCursor(center(s, 1, 0))
	s.Press(Left)
	if !s.MouseHeld() || s.Board().Get(1, 0).Revealed() {
		t.Fatal("press should only hold the button")
	}
	if s.Face() != FaceSurprised {
		t.Fatalf("Face = %d while holding on the board", s.Face())
	}
	s.Release(Left)
	if s.MouseHeld() || !s.Board().Get(1, 0).Revealed() {
		t.Fatal("release did not reveal")
	}
}

func TestReleaseOutsideBoard(t *testing.T) {
	s, _, _ := newTest(t, 3, 3, 1)
	started(t, s, corner)

	s.MoveCursor(center(s, 1, 1))
	s.Press(Left)
	s.MoveCursor(2, 2)
	s.Release(Left)
	if s.TilesLeft() != 8 || s.State() != InProgress {
		t.Fatalf("left %d state %s", s.TilesLeft(), s.State())
	}
}

func TestRightClickFlags(t *testing.T) {
	s, _, _ := newTest(t, 3, 3, 1)
	started(t, s, corner)

	s.MoveCursor(center(s, 0, 0))
	s.Press(Right)
	if !s.Board().Get(0, 0).Flagged() || s.MineCount() != 0 {
		t.Fatal("right click did not flag")
	}
	s.Release(Right)
	if !s.Board().Get(0, 0).Flagged() {
		t.Fatal("right release changed the flag")
	}
}

func TestMiddleClickChords(t *testing.T) {
	s, _, _ := newTest(t, 3, 3, 1)
	started(t, s, corner)

	s.MoveCursor(center(s, 0, 0))
	s.Press(Right)
	s.MoveCursor(center(s, 1, 1))
	s.Press(Middle)
	if s.State() != Won {
		t.Fatalf("state = %s, want won", s.State())
	}
}

func TestFaceClickResets(t *testing.T) {
	s, _, _ := newTest(t, 3, 3, 1)
	started(t, s, corner)
	s.Reveal(0, 0)

	s.MoveCursor(faceCenter(s))
	s.Press(Left)
	if s.Face() != FacePressed {
		t.Fatalf("Face = %d, want pressed", s.Face())
	}
	s.Release(Left)
	if s.State() != NotStarted || s.Face() != FaceNormal {
		t.Fatalf("state %s face %d after clicking the face", s.State(), s.Face())
	}
}

func TestSurprisedOnlyOverBoard(t *testing.T) {
	s, _, _ := newTest(t, 9, 9, 10)
	tests := []struct {
		name   string
		px, py float64
		want   Face
	}{
		{"board", 20, 60, FaceSurprised},
		{"left margin", 2, 60, FaceNormal},
		{"counter area", 20, 20, FaceNormal},
		{"bottom margin", 20, 203, FaceNormal},
	}
	for _, tt := range tests {
		s.MoveCursor(tt.px, tt.py)
		s.Press(Left)
		if got := s.Face(); got != tt.want {
			t.Errorf("%s: Face = %d, want %d", tt.name, got, tt.want)
		}
		s.held = false
	}
}

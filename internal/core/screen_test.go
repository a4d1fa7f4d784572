package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y, h := 0, s.Height(); y < h; y++ {
		for x, w := 0, s.Width(); x < w; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}

	// Negative sizes collapse to an empty buffer
	if e := NewScreen(-4, -1); e.Width() != 0 || e.Height() != 0 {
		t.Errorf("NewScreen(-4, -1) = %dx%d", e.Width(), e.Height())
	}
}

func TestScreenCellWrites(t *testing.T) {
	orange := RGB{R: 255, G: 140}

	tests := []struct {
		name  string
		write func(s *Screen)
		x, y  int
		want  Cell
	}{
		{
			name:  "palette color",
			write: func(s *Screen) { s.SetColored(2, 1, '●', ColorRed) },
			x:     2,
			y:     1,
			want:  Cell{Rune: '●', Color: ColorRed},
		},
		{
			name:  "rgb color",
			write: func(s *Screen) { s.SetRGB(3, 0, '*', orange) },
			x:     3,
			want:  Cell{Rune: '*', Color: ColorRGB, RGB: orange},
		},
		{
			name: "plain set drops the previous color",
			write: func(s *Screen) {
				s.SetRGB(0, 0, '*', orange)
				s.Set(0, 0, 'x')
			},
			want: Cell{Rune: 'x'},
		},
		{
			name: "writes outside the buffer are ignored",
			write: func(s *Screen) {
				s.SetColored(-1, 0, '#', ColorRed)
				s.SetRGB(8, 0, '#', orange)
				s.SetColored(0, 3, '#', ColorRed)
			},
			want: blankCell,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 3)
			tc.write(s)
			if got := s.GetCell(tc.x, tc.y); got != tc.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestScreenGetCellOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(0, 0, '#', ColorRed)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextColored(1, 0, "Score: 1", ColorBrightBlue)
	s.DrawTextColored(9, 1, "DANGER!", ColorBrightRed)

	if got := s.Row(0); got != " Score: 1   " {
		t.Errorf("Row(0) = %q", got)
	}
	for x := 1; x < 9; x++ {
		if c := s.GetCell(x, 0).Color; c != ColorBrightBlue {
			t.Errorf("cell %d color = %v, expected bright blue", x, c)
		}
	}

	// Clipped at the right edge
	if got := s.Row(1); got != strings.Repeat(" ", 9)+"DAN" {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "(T_T)")

	if got := strings.Index(s.Row(1), "(T_T)"); got != 7 {
		t.Errorf("text starts at %d, expected 7", got)
	}
}

func TestScreenDrawBoxOverFilledRect(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRect(NewRect(0, 0, 7, 5), '░')

	box := NewRect(1, 1, 5, 3)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	want := []string{
		"░░░░░░░",
		"░┌───┐░",
		"░│   │░",
		"░└───┘░",
		"░░░░░░░",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("screen =\n%s\nexpected\n%s", got, strings.Join(want, "\n"))
	}
}

func TestScreenResizeKeepsColors(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetColored(1, 1, '●', ColorRed)
	s.SetRGB(8, 3, '*', RGB{B: 255})

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c != (Cell{Rune: '●', Color: ColorRed}) {
		t.Errorf("cell kept through shrink = %+v", c)
	}

	s.Resize(10, 4)
	if c := s.GetCell(8, 3); c != blankCell {
		t.Errorf("cell cropped by shrink came back as %+v", c)
	}
	if c := s.GetCell(1, 1); c.Color != ColorRed {
		t.Errorf("cell lost its color after growing: %+v", c)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

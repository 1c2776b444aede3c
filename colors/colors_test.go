package colors

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b float64
		wantErr bool
	}{
		{in: "000000"},
		{in: "#ffffff", r: 1, g: 1, b: 1},
		{in: "ff0000", r: 1},
		{in: "808080", r: 128.0 / 255, g: 128.0 / 255, b: 128.0 / 255},
		{in: "80808", wantErr: true},
		{in: "gggggg", wantErr: true},
	}
	for _, tt := range tests {
		c, err := Hex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Hex(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Hex(%q): %v", tt.in, err)
			continue
		}
		r, g, b := c.ToRGB()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("Hex(%q) = (%v %v %v), want (%v %v %v)", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustHex should panic on bad input")
		}
	}()
	MustHex("xyz")
}

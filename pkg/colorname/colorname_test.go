package colorname

import "testing"

func TestNameExact(t *testing.T) {
	tests := []struct {
		rgb  [3]float64
		want string
	}{
		{[3]float64{1, 0, 0}, "red"},
		{[3]float64{0, 0, 0}, "black"},
		{[3]float64{1, 1, 1}, "white"},
		{[3]float64{0, 1, 1}, "aqua"},
		{[3]float64{1, 0, 1}, "fuchsia"},
	}
	for _, tt := range tests {
		if got := Name(tt.rgb); got != tt.want {
			t.Errorf("Name(%v) = %q, want %q", tt.rgb, got, tt.want)
		}
	}
}

func TestLookupExactFlag(t *testing.T) {
	name, exact := Lookup([3]uint8{255, 0, 0})
	if name != "red" || !exact {
		t.Errorf("Lookup(255,0,0) = %q, %v; want red via exact match", name, exact)
	}

	name, exact = Lookup([3]uint8{254, 254, 254})
	if exact {
		t.Errorf("Lookup(254,254,254) reported an exact match %q", name)
	}
	if name != "white" {
		t.Errorf("Lookup(254,254,254) = %q, want white", name)
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		rgb  [3]uint8
		want string
	}{
		{[3]uint8{250, 5, 5}, "red"},
		{[3]uint8{1, 1, 1}, "black"},
		{[3]uint8{0, 0, 130}, "navy"},
	}
	for _, tt := range tests {
		if got := Nearest(tt.rgb); got != tt.want {
			t.Errorf("Nearest(%v) = %q, want %q", tt.rgb, got, tt.want)
		}
	}
}

func TestNearestTieKeepsFirstEntry(t *testing.T) {
	p := []entry{
		{name: "far", rgb: [3]uint8{200, 200, 200}},
		{name: "lower", rgb: [3]uint8{90, 100, 100}},
		{name: "upper", rgb: [3]uint8{110, 100, 100}},
	}
	if got := nearest(p, [3]uint8{100, 100, 100}); got != "lower" {
		t.Errorf("nearest = %q, want lower", got)
	}

	p[1], p[2] = p[2], p[1]
	if got := nearest(p, [3]uint8{100, 100, 100}); got != "upper" {
		t.Errorf("nearest after swap = %q, want upper", got)
	}

	// gray and grey share a value, so both are always equidistant.
	if got := Nearest([3]uint8{127, 127, 127}); got != "gray" {
		t.Errorf("Nearest(127,127,127) = %q, want gray", got)
	}
}

func TestDenormalizeTruncates(t *testing.T) {
	got := Denormalize([3]float64{0.999, 0.5, 2})
	want := [3]uint8{254, 127, 255}
	if got != want {
		t.Errorf("Denormalize = %v, want %v", got, want)
	}
}

func TestHexToName(t *testing.T) {
	name, exact, err := HexToName("#FF0000")
	if err != nil || name != "red" || !exact {
		t.Errorf("HexToName(#FF0000) = %q, %v, %v", name, exact, err)
	}
	name, _, err = HexToName("000080")
	if err != nil || name != "navy" {
		t.Errorf("HexToName(000080) = %q, %v", name, err)
	}
	if _, _, err := HexToName("#FFF"); err == nil {
		t.Error("expected error for short hex")
	}
	if _, _, err := HexToName("#GG0000"); err == nil {
		t.Error("expected error for bad digits")
	}
}

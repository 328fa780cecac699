package getaway

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"getaway/world"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeResource(t *testing.T) {
	fsys := fstest.MapFS{
		"images/car.png":   {Data: encodePNG(t, 100, 50)},
		"images/water.png": {Data: []byte("not a png")},
	}

	img, err := decodeResource(fsys, ResourceCar)
	if err != nil {
		t.Fatalf("decodeResource(car): %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("car bounds = %v, want 100x50", b)
	}

	if _, err := decodeResource(fsys, ResourceWater); err == nil {
		t.Error("decodeResource(water) succeeded on garbage data")
	}

	_, err = decodeResource(fsys, PoliceFrame(2))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("decodeResource(police_2) error = %v, want fs.ErrNotExist", err)
	}

	if _, err := decodeResource(nil, ResourceCar); !errors.Is(err, errNoAssets) {
		t.Errorf("decodeResource(nil fs) error = %v, want errNoAssets", err)
	}
}

func TestSprites(t *testing.T) {
	want := []ResourceType{
		"player_0", "player_1", "player_2", "player_3",
		"police_0", "police_1", "police_2", "police_3",
		"car", "water",
	}
	got := Sprites()
	if len(got) != len(want) {
		t.Fatalf("Sprites() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sprites()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if p := resourcePath(PlayerFrame(1)); p != "images/player_1.png" {
		t.Errorf("resourcePath = %q", p)
	}
}

func TestTouchInput(t *testing.T) {
	p := world.Player{X: 100, Y: 100, Size: 40} // centre (120, 120), dead zone 10
	tests := []struct {
		name string
		x, y float64
		want world.Input
	}{
		{"on centre", 120, 120, world.Input{}},
		{"inside dead zone", 129, 111, world.Input{}},
		{"above", 120, 50, world.Input{Up: true}},
		{"below right", 200, 200, world.Input{Down: true, Right: true}},
		{"left", 90, 125, world.Input{Left: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := touchInput(p, tt.x, tt.y); got != tt.want {
				t.Errorf("touchInput(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMergeInput(t *testing.T) {
	got := mergeInput(world.Input{Up: true}, world.Input{Left: true})
	if got != (world.Input{Up: true, Left: true}) {
		t.Errorf("mergeInput = %+v", got)
	}
}

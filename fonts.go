package getaway

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	bannerSize = 50
	hudLine    = 16
)

// Fonts holds the faces the scene draws with.
type Fonts struct {
	// Banner is the large face for the game-over title.
	Banner text.Face
	// HUD is the small face for score lines and hints.
	HUD text.Face
}

// LoadFonts parses the bundled Go Regular face for the banner and uses the
// bitmap face for everything else.
func LoadFonts() (Fonts, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return Fonts{}, fmt.Errorf("parse banner font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    bannerSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return Fonts{}, fmt.Errorf("create banner face: %w", err)
	}
	return Fonts{
		Banner: text.NewGoXFace(face),
		HUD:    text.NewGoXFace(bitmapfont.Face),
	}, nil
}

// drawText draws str with its top-left corner at (x, y), one line per "\n".
func drawText(screen *ebiten.Image, face text.Face, str string, x, y int, clr color.Color) {
	lines := strings.Split(str, "\n")
	for i, line := range lines {
		dopt := &text.DrawOptions{}
		dopt.GeoM.Translate(float64(x), float64(y+i*hudLine))
		dopt.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, face, dopt)
	}
}

package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Small   FontName = "small"
	Regular FontName = "regular"
	Title   FontName = "title"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the bitmap HUD face and the TrueType faces used by
// messages and the pause menu.
func LoadDefaults() error {
	LoadFace(Small, basicfont.Face7x13)
	if err := LoadFontWithSize(Regular, goregular.TTF, 12); err != nil {
		return err
	}
	return LoadFontWithSize(Title, goregular.TTF, 20)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	LoadFace(name, truetype.NewFace(fontData, &truetype.Options{Size: size}))
	return nil
}

func LoadFace(name FontName, face font.Face) {
	fonts[name] = text.NewGoXFace(face)
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

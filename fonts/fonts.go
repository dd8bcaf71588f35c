package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font wrapped for text/v2 drawing.
func (f FontName) Face() text.Face {
	face, ok := textFaces[f]
	if !ok {
		face = text.NewGoXFace(getFont(f))
		textFaces[f] = face
	}
	return face
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults loads every face from the bundled Go Regular TTF.
func LoadDefaults() error {
	sizes := map[FontName]float64{
		Regular: 16,
		Title:   36,
		Small:   12,
	}
	for name, size := range sizes {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFontSource parses the embedded Go Mono font
func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	return src, nil
}

// getTileFontSize returns the font size for cell glyphs, scaled to tile
func getTileFontSize(tile int) float64 {
	return baseFontSize * float64(tile) / 24.0
}

// getUIFontSize returns the font size for status and message text
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := getTileFontSize(e.tileSize) * 0.5
	if size < 12 {
		size = 12
	}
	return size
}

// getTileFontFace returns a cached face for cell glyphs at the given tile size
func (e *EbitenRenderer) getTileFontFace(tile int) *text.GoTextFace {
	size := getTileFontSize(tile)
	if e.cachedTileFace == nil || e.cachedTileFontSize != size {
		e.cachedTileFontSize = size
		e.cachedTileFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedTileFace
}

// getUIFontFace returns a cached face for UI text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}

// invalidateFontCache clears cached font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedTileFace = nil
	e.cachedUIFace = nil
}

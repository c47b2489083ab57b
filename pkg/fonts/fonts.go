// Package fonts provides the monospace face used for text in backgrounds.
//
// The face is Go Mono, which ships inside golang.org/x/image as TTF bytes,
// so rendering needs no fonts installed on the host.
package fonts

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the family name of the embedded face.
const FontFamily = "Go Mono"

// Parsed font (computed once on first access).
var (
	mono     *opentype.Font
	monoErr  error
	monoOnce sync.Once
)

func parsed() (*opentype.Font, error) {
	monoOnce.Do(func() {
		mono, monoErr = opentype.Parse(gomono.TTF)
	})
	return mono, monoErr
}

// Mono returns a new Go Mono face at size pixels (72 DPI, so points equal
// pixels, matching CSS "14px monospace"). Faces are not safe for concurrent
// use; each surface should hold its own.
func Mono(size float64) (font.Face, error) {
	f, err := parsed()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", FontFamily, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new %s face at %gpx: %w", FontFamily, size, err)
	}
	return face, nil
}

// Advance is the Go Mono advance width as a fraction of the font size.
const Advance = 0.6

// Measurement faces, one per size, shared behind a lock.
var (
	measureMu    sync.Mutex
	measureFaces = map[float64]font.Face{}
	measureFace  = Mono
)

// Width returns the advance width of s in pixels at size. If the face
// cannot be loaded it estimates Advance*size per rune, so callers centring
// text stay close; painting the text reports the load error.
func Width(s string, size float64) float64 {
	measureMu.Lock()
	defer measureMu.Unlock()

	face, ok := measureFaces[size]
	if !ok {
		var err error
		if face, err = measureFace(size); err != nil {
			return Advance * size * float64(utf8.RuneCountInString(s))
		}
		measureFaces[size] = face
	}
	return float64(font.MeasureString(face, s)) / 64
}

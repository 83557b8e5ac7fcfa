package bdf

import (
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/bdf/geom"
)

// Encoding is the character code associated with a glyph. BDF files encode
// unmapped glyphs with negative codes (usually -1); those, and codes outside
// the Unicode scalar range, carry no codepoint. The zero value is
// NonStandard.
type Encoding struct {
	code rune
	std  bool
}

// NonStandard is the encoding of a glyph without a valid character code.
var NonStandard = Encoding{}

// StandardEncoding returns the encoding for a Unicode codepoint. Invalid
// scalar values (negative, surrogates, beyond U+10FFFF) yield NonStandard.
func StandardEncoding(code rune) Encoding {
	if !utf8.ValidRune(code) {
		return NonStandard
	}
	return Encoding{code: code, std: true}
}

// Codepoint returns the glyph's codepoint, with ok false for a
// non-standard encoding.
func (e Encoding) Codepoint() (code rune, ok bool) {
	return e.code, e.std
}

func (e Encoding) String() string {
	if !e.std {
		return "non-standard"
	}
	return fmt.Sprintf("U+%04X", e.code)
}

// Glyph is one character of a font: its bitmap plus metrics and encoding.
type Glyph struct {
	Name          string
	Encoding      Encoding
	BoundingBox   geom.BoundingBox
	Bitmap        [][]byte    // one entry per bitmap row, top row first
	ScalableWidth *geom.Coord // optional SWIDTH metric
	DeviceWidth   *geom.Coord // optional DWIDTH metric
}

// Pixel reports whether the bitmap pixel at column x, row y is set.
// Coordinates are bitmap-local: x counts from the left edge, y from the
// top row. Bits are MSB-first within each row byte. Out-of-range
// coordinates are unset.
func (g *Glyph) Pixel(x, y int32) bool {
	if y < 0 || int(y) >= len(g.Bitmap) || x < 0 {
		return false
	}
	row := g.Bitmap[y]
	if int(x/8) >= len(row) {
		return false
	}
	return row[x/8]&(0x80>>(x%8)) != 0
}

// parseGlyph parses one STARTCHAR…ENDCHAR block. If no STARTCHAR statement
// is next in the input, the error wraps errNoKeyword and the input is left
// untouched, so callers can detect the end of the glyph list.
func parseGlyph(in string) (Glyph, string, error) {
	name, rest, err := statement(skipComments(in), "STARTCHAR", parseLine)
	if err != nil {
		return Glyph{}, in, err
	}
	code, rest, err := statement(skipComments(rest), "ENCODING", parseInt)
	if err != nil {
		return Glyph{}, in, glyphFault(name, err)
	}
	glyph := Glyph{Name: name, Encoding: StandardEncoding(rune(code))}
	if sw, r, err := statement(skipComments(rest), "SWIDTH", parseCoord); err == nil {
		glyph.ScalableWidth = &sw
		rest = r
	} else if !errors.Is(err, errNoKeyword) {
		return Glyph{}, in, glyphFault(name, err)
	}
	if dw, r, err := statement(skipComments(rest), "DWIDTH", parseCoord); err == nil {
		glyph.DeviceWidth = &dw
		rest = r
	} else if !errors.Is(err, errNoKeyword) {
		return Glyph{}, in, glyphFault(name, err)
	}
	glyph.BoundingBox, rest, err = statement(skipComments(rest), "BBX", parseBBox)
	if err != nil {
		return Glyph{}, in, glyphFault(name, err)
	}
	glyph.Bitmap, rest, err = parseBitmap(skipComments(rest))
	if err != nil {
		return Glyph{}, in, glyphFault(name, err)
	}
	trace().Debugf("parsed glyph %q (%v), %d rows", name, glyph.Encoding, len(glyph.Bitmap))
	return glyph, rest, nil
}

// glyphFault hardens an error inside a glyph block. Once STARTCHAR has
// matched, a missing interior keyword is a malformed glyph, not the end of
// the glyph list, so the errNoKeyword sentinel must not leak through.
func glyphFault(name string, err error) error {
	return fmt.Errorf("glyph %q: %v", name, err)
}

// parseBitmap parses the BITMAP…ENDCHAR block: one line of hex digits per
// pixel row. Rows are decoded strictly line by line; row boundaries are
// never merged into a wider bit window, so a glyph whose rows are, say,
// 3 bytes wide keeps exactly 3 bytes per entry.
func parseBitmap(in string) ([][]byte, string, error) {
	rest, err := bareStatement(in, "BITMAP")
	if err != nil {
		return nil, in, err
	}
	var rows [][]byte
	for {
		if r, err := bareStatement(rest, "ENDCHAR"); err == nil {
			return rows, r, nil
		} else if !errors.Is(err, errNoKeyword) {
			return nil, in, err
		}
		line, r := token(skipSpace(rest))
		if line == "" {
			return nil, in, errors.New("bitmap not terminated by ENDCHAR")
		}
		row, err := decodeBitmapRow(line)
		if err != nil {
			return nil, in, err
		}
		rows = append(rows, row)
		rest = r
	}
}

// decodeBitmapRow decodes one line of hex digits into the packed bytes of a
// single bitmap row. Digits pair up into bytes left to right, most
// significant nibble first; an odd trailing digit fills the high nibble of
// the final byte, low bits zero.
func decodeBitmapRow(line string) ([]byte, error) {
	if len(line)%2 != 0 {
		line += "0"
	}
	row, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("bad bitmap row %q", line)
	}
	return row, nil
}

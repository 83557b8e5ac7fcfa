package bdf

import (
	"errors"
	"fmt"

	"github.com/npillmayer/bdf/geom"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Font is a parsed BDF font: header metadata, the glyph list in declaration
// order, and the property table. A Font is built in one piece by Parse and
// not mutated afterwards; it is safe to share between goroutines.
type Font struct {
	Metadata   Metadata
	Glyphs     []Glyph
	Properties Properties
}

// Parse parses BDF font data into a Font.
//
// Parsing is a pure function over the input bytes: it performs no I/O, holds
// no shared state, and may be called concurrently on independent inputs.
// Non-ASCII byte sequences in the input are tolerated; bytes that do not
// form valid UTF-8 are replaced by U+FFFD rather than failing the parse.
//
// On failure Parse returns a *ParseError naming the malformed section;
// a Font and an error are never returned together.
func Parse(data []byte) (*Font, error) {
	sanitized, _, err := transform.Bytes(runes.ReplaceIllFormed(), data)
	if err != nil {
		return nil, errSection(SectionMetadata, err)
	}
	in := string(sanitized)

	metadata, rest, err := parseMetadata(in)
	if err != nil {
		return nil, errSection(SectionMetadata, err)
	}
	properties, rest, err := parseProperties(rest)
	if err != nil {
		return nil, errSection(SectionProperties, err)
	}
	// CHARS declares the glyph count, informational only
	if _, r, err := statement(skipComments(rest), "CHARS", parseUint); err == nil {
		rest = r
	} else if !errors.Is(err, errNoKeyword) {
		return nil, errSection(SectionGlyphs, err)
	}
	var glyphs []Glyph
	for {
		glyph, r, err := parseGlyph(rest)
		if errors.Is(err, errNoKeyword) {
			break
		}
		if err != nil {
			return nil, errSection(SectionGlyphs, err)
		}
		glyphs = append(glyphs, glyph)
		rest = r
	}
	// ENDFONT is optional, truncated fonts are accepted
	if r, err := bareStatement(skipComments(rest), "ENDFONT"); err == nil {
		rest = r
	}
	if rest = skipSpace(rest); rest != "" {
		return nil, errSection(SectionEndOfFile,
			fmt.Errorf("%d bytes of trailing content", len(rest)))
	}
	font := &Font{Metadata: metadata, Glyphs: glyphs, Properties: properties}
	trace().Debugf("parsed font %q with %d glyphs", metadata.Name, len(glyphs))
	return font, nil
}

// GlyphExtents returns the union of all glyph bounding boxes, i.e. the
// composite extents of the font's ink. Empty glyph boxes do not contribute.
// For a font without glyphs the empty box is returned.
func (f *Font) GlyphExtents() geom.BoundingBox {
	var extents geom.BoundingBox
	for _, g := range f.Glyphs {
		extents = geom.Union(extents, g.BoundingBox)
	}
	return extents
}

// GlyphByCodepoint returns the glyph encoding the given codepoint. Fonts
// may declare several glyphs with the same encoding; the first one in
// declaration order wins.
func (f *Font) GlyphByCodepoint(code rune) (*Glyph, bool) {
	for i := range f.Glyphs {
		if c, ok := f.Glyphs[i].Encoding.Codepoint(); ok && c == code {
			return &f.Glyphs[i], true
		}
	}
	return nil, false
}

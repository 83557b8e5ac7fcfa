package bdf

import (
	"errors"
	"testing"

	"github.com/npillmayer/bdf/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	chardata := `STARTCHAR ZZZZ
ENCODING 65
SWIDTH 500 0
DWIDTH 8 0
BBX 8 16 0 -2
BITMAP
00
00
00
00
18
24
24
42
42
7E
42
42
42
42
00
00
ENDCHAR`
	glyph, rest, err := parseGlyph(chardata)
	if err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, rest)
	assert.Equal(t, "ZZZZ", glyph.Name)
	code, ok := glyph.Encoding.Codepoint()
	assert.True(t, ok, "encoding 65 is a standard codepoint")
	assert.Equal(t, 'A', code)
	assert.Equal(t, geom.Pt(500, 0), *glyph.ScalableWidth)
	assert.Equal(t, geom.Pt(8, 0), *glyph.DeviceWidth)
	assert.Equal(t, geom.BoundingBox{Offset: geom.Pt(0, -2), Size: geom.Pt(8, 16)}, glyph.BoundingBox)
	assert.Len(t, glyph.Bitmap, 16, "one bitmap entry per declared row")
	assert.Equal(t, []byte{0x18}, glyph.Bitmap[4])
	assert.Equal(t, []byte{0x7e}, glyph.Bitmap[9])
}

func TestParseGlyphNegativeEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	chardata := "STARTCHAR 000\nENCODING -1\nSWIDTH 432 0\nDWIDTH 6 0\nBBX 0 0 0 0\nBITMAP\nENDCHAR"
	glyph, _, err := parseGlyph(chardata)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := glyph.Encoding.Codepoint(); ok {
		t.Error("expected encoding -1 to be non-standard")
	}
	if glyph.Encoding != NonStandard {
		t.Errorf("expected NonStandard encoding, have %v", glyph.Encoding)
	}
	if len(glyph.Bitmap) != 0 {
		t.Errorf("expected empty bitmap, have %d rows", len(glyph.Bitmap))
	}
}

func TestParseGlyphOptionalWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	chardata := "STARTCHAR C\nENCODING 64\nBBX 8 1 0 0\nBITMAP\n1f\nENDCHAR\n"
	glyph, _, err := parseGlyph(chardata)
	if err != nil {
		t.Fatal(err)
	}
	if glyph.ScalableWidth != nil || glyph.DeviceWidth != nil {
		t.Error("expected absent SWIDTH/DWIDTH to stay nil")
	}
}

func TestParseGlyphMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	// BBX missing: a malformed glyph, not the end of the glyph list
	chardata := "STARTCHAR C\nENCODING 64\nBITMAP\n1f\nENDCHAR\n"
	_, _, err := parseGlyph(chardata)
	if err == nil {
		t.Fatal("expected glyph without BBX to fail, didn't")
	}
	if errors.Is(err, errNoKeyword) {
		t.Error("expected a hard error, not the end-of-list marker")
	}
}

func TestBitmapRowsDecodeIndependently(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	// 17 pixels wide = 3 bytes per row. Rows must never be merged into a
	// fixed-width window spanning source lines.
	bitmap := "BITMAP\nFFFF80\n000180\nENDCHAR"
	rows, rest, err := parseBitmap(bitmap)
	if err != nil {
		t.Fatal(err)
	}
	if rest != "" {
		t.Errorf("expected bitmap to consume all input, rest is %q", rest)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, have %d", len(rows))
	}
	assert.Equal(t, []byte{0xff, 0xff, 0x80}, rows[0])
	assert.Equal(t, []byte{0x00, 0x01, 0x80}, rows[1])
}

func TestBitmapOddDigitCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	row, err := decodeBitmapRow("1f8")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []byte{0x1f, 0x80}, row, "odd trailing digit fills the high nibble")
}

func TestBitmapRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	if _, _, err := parseBitmap("BITMAP\n1g\nENDCHAR"); err == nil {
		t.Error("expected non-hex bitmap row to fail")
	}
	if _, _, err := parseBitmap("BITMAP\n1f\n"); err == nil {
		t.Error("expected bitmap without ENDCHAR to fail")
	}
}

func TestGlyphPixel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	glyph := &Glyph{Bitmap: [][]byte{{0x80, 0x01}, {0x01, 0x80}}}
	if !glyph.Pixel(0, 0) {
		t.Error("expected top-left pixel to be set")
	}
	if !glyph.Pixel(15, 0) {
		t.Error("expected pixel 15 of row 0 to be set")
	}
	if !glyph.Pixel(7, 1) || !glyph.Pixel(8, 1) {
		t.Error("expected pixels 7 and 8 of row 1 to be set")
	}
	if glyph.Pixel(1, 0) || glyph.Pixel(0, 2) || glyph.Pixel(-1, 0) || glyph.Pixel(99, 0) {
		t.Error("expected out-of-range or unset pixels to be unset")
	}
}

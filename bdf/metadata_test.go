package bdf

import (
	"testing"

	"github.com/npillmayer/bdf/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	input := "STARTFONT 2.1\nFONT \"test font\"\nSIZE 16 75 75\nFONTBOUNDINGBOX 16 24 0 0"
	md, rest, err := parseMetadata(input)
	if err != nil {
		t.Fatal(err)
	}
	if rest != "" {
		t.Errorf("expected header to consume all input, rest is %q", rest)
	}
	if md.Version != 2.1 {
		t.Errorf("expected version 2.1, have %g", md.Version)
	}
	if md.Name != "\"test font\"" {
		t.Errorf("expected verbatim font name, have %q", md.Name)
	}
	if md.PointSize != 16 || md.ResolutionX != 75 || md.ResolutionY != 75 {
		t.Errorf("expected size 16 75 75, have %d %d %d", md.PointSize, md.ResolutionX, md.ResolutionY)
	}
	if md.BoundingBox.Size != geom.Pt(16, 24) || md.BoundingBox.Offset != geom.Origin {
		t.Errorf("expected font bounding box 16x24 at origin, have %v", md.BoundingBox)
	}
}

func TestParseHeaderWithComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	input := "COMMENT generated\nSTARTFONT 2.1\nCOMMENT who needs a name?\nFONT x\nSIZE 10 96 96\nFONTBOUNDINGBOX 8 16 0 -4\n"
	md, _, err := parseMetadata(input)
	if err != nil {
		t.Fatal(err)
	}
	if md.BoundingBox.Offset != geom.Pt(0, -4) {
		t.Errorf("expected bounding box offset (0,-4), have %v", md.BoundingBox.Offset)
	}
}

func TestParseHeaderIncomplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bdf.fonts")
	defer teardown()
	//
	// SIZE missing: the header fails as a whole
	input := "STARTFONT 2.1\nFONT x\nFONTBOUNDINGBOX 16 24 0 0\n"
	_, rest, err := parseMetadata(input)
	if err == nil {
		t.Fatal("expected incomplete header to fail, didn't")
	}
	if rest != input {
		t.Errorf("expected input to be left untouched on failure")
	}
}

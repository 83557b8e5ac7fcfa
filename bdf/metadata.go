package bdf

import (
	"github.com/npillmayer/bdf/geom"
)

// Metadata is the mandatory BDF header: format version, font name, point
// size with device resolution, and the font-wide bounding box.
type Metadata struct {
	Version     float32
	Name        string
	PointSize   int32
	ResolutionX uint32
	ResolutionY uint32
	BoundingBox geom.BoundingBox
}

// parseMetadata parses the four header statements, strictly in order:
// STARTFONT, FONT, SIZE, FONTBOUNDINGBOX. COMMENT lines may appear between
// any two of them. A missing or malformed statement fails the header as a
// whole; no partial metadata is produced.
func parseMetadata(in string) (Metadata, string, error) {
	version, rest, err := statement(skipComments(in), "STARTFONT", parseFloat)
	if err != nil {
		return Metadata{}, in, err
	}
	name, rest, err := statement(skipComments(rest), "FONT", parseLine)
	if err != nil {
		return Metadata{}, in, err
	}
	size, rest, err := statement(skipComments(rest), "SIZE", parseSize)
	if err != nil {
		return Metadata{}, in, err
	}
	bbox, rest, err := statement(skipComments(rest), "FONTBOUNDINGBOX", parseBBox)
	if err != nil {
		return Metadata{}, in, err
	}
	md := Metadata{
		Version:     version,
		Name:        name,
		PointSize:   size.points,
		ResolutionX: size.resX,
		ResolutionY: size.resY,
		BoundingBox: bbox,
	}
	trace().Debugf("parsed BDF %g header for font %q", version, name)
	return md, rest, nil
}

type sizeSpec struct {
	points     int32
	resX, resY uint32
}

// parseSize parses the SIZE payload: point size plus x/y device resolution.
func parseSize(in string) (sizeSpec, string, error) {
	points, rest, err := parseInt(in)
	if err != nil {
		return sizeSpec{}, in, err
	}
	if rest, err = hspace1(rest); err != nil {
		return sizeSpec{}, in, err
	}
	resX, rest, err := parseUint(rest)
	if err != nil {
		return sizeSpec{}, in, err
	}
	if rest, err = hspace1(rest); err != nil {
		return sizeSpec{}, in, err
	}
	resY, rest, err := parseUint(rest)
	if err != nil {
		return sizeSpec{}, in, err
	}
	return sizeSpec{points: points, resX: resX, resY: resY}, rest, nil
}

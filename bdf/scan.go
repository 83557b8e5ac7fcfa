package bdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/bdf/geom"
)

// Statement grammar primitives.
//
// A BDF file is a sequence of lines "KEYWORD arguments… EOL". Every parsing
// function below takes the input text and returns the parsed value together
// with the unconsumed rest, threading the remainder left-to-right, the way
// parser combinators do. On failure the original input is returned, so
// callers can probe for optional statements without bookkeeping.

// errNoKeyword signals that the expected keyword is not next in the input.
// Callers probing for optional statements test for it with errors.Is;
// anything else is a hard syntax error within a statement.
var errNoKeyword = errors.New("keyword not found")

// payloadParser consumes the argument part of a statement and returns the
// parsed value plus the unconsumed rest of the input.
type payloadParser[T any] func(in string) (T, string, error)

// statement parses a line of the form
//
//	<whitespace>* KEYWORD <hspace>+ payload <hspace>* <EOL>?
//
// Leading whitespace may span lines. Both Unix and Windows line endings are
// accepted; the terminator is optional so a statement may close the input.
func statement[T any](in string, kw string, payload payloadParser[T]) (T, string, error) {
	var none T
	rest, ok := literal(skipSpace(in), kw)
	if !ok {
		return none, in, fmt.Errorf("%w: %s", errNoKeyword, kw)
	}
	rest, err := hspace1(rest)
	if err != nil {
		return none, in, fmt.Errorf("statement %s: %w", kw, err)
	}
	val, rest, err := payload(rest)
	if err != nil {
		return none, in, fmt.Errorf("statement %s: %w", kw, err)
	}
	rest, _ = lineEnding(skipHSpace(rest))
	return val, rest, nil
}

// bareStatement parses a keyword-only line (BITMAP, ENDCHAR, ENDPROPERTIES,
// ENDFONT): optional leading whitespace, the keyword, optional horizontal
// whitespace, and an optional line terminator.
func bareStatement(in string, kw string) (string, error) {
	rest, ok := literal(skipSpace(in), kw)
	if !ok {
		return in, fmt.Errorf("%w: %s", errNoKeyword, kw)
	}
	rest, _ = lineEnding(skipHSpace(rest))
	return rest, nil
}

// skipComments consumes whitespace and zero or more COMMENT lines. The
// comment body is optional and discarded.
func skipComments(in string) string {
	rest := skipSpace(in)
	for {
		r, ok := literal(rest, "COMMENT")
		if !ok {
			return rest
		}
		_, r = restOfLine(skipHSpace(r))
		r, _ = lineEnding(r)
		rest = skipSpace(r)
	}
}

// --- Lexical helpers -------------------------------------------------------

func isHSpace(c byte) bool { return c == ' ' || c == '\t' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// literal matches word at the start of in. The match must end at a word
// boundary, i.e. whitespace or end-of-input, so that e.g. ENDCHAR does not
// swallow the prefix of an ENDCHARS property key.
func literal(in string, word string) (string, bool) {
	if !strings.HasPrefix(in, word) {
		return in, false
	}
	rest := in[len(word):]
	if rest != "" && !isSpace(rest[0]) {
		return in, false
	}
	return rest, true
}

// skipSpace consumes any whitespace, including line terminators.
func skipSpace(in string) string {
	i := 0
	for i < len(in) && isSpace(in[i]) {
		i++
	}
	return in[i:]
}

// skipHSpace consumes horizontal whitespace only.
func skipHSpace(in string) string {
	i := 0
	for i < len(in) && isHSpace(in[i]) {
		i++
	}
	return in[i:]
}

// hspace1 requires at least one horizontal whitespace character.
func hspace1(in string) (string, error) {
	if in == "" || !isHSpace(in[0]) {
		return in, errors.New("expected whitespace")
	}
	return skipHSpace(in), nil
}

// lineEnding consumes a single "\n" or "\r\n" if present.
func lineEnding(in string) (string, bool) {
	if strings.HasPrefix(in, "\r\n") {
		return in[2:], true
	}
	if strings.HasPrefix(in, "\n") {
		return in[1:], true
	}
	return in, false
}

// restOfLine returns everything up to (excluding) the next line terminator.
func restOfLine(in string) (string, string) {
	i := 0
	for i < len(in) && in[i] != '\n' && in[i] != '\r' {
		i++
	}
	return in[:i], in[i:]
}

// token returns the next run of non-whitespace characters.
func token(in string) (string, string) {
	i := 0
	for i < len(in) && !isSpace(in[i]) {
		i++
	}
	return in[:i], in[i:]
}

// --- Payload parsers -------------------------------------------------------

// parseLine takes the remainder of the line, verbatim, as the payload.
// Used for FONT and STARTCHAR, whose argument may contain spaces.
func parseLine(in string) (string, string, error) {
	line, rest := restOfLine(in)
	return line, rest, nil
}

// parseInt parses a signed decimal integer.
func parseInt(in string) (int32, string, error) {
	i, rest, err := parseInteger(in)
	return int32(i), rest, err
}

// parseUint parses an unsigned decimal integer.
func parseUint(in string) (uint32, string, error) {
	tok, rest := token(in)
	if tok == "" {
		return 0, in, errors.New("expected unsigned integer")
	}
	u, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, in, fmt.Errorf("not an unsigned integer: %q", tok)
	}
	return uint32(u), rest, nil
}

// parseInteger parses a signed decimal integer with full int64 range,
// as needed for property values.
func parseInteger(in string) (int64, string, error) {
	tok, rest := token(in)
	if tok == "" {
		return 0, in, errors.New("expected integer")
	}
	i, err := strconv.ParseInt(strings.TrimPrefix(tok, "+"), 10, 64)
	if err != nil {
		return 0, in, fmt.Errorf("not an integer: %q", tok)
	}
	return i, rest, nil
}

// parseFloat parses the remainder of the line as a decimal number.
// STARTFONT versions are short ("2.1"), but fonts in the wild pad them.
func parseFloat(in string) (float32, string, error) {
	line, rest := restOfLine(in)
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 32)
	if err != nil {
		return 0, in, fmt.Errorf("not a number: %q", line)
	}
	return float32(f), rest, nil
}

// parseCoord parses two whitespace-separated integers as a coordinate.
func parseCoord(in string) (geom.Coord, string, error) {
	x, rest, err := parseInt(in)
	if err != nil {
		return geom.Coord{}, in, err
	}
	rest, err = hspace1(rest)
	if err != nil {
		return geom.Coord{}, in, err
	}
	y, rest, err := parseInt(rest)
	if err != nil {
		return geom.Coord{}, in, err
	}
	return geom.Coord{X: x, Y: y}, rest, nil
}

// parseBBox parses the four integers of a BBX or FONTBOUNDINGBOX payload:
// size-x, size-y, offset-x, offset-y.
func parseBBox(in string) (geom.BoundingBox, string, error) {
	size, rest, err := parseCoord(in)
	if err != nil {
		return geom.BoundingBox{}, in, err
	}
	rest, err = hspace1(rest)
	if err != nil {
		return geom.BoundingBox{}, in, err
	}
	offset, rest, err := parseCoord(rest)
	if err != nil {
		return geom.BoundingBox{}, in, err
	}
	if size.X < 0 || size.Y < 0 {
		return geom.BoundingBox{}, in, fmt.Errorf("negative bounding box size %v", size)
	}
	return geom.BoundingBox{Offset: offset, Size: size}, rest, nil
}

/*
Package bdf parses Glyph Bitmap Distribution Format (BDF) font files.

BDF is a legacy text format for bitmap fonts, still in widespread use for
terminal fonts, embedded displays and X11 bitmap fonts. This package turns
the textual representation into a strongly-typed Font value, ready for
consumption by rasterizers or display drivers. The intended audience are:

▪︎ glyph rasterizers and display drivers for pixel displays

▪︎ font conversion tools needing the full structure of a BDF file

Reading font files from disk and drawing glyphs onto a surface are out of
scope; clients hand in a byte slice and receive a Font.

The grammar of BDF is strictly line-oriented: a file is a sequence of
statements of the form "KEYWORD arguments… end-of-line", grouped into a
header, an optional properties table, and a list of glyph blocks. Parsing
is a pure function over the input bytes, holds no shared state, and may be
called concurrently on independent inputs.

Status

Complete for BDF 2.1. Vertical writing-mode metrics introduced with 2.2
(SWIDTH1/DWIDTH1/VVECTOR) are not supported.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bdf

import (
	"fmt"

	"github.com/npillmayer/bdf/core"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces to a tracer with key 'bdf.fonts'.
func trace() tracing.Trace {
	return tracing.Select("bdf.fonts")
}

// --- Errors ----------------------------------------------------------------

// Section identifies the part of a BDF file a parse error occurred in.
// The taxonomy is deliberately coarse: errors name the failing section,
// not the malformed token.
type Section int

// Sections of a BDF file, in file order.
const (
	SectionMetadata Section = iota + 1
	SectionProperties
	SectionGlyphs
	SectionEndOfFile
)

func (s Section) String() string {
	switch s {
	case SectionMetadata:
		return "metadata"
	case SectionProperties:
		return "properties"
	case SectionGlyphs:
		return "glyphs"
	case SectionEndOfFile:
		return "end of file"
	}
	return "unknown"
}

// ParseError is the error type returned by Parse. It carries the section
// of the font file that failed to parse. Callers never receive a partial
// Font together with a ParseError.
type ParseError struct {
	Section Section
	fault   error // detail for debugging; not part of the public taxonomy
}

func errSection(s Section, fault error) *ParseError {
	trace().Errorf("BDF %s section malformed: %v", s, fault)
	return &ParseError{Section: s, fault: fault}
}

func (e *ParseError) Error() string {
	if e.fault == nil {
		return fmt.Sprintf("BDF %s section malformed", e.Section)
	}
	return fmt.Sprintf("BDF %s section malformed: %v", e.Section, e.fault)
}

func (e *ParseError) Unwrap() error { return e.fault }

// ErrorCode makes ParseError a core.AppError.
func (e *ParseError) ErrorCode() int { return core.EINVALID }

// UserMessage makes ParseError a core.AppError.
func (e *ParseError) UserMessage() string {
	return fmt.Sprintf("BDF font data: %s section malformed", e.Section)
}

var _ core.AppError = &ParseError{}

// Package geom implements the font-local cartesian geometry of BDF fonts:
// integer coordinates with the Y-axis pointing up, and bounding boxes made
// of an offset and a size.
//
/*
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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package geom

import "fmt"

// Coord is a point in font-local coordinates. The Y-axis points up,
// i.e., positive Y is above the baseline.
type Coord struct {
	X, Y int32
}

// Origin is origin
var Origin = Coord{0, 0}

// Pt is a shorthand constructor for Coord.
func Pt(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Plus adds two coordinates componentwise.
func (c Coord) Plus(other Coord) Coord {
	return Coord{c.X + other.X, c.Y + other.Y}
}

// Min returns the componentwise minimum of two coordinates.
func (c Coord) Min(other Coord) Coord {
	return Coord{min32(c.X, other.X), min32(c.Y, other.Y)}
}

// Max returns the componentwise maximum of two coordinates.
func (c Coord) Max(other Coord) Coord {
	return Coord{max32(c.X, other.X), max32(c.Y, other.Y)}
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// --- Bounding boxes --------------------------------------------------------

// BoundingBox is an offset + size rectangle. Offset addresses the lower-left
// pixel of the box; Size counts pixels and is non-negative for boxes coming
// out of a successful parse.
type BoundingBox struct {
	Offset Coord
	Size   Coord
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%dx%d%+d%+d]", b.Size.X, b.Size.Y, b.Offset.X, b.Offset.Y)
}

// Empty is true if the box covers no pixels, i.e., a size component is zero.
func (b BoundingBox) Empty() bool {
	return b.Size.X == 0 || b.Size.Y == 0
}

// UpperRight returns the coordinate of the top-right pixel of the box.
// Not meaningful for empty boxes.
func (b BoundingBox) UpperRight() Coord {
	return b.Offset.Plus(b.Size).Plus(Coord{-1, -1})
}

// Contains tells if p lies on a pixel covered by the box.
func (b BoundingBox) Contains(p Coord) bool {
	if b.Empty() {
		return false
	}
	ur := b.UpperRight()
	return p.X >= b.Offset.X && p.X <= ur.X && p.Y >= b.Offset.Y && p.Y <= ur.Y
}

// Union returns the smallest bounding box covering both a and b.
// Empty boxes are the identity element: the other operand is returned
// unchanged rather than folded into a degenerate rectangle.
//
// Union requires non-negative sizes. A negative size means malformed input
// that parsing should have rejected; Union panics on it.
func Union(a, b BoundingBox) BoundingBox {
	if a.Size.X < 0 || a.Size.Y < 0 || b.Size.X < 0 || b.Size.Y < 0 {
		panic(fmt.Sprintf("bounding box union with negative size: %v, %v", a, b))
	}
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	offset := a.Offset.Min(b.Offset)
	ur := a.UpperRight().Max(b.UpperRight())
	return BoundingBox{
		Offset: offset,
		Size:   ur.Plus(Coord{1, 1}).Plus(Coord{-offset.X, -offset.Y}),
	}
}

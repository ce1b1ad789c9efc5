// seehuhn.de/go/canvas - a fluent 2D drawing surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// arcConst is the control point distance for approximating a quarter
// circle of radius 1 by a cubic Bézier curve.
const arcConst = 0.5522847498

// maxEllipseSegments bounds the number of segments of DrawEllipse.
const maxEllipseSegments = 1 << 20

// FillPath fills an arbitrary path with the current fill style, using
// the nonzero winding rule or, if evenOdd is set, the even-odd rule.
func (s *Surface) FillPath(p *path.Data, evenOdd bool) *Surface {
	s.fillPath(p, &s.style, evenOdd)
	return s
}

// StrokePath strokes an arbitrary path with the current stroke style.
func (s *Surface) StrokePath(p *path.Data) *Surface {
	s.strokePath(p, &s.style)
	return s
}

// DrawLine strokes the line from (x1, y1) to (x2, y2).
func (s *Surface) DrawLine(x1, y1, x2, y2 float64) *Surface {
	p := &path.Data{
		Cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo},
		Coords: []vec.Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}},
	}
	s.strokePath(p, &s.style)
	return s
}

// DrawPolygon strokes the closed polygon through points.
// At least two points are required; otherwise an error with code
// DegeneratePath is recorded and nothing is drawn.
func (s *Surface) DrawPolygon(points []Point) *Surface {
	if p := s.polygonPath(points); p != nil {
		s.strokePath(p, &s.style)
	}
	return s
}

// FillPolygon fills the polygon through points, see DrawPolygon.
func (s *Surface) FillPolygon(points []Point) *Surface {
	if p := s.polygonPath(points); p != nil {
		s.fillPath(p, &s.style, false)
	}
	return s
}

func (s *Surface) polygonPath(points []Point) *path.Data {
	if len(points) < 2 {
		s.fail(&Error{ErrorCode: DegeneratePath, Detail: fmt.Sprintf("polygon with %d points", len(points))})
		return nil
	}
	p := &path.Data{
		Cmds:   make([]path.Command, 0, len(points)+1),
		Coords: make([]vec.Vec2, 0, len(points)),
	}
	for i, pt := range points {
		cmd := path.CmdLineTo
		if i == 0 {
			cmd = path.CmdMoveTo
		}
		p.Cmds = append(p.Cmds, cmd)
		p.Coords = append(p.Coords, vec.Vec2{X: pt.X, Y: pt.Y})
	}
	p.Cmds = append(p.Cmds, path.CmdClose)
	return p
}

// DrawRandomLines strokes n lines between random points of the surface.
// n = 0 draws one line.
func (s *Surface) DrawRandomLines(n int) *Surface {
	if n == 0 {
		n = 1
	}
	w, h := float64(s.Width()), float64(s.Height())
	for range n {
		x1, y1 := w*s.opts.random.Rand(), h*s.opts.random.Rand()
		x2, y2 := w*s.opts.random.Rand(), h*s.opts.random.Rand()
		s.DrawLine(x1, y1, x2, y2)
	}
	return s
}

// DrawBezier strokes the cubic Bézier curve from p1 to p2 with control
// points cp1 and cp2.
func (s *Surface) DrawBezier(p1, p2, cp1, cp2 Point) *Surface {
	p := &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdCubeTo},
		Coords: []vec.Vec2{
			{X: p1.X, Y: p1.Y},
			{X: cp1.X, Y: cp1.Y}, {X: cp2.X, Y: cp2.Y}, {X: p2.X, Y: p2.Y},
		},
	}
	s.strokePath(p, &s.style)
	return s
}

// circlePath returns a closed circle, or nil for a negative radius.
func circlePath(x, y, r float64) *path.Data {
	if r < 0 {
		return nil
	}
	return ellipseArcPath(x, y, r, r)
}

// ellipseArcPath returns an axis-aligned ellipse made of four cubic
// arcs, starting at angle 0 and running clockwise on screen.
func ellipseArcPath(x, y, rx, ry float64) *path.Data {
	kx, ky := arcConst*rx, arcConst*ry
	return &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose},
		Coords: []vec.Vec2{
			{X: x + rx, Y: y},
			{X: x + rx, Y: y + ky}, {X: x + kx, Y: y + ry}, {X: x, Y: y + ry},
			{X: x - kx, Y: y + ry}, {X: x - rx, Y: y + ky}, {X: x - rx, Y: y},
			{X: x - rx, Y: y - ky}, {X: x - kx, Y: y - ry}, {X: x, Y: y - ry},
			{X: x + kx, Y: y - ry}, {X: x + rx, Y: y - ky}, {X: x + rx, Y: y},
		},
	}
}

// DrawCircle strokes a circle. A negative radius draws nothing.
func (s *Surface) DrawCircle(x, y, radius float64) *Surface {
	if p := circlePath(x, y, radius); p != nil {
		s.strokePath(p, &s.style)
	}
	return s
}

// FillCircle fills a circle. A negative radius draws nothing.
func (s *Surface) FillCircle(x, y, radius float64) *Surface {
	if p := circlePath(x, y, radius); p != nil {
		s.fillPath(p, &s.style, false)
	}
	return s
}

// DrawEllipse strokes an ellipse around (x, y) with radii w and h,
// approximated by straight segments. The point at angle t is
//
//	(x + w·cos(t + offset1), y + h·sin(t + offset2))
//
// for t = 0, step, 2·step, ... below 2π, followed by a segment back to
// the start. Unequal offsets skew the curve. A step which is not
// positive, or which would need too many segments, records an error
// with code DegeneratePath.
func (s *Surface) DrawEllipse(x, y, w, h, offset1, offset2, step float64) *Surface {
	if !(step > 0) || 2*math.Pi/step > maxEllipseSegments {
		s.fail(&Error{ErrorCode: DegeneratePath, Detail: fmt.Sprintf("ellipse angle step %g", step)})
		return s
	}

	start := vec.Vec2{X: x + w*math.Cos(offset1), Y: y + h*math.Sin(offset2)}
	p := &path.Data{
		Cmds:   []path.Command{path.CmdMoveTo},
		Coords: []vec.Vec2{start},
	}
	for angle := 0.0; angle < 2*math.Pi; angle += step {
		p.Cmds = append(p.Cmds, path.CmdLineTo)
		p.Coords = append(p.Coords, vec.Vec2{
			X: x + w*math.Cos(angle+offset1),
			Y: y + h*math.Sin(angle+offset2),
		})
	}
	p.Cmds = append(p.Cmds, path.CmdLineTo)
	p.Coords = append(p.Coords, start)

	s.strokePath(p, &s.style)
	return s
}

// DrawRectangle strokes the outline of a rectangle.
func (s *Surface) DrawRectangle(x, y, w, h float64) *Surface {
	s.strokePath(rectPath(x, y, w, h), &s.style)
	return s
}

// FillRectangle fills a rectangle.
func (s *Surface) FillRectangle(x, y, w, h float64) *Surface {
	s.fillPath(rectPath(x, y, w, h), &s.style, false)
	return s
}

// DrawRoundedRectangle strokes a rectangle whose corners are quarter
// circles of radius r.
func (s *Surface) DrawRoundedRectangle(x, y, w, h, r float64) *Surface {
	s.strokePath(roundedRectPath(x, y, w, h, r), &s.style)
	return s
}

// FillRoundedRectangle fills a rectangle with rounded corners. If
// drawBorder is set, the outline is stroked after filling.
func (s *Surface) FillRoundedRectangle(x, y, w, h, r float64, drawBorder bool) *Surface {
	p := roundedRectPath(x, y, w, h, r)
	s.fillPath(p, &s.style, false)
	if drawBorder {
		s.strokePath(p, &s.style)
	}
	return s
}

// roundedRectPath traces the rectangle clockwise on screen, starting
// after the top left corner.
func roundedRectPath(x, y, w, h, r float64) *path.Data {
	k := arcConst * r
	x1, y1 := x+w, y+h
	return &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo,
			path.CmdLineTo, path.CmdCubeTo,
			path.CmdLineTo, path.CmdCubeTo,
			path.CmdLineTo, path.CmdCubeTo,
			path.CmdLineTo, path.CmdCubeTo,
			path.CmdClose,
		},
		Coords: []vec.Vec2{
			{X: x + r, Y: y},
			{X: x1 - r, Y: y},
			{X: x1 - r + k, Y: y}, {X: x1, Y: y + r - k}, {X: x1, Y: y + r},
			{X: x1, Y: y1 - r},
			{X: x1, Y: y1 - r + k}, {X: x1 - r + k, Y: y1}, {X: x1 - r, Y: y1},
			{X: x + r, Y: y1},
			{X: x + r - k, Y: y1}, {X: x, Y: y1 - r + k}, {X: x, Y: y1 - r},
			{X: x, Y: y + r},
			{X: x, Y: y + r - k}, {X: x + r - k, Y: y}, {X: x + r, Y: y},
		},
	}
}

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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// subpath is a flattened subpath, stored as a range of r.points.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// The outline is assembled from one quadrilateral per segment plus join
// and cap pieces. All pieces are oriented the same way and filled
// together with the nonzero rule, so overlaps are painted once.
// Zero-length subpaths produce no output.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if !(r.Width > 0) || math.IsInf(r.Width, 0) {
		return
	}
	r.flattenSubpaths(p)

	r.beginEdges()
	d := r.Width / 2
	for _, sp := range r.subpaths {
		r.strokeSubpath(r.points[sp.start:sp.end], sp.closed, d)
	}
	r.scan(nonZero, emit)
}

// flattenSubpaths splits p into polylines. Consecutive duplicate points
// are dropped, and a closed subpath does not repeat its first point.
func (r *Rasterizer) flattenSubpaths(p *path.Data) {
	r.points = r.points[:0]
	r.subpaths = r.subpaths[:0]
	if p == nil {
		return
	}

	start := 0
	open := false
	var first vec.Vec2

	finish := func(closed bool) {
		if !open {
			return
		}
		end := len(r.points)
		if closed && end-start > 1 && isZeroLength(r.points[start], r.points[end-1]) {
			end--
			r.points = r.points[:end]
		}
		if end-start > 1 {
			r.subpaths = append(r.subpaths, subpath{start: start, end: end, closed: closed})
		} else {
			r.points = r.points[:start]
		}
		open = false
	}
	begin := func(pt vec.Vec2) {
		start = len(r.points)
		r.points = append(r.points, pt)
		first = pt
		open = true
	}
	lineTo := func(_, b vec.Vec2) {
		if !open {
			begin(first)
		}
		if !isZeroLength(r.points[len(r.points)-1], b) {
			r.points = append(r.points, b)
		}
	}

	var cur vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			cur = p.Coords[k]
			begin(cur)
			k++
		case path.CmdLineTo:
			lineTo(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], lineTo)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			finish(true)
			// a new subpath starts at the first point of the closed one
			cur = first
		}
	}
	finish(false)
}

func isZeroLength(a, b vec.Vec2) bool {
	return b.Sub(a).Length() < zeroLengthThreshold
}

func unitTangent(a, b vec.Vec2) vec.Vec2 {
	d := b.Sub(a)
	return d.Mul(1 / d.Length())
}

// normal rotates t by 90 degrees.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		off := normal(unitTangent(a, b)).Mul(d)
		r.addPolygon(a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	}

	for i := 1; i < segs; i++ {
		prev := unitTangent(pts[i-1], pts[i])
		next := unitTangent(pts[i], pts[(i+1)%n])
		r.addJoin(pts[i], prev, next, d)
	}
	if closed {
		r.addJoin(pts[0], unitTangent(pts[n-1], pts[0]), unitTangent(pts[0], pts[1]), d)
		return
	}
	r.addCap(pts[0], unitTangent(pts[1], pts[0]), d)
	r.addCap(pts[n-1], unitTangent(pts[n-2], pts[n-1]), d)
}

// addJoin fills the gap on the outer side of the corner at p, where the
// path turns from direction t1 to direction t2.
func (r *Rasterizer) addJoin(p, t1, t2 vec.Vec2, d float64) {
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(cross) < collinearThreshold && dot > 0 {
		return
	}

	side := d
	if cross > 0 {
		side = -d
	}
	n1 := normal(t1).Mul(side)
	n2 := normal(t2).Mul(side)

	switch r.Join {
	case graphics.LineJoinRound:
		sweep := math.Atan2(n1.X*n2.Y-n1.Y*n2.X, n1.X*n2.X+n1.Y*n2.Y)
		if math.Abs(cross) < collinearThreshold {
			sweep = halfTurnThrough(n1, t1)
		}
		r.poly = append(r.poly[:0], p, p.Add(n1))
		r.appendArc(p, n1, sweep)
		r.fillPoly()
	case graphics.LineJoinBevel:
		r.addPolygon(p, p.Add(n1), p.Add(n2))
	default:
		cosHalf := math.Sqrt(max(0, (1+dot)/2))
		if cosHalf*r.MiterLimit < 1 {
			r.addPolygon(p, p.Add(n1), p.Add(n2))
			return
		}
		tip := p.Add(n1.Add(n2).Mul(1 / (1 + dot)))
		r.addPolygon(p, p.Add(n1), tip, p.Add(n2))
	}
}

// addCap adds the end cap at p, where u points away from the path.
func (r *Rasterizer) addCap(p, u vec.Vec2, d float64) {
	n := normal(u).Mul(d)
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := u.Mul(d)
		r.addPolygon(p.Add(n), p.Add(n).Add(ext), p.Sub(n).Add(ext), p.Sub(n))
	case graphics.LineCapRound:
		r.poly = append(r.poly[:0], p.Add(n))
		r.appendArc(p, n, halfTurnThrough(n, u))
		r.fillPoly()
	}
}

// halfTurnThrough returns the signed angle ±π of the half turn which
// starts at direction from and passes through direction via.
func halfTurnThrough(from, via vec.Vec2) float64 {
	if normal(from).X*via.X+normal(from).Y*via.Y >= 0 {
		return math.Pi
	}
	return -math.Pi
}

// appendArc appends the points of a circular arc around c to r.poly.
// The arc starts at c+radius (which is not appended) and turns by sweep.
func (r *Rasterizer) appendArc(c, radius vec.Vec2, sweep float64) {
	devR := r.deviceLength(radius)
	step := math.Pi / 2
	// arcs use a finer tolerance than curves
	if tol := r.flatness() / 4; devR > tol {
		step = min(step, 2*math.Acos(1-tol/devR))
	}
	steps := max(1, int(math.Ceil(math.Abs(sweep)/step)))
	if steps > 1<<12 {
		steps = 1 << 12
	}
	for i := 1; i <= steps; i++ {
		phi := sweep * float64(i) / float64(steps)
		sin, cos := math.Sincos(phi)
		r.poly = append(r.poly, c.Add(vec.Vec2{
			X: radius.X*cos - radius.Y*sin,
			Y: radius.X*sin + radius.Y*cos,
		}))
	}
}

func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	r.poly = append(r.poly[:0], pts...)
	r.fillPoly()
}

// fillPoly adds the edges of the closed polygon r.poly, reversing it if
// necessary so that every stroke piece has positive orientation.
func (r *Rasterizer) fillPoly() {
	pts := r.poly
	if len(pts) < 3 {
		return
	}
	var area float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	for i, a := range pts {
		r.addEdge(a, pts[(i+1)%len(pts)])
	}
}

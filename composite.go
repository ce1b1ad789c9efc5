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
	"math"
)

// compositeOp is a compositing operation. The Porter-Duff operators come
// first, followed by the blend modes which are composited source-over.
type compositeOp int

const (
	opSourceOver compositeOp = iota
	opSourceIn
	opSourceOut
	opSourceAtop
	opDestinationOver
	opDestinationIn
	opDestinationOut
	opDestinationAtop
	opLighter
	opCopy
	opXor

	opMultiply
	opScreen
	opOverlay
	opDarken
	opLighten
	opColorDodge
	opColorBurn
	opHardLight
	opSoftLight
	opDifference
	opExclusion
	opHue
	opSaturation
	opColor
	opLuminosity
)

var compositeNames = map[string]compositeOp{
	"source-over":      opSourceOver,
	"source-in":        opSourceIn,
	"source-out":       opSourceOut,
	"source-atop":      opSourceAtop,
	"destination-over": opDestinationOver,
	"destination-in":   opDestinationIn,
	"destination-out":  opDestinationOut,
	"destination-atop": opDestinationAtop,
	"lighter":          opLighter,
	"copy":             opCopy,
	"xor":              opXor,
	"multiply":         opMultiply,
	"screen":           opScreen,
	"overlay":          opOverlay,
	"darken":           opDarken,
	"lighten":          opLighten,
	"color-dodge":      opColorDodge,
	"color-burn":       opColorBurn,
	"hard-light":       opHardLight,
	"soft-light":       opSoftLight,
	"difference":       opDifference,
	"exclusion":        opExclusion,
	"hue":              opHue,
	"saturation":       opSaturation,
	"color":            opColor,
	"luminosity":       opLuminosity,
}

func parseCompositeOp(name string) (compositeOp, bool) {
	op, ok := compositeNames[name]
	return op, ok
}

// rgb is a colour without alpha, used by the blend functions.
type rgb [3]float64

// composite combines the source colour src (not premultiplied) with
// alpha sa into the NRGBA pixel dst. The result is mixed with the
// previous pixel value according to coverage, so that the operation only
// affects the painted part of the pixel.
func composite(dst []uint8, src Color, sa float64, coverage float32, op compositeOp) {
	if coverage <= 0 {
		return
	}
	da := float64(dst[3]) / 255
	dc := rgb{float64(dst[0]) / 255, float64(dst[1]) / 255, float64(dst[2]) / 255}
	sc := rgb{src.R, src.G, src.B}
	sa = min(max(sa, 0), 1)

	// fa and fb are the Porter-Duff fractions of source and destination
	var fa, fb float64
	switch op {
	case opSourceIn:
		fa, fb = da, 0
	case opSourceOut:
		fa, fb = 1-da, 0
	case opSourceAtop:
		fa, fb = da, 1-sa
	case opDestinationOver:
		fa, fb = 1-da, 1
	case opDestinationIn:
		fa, fb = 0, sa
	case opDestinationOut:
		fa, fb = 0, 1-sa
	case opDestinationAtop:
		fa, fb = 1-da, sa
	case opLighter:
		fa, fb = 1, 1
	case opCopy:
		fa, fb = 1, 0
	case opXor:
		fa, fb = 1-da, 1-sa
	default:
		fa, fb = 1, 1-sa
	}

	if op >= opMultiply {
		// mix the blended colour into the source where the backdrop exists
		b := blend(dc, sc, op)
		for i := range sc {
			sc[i] = (1-da)*sc[i] + da*b[i]
		}
	}

	// premultiplied result
	oa := sa*fa + da*fb
	var oc rgb
	for i := range oc {
		oc[i] = sa*fa*sc[i] + da*fb*dc[i]
	}
	if oa > 1 {
		// only "lighter" can exceed one
		for i := range oc {
			oc[i] = min(oc[i], 1)
		}
		oa = 1
	}

	// mix with the previous premultiplied value by coverage
	cov := float64(min(coverage, 1))
	ra := da + cov*(oa-da)
	if ra <= 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}
	for i := range oc {
		v := da*dc[i] + cov*(oc[i]-da*dc[i])
		dst[i] = roundChannel(v / ra)
	}
	dst[3] = roundChannel(ra)
}

// blend applies a separable or non-separable blend mode to backdrop cb
// and source cs.
func blend(cb, cs rgb, op compositeOp) rgb {
	switch op {
	case opHue:
		return setLum(setSat(cs, sat(cb)), lum(cb))
	case opSaturation:
		return setLum(setSat(cb, sat(cs)), lum(cb))
	case opColor:
		return setLum(cs, lum(cb))
	case opLuminosity:
		return setLum(cb, lum(cs))
	}
	var res rgb
	for i := range res {
		res[i] = blendChannel(cb[i], cs[i], op)
	}
	return res
}

func blendChannel(b, s float64, op compositeOp) float64 {
	switch op {
	case opMultiply:
		return b * s
	case opScreen:
		return b + s - b*s
	case opOverlay:
		return blendChannel(s, b, opHardLight)
	case opDarken:
		return min(b, s)
	case opLighten:
		return max(b, s)
	case opColorDodge:
		switch {
		case b == 0:
			return 0
		case s >= 1:
			return 1
		}
		return min(1, b/(1-s))
	case opColorBurn:
		switch {
		case b >= 1:
			return 1
		case s <= 0:
			return 0
		}
		return 1 - min(1, (1-b)/s)
	case opHardLight:
		if s <= 0.5 {
			return b * 2 * s
		}
		return blendChannel(b, 2*s-1, opScreen)
	case opSoftLight:
		if s <= 0.5 {
			return b - (1-2*s)*b*(1-b)
		}
		var d float64
		if b <= 0.25 {
			d = ((16*b-12)*b + 4) * b
		} else {
			d = math.Sqrt(b)
		}
		return b + (2*s-1)*(d-b)
	case opDifference:
		return math.Abs(b - s)
	case opExclusion:
		return b + s - 2*b*s
	}
	return s
}

func lum(c rgb) float64 {
	return 0.3*c[0] + 0.59*c[1] + 0.11*c[2]
}

func clipColor(c rgb) rgb {
	l := lum(c)
	n := min(c[0], c[1], c[2])
	x := max(c[0], c[1], c[2])
	for i := range c {
		if n < 0 {
			c[i] = l + (c[i]-l)*l/(l-n)
		}
		if x > 1 {
			c[i] = l + (c[i]-l)*(1-l)/(x-l)
		}
	}
	return c
}

func setLum(c rgb, l float64) rgb {
	d := l - lum(c)
	return clipColor(rgb{c[0] + d, c[1] + d, c[2] + d})
}

func sat(c rgb) float64 {
	return max(c[0], c[1], c[2]) - min(c[0], c[1], c[2])
}

func setSat(c rgb, s float64) rgb {
	lo, hi := 0, 0
	for i := range c {
		if c[i] < c[lo] {
			lo = i
		}
		if c[i] > c[hi] {
			hi = i
		}
	}
	if lo == hi {
		return rgb{}
	}
	mid := 3 - lo - hi
	var res rgb
	res[hi] = s
	res[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
	return res
}

// gaussianKernel returns a 1D Gaussian kernel with standard deviation
// sigma, covering three standard deviations on each side but at most
// maxHalf taps on each side. The weights are normalised as for the
// untruncated kernel, so a truncated kernel sums to less than one.
func gaussianKernel(sigma float64, maxHalf int) []float32 {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return []float32{1}
	}
	fullHalf := math.Ceil(3 * sigma)
	half := int(min(fullHalf, float64(max(maxHalf, 0))))
	kernel := make([]float32, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-x * x / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	if float64(half) < fullHalf {
		// area under the untruncated kernel
		sum = max(sum, sigma*math.Sqrt(2*math.Pi)*math.Erf((fullHalf+0.5)/(sigma*math.Sqrt2)))
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// blurMask blurs a w×h mask in place with a separable Gaussian of the
// given standard deviation. tmp must have the same length as mask.
func blurMask(mask, tmp []float32, w, h int, sigma float64) {
	// taps further out than the mask size only read zeros
	kernel := gaussianKernel(sigma, max(w, h))
	if len(kernel) == 1 {
		return
	}
	half := len(kernel) / 2

	for y := range h {
		row := mask[y*w : (y+1)*w]
		out := tmp[y*w : (y+1)*w]
		for x := range w {
			var acc float32
			for k, kv := range kernel {
				if sx := x + k - half; sx >= 0 && sx < w {
					acc += kv * row[sx]
				}
			}
			out[x] = acc
		}
	}
	for x := range w {
		for y := range h {
			var acc float32
			for k, kv := range kernel {
				if sy := y + k - half; sy >= 0 && sy < h {
					acc += kv * tmp[sy*w+x]
				}
			}
			mask[y*w+x] = acc
		}
	}
}

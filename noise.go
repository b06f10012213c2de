package triangler

import (
	"image"
	"image/color"
	"math"
)

// prng is a Park-Miller linear congruential generator. The rendered output
// only needs film-grain texture, not statistical quality.
type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

// Noise applies a monochrome grain filter over the image, like Adobe's grain
// effect. amount scales the grain strength in byte units.
func Noise(amount int, src image.Image, w, h int) *image.NRGBA {
	noiseImg := image.NewNRGBA(image.Rect(0, 0, w, h))
	prng := &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1.0,
		div:       1.0 / 0x7fffffff,
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			noise := (prng.randomSeed() - 0.1) * float64(amount)
			r, g, b, a := src.At(x, y).RGBA()
			rf, gf, bf := float64(r>>8), float64(g>>8), float64(b>>8)
			// Skip pixels the grain would push past the byte limit.
			if math.Abs(rf+noise) < 255 && math.Abs(gf+noise) < 255 && math.Abs(bf+noise) < 255 {
				rf += noise
				gf += noise
				bf += noise
			}
			// Clamp before the byte conversion; converting a negative
			// float to uint8 is implementation-dependent.
			r2 := uint8(Max(0, Min(255, rf)))
			g2 := uint8(Max(0, Min(255, gf)))
			b2 := uint8(Max(0, Min(255, bf)))
			noiseImg.Set(x, y, color.RGBA{R: r2, G: g2, B: b2, A: uint8(a)})
		}
	}
	return noiseImg
}

func (prng *prng) nextLongRand(seed int) int {
	lo := prng.a * (seed & 0xffff)
	hi := prng.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	lo += hi >> 15
	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	return lo
}

func (prng *prng) randomSeed() float64 {
	prng.randomNum = prng.nextLongRand(prng.randomNum)
	return float64(prng.randomNum) * prng.div
}

package assets

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// NoisePixels returns RGBA grain for a w by h overlay. Each pixel is a grey
// level with alpha scaled by strength (0 to 1).
func NoisePixels(w, h int, seed int64, strength float64) []byte {
	r := rand.New(rand.NewSource(seed))
	pix := make([]byte, w*h*4)
	a := min(max(strength, 0), 1)
	for i := 0; i < len(pix); i += 4 {
		v := byte(r.Intn(256))
		alpha := byte(float64(r.Intn(256)) * a)
		// premultiplied
		g := byte(uint16(v) * uint16(alpha) / 255)
		pix[i], pix[i+1], pix[i+2], pix[i+3] = g, g, g, alpha
	}
	return pix
}

// NoiseImage builds the grain overlay image.
func NoiseImage(w, h int, seed int64, strength float64) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.WritePixels(NoisePixels(w, h, seed, strength))
	return img
}

package testsupport

import (
	"image"
	"image/color"
)

// GridImage renders a 64x64 image whose 8x8 cells are individually dark or
// light, giving tests direct control over average-hash bits. Cells are indexed
// row-major from the top left.
func GridImage(darkCells ...int) image.Image {
	dark := make(map[int]bool, len(darkCells))
	for _, cell := range darkCells {
		dark[cell] = true
	}

	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			cell := (y/8)*8 + x/8
			shade := uint8(0xE0)
			if dark[cell] {
				shade = 0x10
			}
			img.SetGray(x, y, color.Gray{Y: shade})
		}
	}
	return img
}

// SolidImage renders a uniform 64x64 gray image.
func SolidImage(shade uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetGray(x, y, color.Gray{Y: shade})
		}
	}
	return img
}

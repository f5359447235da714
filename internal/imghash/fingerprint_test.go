package imghash

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/bits"
	"testing"
)

func TestFromBitsRoundtrip(t *testing.T) {
	fp := FromBits(0xDEADBEEF12345678)
	if fp.Bits() != 0xDEADBEEF12345678 {
		t.Fatalf("bits lost: %016x", fp.Bits())
	}
	if fp.IsZero() {
		t.Fatalf("reconstructed fingerprint should not be zero")
	}
}

func TestDistanceCountsDifferingBits(t *testing.T) {
	a := FromBits(0)
	b := FromBits(0b1011)
	want := bits.OnesCount64(0b1011)
	if got := a.Distance(b); got != want {
		t.Fatalf("distance = %d, want %d", got, want)
	}
	if got := a.Distance(a); got != 0 {
		t.Fatalf("self distance = %d", got)
	}
}

func TestZeroFingerprintIsMaximallyDistant(t *testing.T) {
	var zero Fingerprint
	if !zero.IsZero() {
		t.Fatalf("expected zero fingerprint")
	}
	if got := zero.Distance(FromBits(42)); got != Bits {
		t.Fatalf("distance = %d, want %d", got, Bits)
	}
}

func TestString(t *testing.T) {
	if got := FromBits(0xAB).String(); got != "00000000000000ab" {
		t.Fatalf("unexpected hex: %s", got)
	}
}

func TestFromReaderDecodesPNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			shade := uint8(0x10)
			if x >= 8 {
				shade = 0xF0
			}
			img.SetGray(x, y, color.Gray{Y: shade})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	fromReader, err := FromReader(&buf)
	if err != nil {
		t.Fatalf("from reader: %v", err)
	}
	fromImage, err := FromImage(img)
	if err != nil {
		t.Fatalf("from image: %v", err)
	}
	if fromReader.Distance(fromImage) != 0 {
		t.Fatalf("decode path changed the fingerprint: %s vs %s", fromReader, fromImage)
	}
}

func TestFromReaderRejectsGarbage(t *testing.T) {
	if _, err := FromReader(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatalf("expected decode error")
	}
}

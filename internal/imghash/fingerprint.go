package imghash

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/webp"
)

// Bits is the fingerprint width.
const Bits = 64

// Fingerprint is a 64-bit average-hash of an image.
type Fingerprint struct {
	hash *goimagehash.ImageHash
}

// FromImage computes the fingerprint of a decoded image.
func FromImage(img image.Image) (Fingerprint, error) {
	hash, err := goimagehash.AverageHash(img)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("average hash: %w", err)
	}
	return Fingerprint{hash: hash}, nil
}

// FromReader decodes an image from r and computes its fingerprint.
// PNG, JPEG, and WebP are supported.
func FromReader(r io.Reader) (Fingerprint, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img)
}

// FromBits reconstructs a fingerprint from its 64-bit representation.
func FromBits(bits uint64) Fingerprint {
	return Fingerprint{hash: goimagehash.NewImageHash(bits, goimagehash.AHash)}
}

// Bits returns the fingerprint's 64-bit representation.
func (f Fingerprint) Bits() uint64 {
	if f.hash == nil {
		return 0
	}
	return f.hash.GetHash()
}

// IsZero reports whether the fingerprint was never computed.
func (f Fingerprint) IsZero() bool {
	return f.hash == nil
}

// Distance returns the Hamming distance between two fingerprints. An
// uncomputed fingerprint is maximally distant from everything.
func (f Fingerprint) Distance(other Fingerprint) int {
	if f.hash == nil || other.hash == nil {
		return Bits
	}
	distance, err := f.hash.Distance(other.hash)
	if err != nil {
		return Bits
	}
	return distance
}

// String renders the fingerprint as zero-padded hex.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", f.Bits())
}

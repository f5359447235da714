// Package imghash computes 64-bit average-luminance perceptual fingerprints
// of card images and compares them by Hamming distance.
//
// The fingerprint is deterministic for identical pixel content and stable
// under lossy re-encoding, which is what makes it usable for matching local
// card scans against online thumbnails where a byte hash would never agree.
package imghash

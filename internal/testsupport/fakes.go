package testsupport

import (
	"context"
	"fmt"
	"image"

	"carddex/internal/imghash"
	"carddex/internal/zone"
)

// FakeFetcher serves canned listing pages and thumbnails keyed by path and
// image URL. Paths or URLs present in Errors fail with the mapped error.
type FakeFetcher struct {
	Pages  map[string][]zone.Card
	Images map[string]image.Image
	Errors map[string]error
}

func (f *FakeFetcher) FetchCards(_ context.Context, path string) ([]zone.Card, error) {
	if err, ok := f.Errors[path]; ok {
		return nil, err
	}
	cards, ok := f.Pages[path]
	if !ok {
		return nil, fmt.Errorf("no page registered for %s", path)
	}
	return cards, nil
}

func (f *FakeFetcher) FetchImage(_ context.Context, imageURL string) (image.Image, error) {
	if err, ok := f.Errors[imageURL]; ok {
		return nil, err
	}
	img, ok := f.Images[imageURL]
	if !ok {
		return nil, fmt.Errorf("no image registered for %s", imageURL)
	}
	return img, nil
}

// FakeAssets serves predetermined filenames and fingerprints per set name.
type FakeAssets struct {
	Files        map[string][]string
	Fingerprints map[string]uint64
	ListErr      error
	HashErrs     map[string]error
}

func (f *FakeAssets) List(setName string) ([]string, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	files, ok := f.Files[setName]
	if !ok {
		return nil, fmt.Errorf("no assets registered for %s", setName)
	}
	return files, nil
}

func (f *FakeAssets) Fingerprint(_, filename string) (imghash.Fingerprint, error) {
	if err, ok := f.HashErrs[filename]; ok {
		return imghash.Fingerprint{}, err
	}
	bits, ok := f.Fingerprints[filename]
	if !ok {
		return imghash.Fingerprint{}, fmt.Errorf("no fingerprint registered for %s", filename)
	}
	return imghash.FromBits(bits), nil
}

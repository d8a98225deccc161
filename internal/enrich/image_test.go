package enrich_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/quicktrip/internal/enrich"
	"github.com/neexbeast/quicktrip/internal/provider"
)

type fakePhotos struct {
	urls  []string
	err   error
	query string
	per   int
}

func (f *fakePhotos) Search(_ context.Context, query string, perPage int) ([]string, error) {
	f.query, f.per = query, perPage
	return f.urls, f.err
}

type fixedRand struct {
	pick int
	n    int
}

func (r *fixedRand) IntN(n int) int {
	r.n = n
	return r.pick
}

func TestImageFinder_PicksAmongTopThree(t *testing.T) {
	photos := &fakePhotos{urls: []string{"a", "b", "c", "d", "e"}}
	rng := &fixedRand{pick: 2}

	got := enrich.NewImageFinder(photos, rng).Find(context.Background(), "Bath, UK")
	assert.Equal(t, "c", got)
	assert.Equal(t, 3, rng.n)
	assert.Equal(t, "Bath, UK travel landmark", photos.query)
	assert.Equal(t, 3, photos.per)
}

func TestImageFinder_FewerThanThree(t *testing.T) {
	rng := &fixedRand{pick: 0}
	got := enrich.NewImageFinder(&fakePhotos{urls: []string{"only"}}, rng).Find(context.Background(), "Bath")
	assert.Equal(t, "only", got)
	assert.Equal(t, 1, rng.n)
}

func TestImageFinder_SeededIsDeterministic(t *testing.T) {
	photos := &fakePhotos{urls: []string{"a", "b", "c"}}
	first := enrich.NewImageFinder(photos, rand.New(rand.NewPCG(1, 2))).Find(context.Background(), "York")
	second := enrich.NewImageFinder(photos, rand.New(rand.NewPCG(1, 2))).Find(context.Background(), "York")
	assert.Equal(t, first, second)
	assert.Contains(t, []string{"a", "b", "c"}, first)
}

func TestImageFinder_Defaults(t *testing.T) {
	unavailable := &fakePhotos{err: provider.ErrUnavailable}

	bath := enrich.NewImageFinder(unavailable, &fixedRand{}).Find(context.Background(), "Bath, UK")
	assert.Equal(t, enrich.DefaultImage("bath"), bath)
	assert.NotEqual(t, enrich.DefaultImageURL, bath)

	unknown := enrich.NewImageFinder(nil, &fixedRand{}).Find(context.Background(), "Timbuktu")
	assert.Equal(t, enrich.DefaultImageURL, unknown)

	empty := enrich.NewImageFinder(&fakePhotos{}, &fixedRand{}).Find(context.Background(), "BRIGHTON")
	assert.Equal(t, enrich.DefaultImage("Brighton, UK"), empty)
}

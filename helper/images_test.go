package helper

import (
	"testing"

	"travel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMainImageEmpty(t *testing.T) {
	assert.Empty(t, NormalizeMainImage(nil))
	assert.Empty(t, NormalizeMainImage([]model.Image{}))
}

func TestNormalizeMainImagePromotesFirst(t *testing.T) {
	images := NormalizeMainImage([]model.Image{
		{Url: "a.jpg"},
		{Url: "b.jpg"},
	})

	assert.True(t, images[0].IsMain)
	assert.False(t, images[1].IsMain)
}

func TestNormalizeMainImageFirstMarkedWins(t *testing.T) {
	images := NormalizeMainImage([]model.Image{
		{Url: "a.jpg"},
		{Url: "b.jpg", IsMain: true},
		{Url: "c.jpg", IsMain: true},
	})

	assert.False(t, images[0].IsMain)
	assert.True(t, images[1].IsMain)
	assert.False(t, images[2].IsMain)
}

func TestNormalizeMainImageAfterRemovingMain(t *testing.T) {
	images := []model.Image{
		{Url: "a.jpg", IsMain: true},
		{Url: "b.jpg"},
		{Url: "c.jpg"},
	}

	// drop the main image, as the admin form does
	images = NormalizeMainImage(images[1:])

	assert.Len(t, images, 2)
	assert.True(t, images[0].IsMain)
	assert.False(t, images[1].IsMain)
}

func TestNormalizeMainImageSingle(t *testing.T) {
	images := NormalizeMainImage([]model.Image{{Url: "only.jpg"}})
	assert.True(t, images[0].IsMain)
}

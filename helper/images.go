package helper

import "travel_manager/model"

// NormalizeMainImage enforces the image-set invariant: a non-empty set has exactly
// one main image. The first marked entry wins; if none is marked, the first image
// is promoted. Extra marks are cleared.
func NormalizeMainImage(images []model.Image) []model.Image {
	if len(images) == 0 {
		return images
	}

	mainIdx := -1
	for i := range images {
		if images[i].IsMain {
			mainIdx = i
			break
		}
	}
	if mainIdx == -1 {
		mainIdx = 0
	}

	for i := range images {
		images[i].IsMain = i == mainIdx
	}
	return images
}

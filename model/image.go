package model

// Image is one entry of an image set stored as a JSON column.
// The set invariant: exactly one entry has IsMain true while the set is non-empty.
type Image struct {
	Url    string `json:"url" validate:"required,url"`
	Alt    string `json:"alt"`
	IsMain bool   `json:"isMain"`
}

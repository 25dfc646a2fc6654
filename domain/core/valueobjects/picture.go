package valueobjects

import (
	"strings"

	pkgerrors "catalog-backend/pkg/errors"
)

// Picture bounds. Kept here because the picture validates itself at
// construction; the rules package re-exports these same values.
const (
	PictureNameMaxLength = 200
	PictureURLMaxLength  = 500
)

// Picture is a name and URL pair describing an uploaded image. The zero
// value is the well-known Empty picture, meaning "no picture".
type Picture struct {
	name string
	url  string
}

// NewPicture creates a validated Picture.
func NewPicture(name, url string) (Picture, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)

	if name == "" {
		return Picture{}, pkgerrors.NewPictureNameEmpty()
	}
	if url == "" {
		return Picture{}, pkgerrors.NewPictureURLEmpty()
	}
	if len(name) > PictureNameMaxLength {
		return Picture{}, pkgerrors.NewPictureNameTooLong(PictureNameMaxLength)
	}
	if len(url) > PictureURLMaxLength {
		return Picture{}, pkgerrors.NewPictureURLTooLong(PictureURLMaxLength)
	}

	return Picture{name: name, url: url}, nil
}

// EmptyPicture returns the well-known "no picture" value.
func EmptyPicture() Picture {
	return Picture{}
}

// ReconstitutePicture rebuilds a Picture from storage without validation.
func ReconstitutePicture(name, url string) Picture {
	return Picture{name: name, url: url}
}

// Name returns the picture display name.
func (p Picture) Name() string {
	return p.name
}

// URL returns the picture location.
func (p Picture) URL() string {
	return p.url
}

// IsEmpty checks whether this is the Empty picture.
func (p Picture) IsEmpty() bool {
	return p.name == "" && p.url == ""
}

// Equals checks if two Pictures are equal by value.
func (p Picture) Equals(other Picture) bool {
	return p.name == other.name && p.url == other.url
}

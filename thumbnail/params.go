// Package thumbnail picks and renders the canned thumbnail sizes of the
// Matrix content repository.
package thumbnail

// FillMode tells how an image is fitted in the thumbnail box.
type FillMode int

const (
	// PreserveAspectFit scales the image to fit inside the box.
	PreserveAspectFit FillMode = iota
	// PreserveAspectCrop scales the image to cover the box, cropping the overflow.
	PreserveAspectCrop
)

// Method is the name of the fill mode in thumbnail requests.
func (f FillMode) Method() string {
	if f == PreserveAspectCrop {
		return "crop"
	}
	return "scale"
}

func (f FillMode) String() string {
	if f == PreserveAspectCrop {
		return "PreserveAspectCrop"
	}
	return "PreserveAspectFit"
}

type Params struct {
	Width    int
	Height   int
	FillMode FillMode
}

// ParametersFor returns the smallest canned size suitable to display an
// image at width x height.
// See https://matrix.org/docs/spec/client_server/latest#thumbnails
func ParametersFor(width, height int) Params {
	switch {
	case width > 640 || height > 480:
		return Params{Width: 800, Height: 600, FillMode: PreserveAspectFit}
	case width > 320 || height > 240:
		return Params{Width: 640, Height: 480, FillMode: PreserveAspectFit}
	case width > 96 || height > 96:
		return Params{Width: 320, Height: 240, FillMode: PreserveAspectFit}
	case width > 32 || height > 32:
		return Params{Width: 96, Height: 96, FillMode: PreserveAspectCrop}
	default:
		return Params{Width: 32, Height: 32, FillMode: PreserveAspectCrop}
	}
}

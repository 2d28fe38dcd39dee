package errors

import "fmt"

var (
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrInvalidMXC       = fmt.Errorf("invalid mxc uri")
	ErrUnsupportedMedia = fmt.Errorf("unsupported media type")
	ErrInvalidTheme     = fmt.Errorf("invalid theme")
	ErrEmptyCatalog     = fmt.Errorf("no catalog files found")
	ErrInvalidSize      = fmt.Errorf("thumbnail size must be positive")
	ErrImageTooLarge    = fmt.Errorf("image dimensions too large")
)

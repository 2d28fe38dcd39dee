package theme

import (
	"chatview/errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Theme holds the colour settings used for avatars and display names.
type Theme struct {
	Avatar      Avatar      `yaml:"avatar"`
	DisplayName DisplayName `yaml:"displayName"`
}

type Avatar struct {
	Background Background `yaml:"background"`
}

type Background struct {
	Saturation float64 `yaml:"saturation" validate:"gte=0,lte=1"`
	Lightness  float64 `yaml:"lightness" validate:"gte=0,lte=1"`
	Alpha      float64 `yaml:"alpha" validate:"gte=0,lte=1"`
}

type DisplayName struct {
	Saturation float64 `yaml:"saturation" validate:"gte=0,lte=1"`
	Lightness  float64 `yaml:"lightness" validate:"gte=0,lte=1"`
}

func Default() Theme {
	return Theme{
		Avatar: Avatar{
			Background: Background{Saturation: 0.22, Lightness: 0.5, Alpha: 1},
		},
		DisplayName: DisplayName{Saturation: 0.32, Lightness: 0.75},
	}
}

// Load reads a YAML theme file. Keys missing from the file keep their default value.
func Load(path string) (Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}
	if err = t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func (t Theme) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidTheme, err)
	}
	return nil
}

// AvatarColor is the avatar background colour for name.
func (t Theme) AvatarColor(name string) HSLA {
	bg := t.Avatar.Background
	return HSLA{H: HueFrom(name), S: bg.Saturation, L: bg.Lightness, A: bg.Alpha}
}

// NameColor is the opaque display name colour for name.
func (t Theme) NameColor(name string) HSLA {
	dn := t.DisplayName
	return HSLA{H: HueFrom(name), S: dn.Saturation, L: dn.Lightness, A: 1}
}

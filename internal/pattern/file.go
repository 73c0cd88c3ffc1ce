package pattern

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/garrettladley/constellation/internal/star"
	"github.com/garrettladley/constellation/internal/validator"
)

// Pattern is a named, ordered star layout used in completion mode.
type Pattern struct {
	Name  string
	Stars []star.Star
}

// Default returns the built-in name pattern.
func Default() Pattern {
	return Pattern{Name: DefaultName, Stars: Catalog()}
}

func (p Pattern) Validate() map[string]string {
	errs := star.ValidateList(p.Stars)
	if len(p.Stars) == 0 {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs["stars"] = "must contain at least one star"
	}
	return errs
}

type file struct {
	Name  string     `toml:"name"`
	Stars []fileStar `toml:"star"`
}

type fileStar struct {
	X            float64 `toml:"x"`
	Y            float64 `toml:"y"`
	Size         float64 `toml:"size"`
	Brightness   float64 `toml:"brightness"`
	TwinkleDelay float64 `toml:"twinkle_delay"`
}

// Parse decodes a TOML pattern document. An empty name falls back to the
// built-in name.
func Parse(data []byte) (Pattern, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Pattern{}, fmt.Errorf("parsing pattern: %w", err)
	}

	p := Pattern{Name: f.Name, Stars: make([]star.Star, 0, len(f.Stars))}
	if p.Name == "" {
		p.Name = DefaultName
	}
	for _, s := range f.Stars {
		p.Stars = append(p.Stars, star.Star{
			X:            s.X,
			Y:            s.Y,
			Size:         s.Size,
			Brightness:   s.Brightness,
			TwinkleDelay: s.TwinkleDelay,
		})
	}

	if err := validator.Validate(p); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

// LoadFile reads a pattern file. An empty path yields the built-in pattern.
func LoadFile(path string) (Pattern, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Pattern{}, fmt.Errorf("pattern file %s does not exist", path)
		}
		return Pattern{}, fmt.Errorf("reading pattern file: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes a pattern in the same format Parse reads.
func Marshal(p Pattern) ([]byte, error) {
	f := file{Name: p.Name, Stars: make([]fileStar, 0, len(p.Stars))}
	for _, s := range p.Stars {
		f.Stars = append(f.Stars, fileStar{
			X:            s.X,
			Y:            s.Y,
			Size:         s.Size,
			Brightness:   s.Brightness,
			TwinkleDelay: s.TwinkleDelay,
		})
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshaling pattern: %w", err)
	}
	return data, nil
}

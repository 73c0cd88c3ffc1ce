package star

import (
	"fmt"
	"math"
)

// Star is a single point in the star field. Coordinates are in the logical
// 500x300 surface space.
type Star struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Size         float64 `json:"size"`
	Brightness   float64 `json:"brightness"`
	TwinkleDelay float64 `json:"twinkleDelay"`
	IsNameStar   *bool   `json:"isNameStar,omitempty"`
}

// Distance returns the euclidean distance between two stars.
func Distance(a, b Star) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func (s Star) Validate() map[string]string {
	errs := make(map[string]string)
	if !finite(s.X) {
		errs["x"] = "must be a finite number"
	}
	if !finite(s.Y) {
		errs["y"] = "must be a finite number"
	}
	if !finite(s.Size) || s.Size <= 0 {
		errs["size"] = "must be greater than 0"
	}
	if !finite(s.Brightness) || s.Brightness < 0 || s.Brightness > 1 {
		errs["brightness"] = "must be between 0 and 1"
	}
	if !finite(s.TwinkleDelay) {
		errs["twinkleDelay"] = "must be a finite number"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateList validates every star in order, prefixing field names with the
// star's index.
func ValidateList(stars []Star) map[string]string {
	var errs map[string]string
	for i, s := range stars {
		for field, msg := range s.Validate() {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs[fmt.Sprintf("stars[%d].%s", i, field)] = msg
		}
	}
	return errs
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

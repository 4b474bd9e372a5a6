package merch

import (
	"errors"
	"fmt"

	"github.com/galaplate/creational/supports"
)

var ErrUnknownBrand = errors.New("unknown brand")

// Brand is the lookup key of a product family.
type Brand string

const (
	Harman Brand = "harman"
	Endava Brand = "endava"
)

var displayNames = map[Brand]string{
	Harman: "Harman",
	Endava: "Endava",
}

// DisplayName is the name printed on every product of the brand.
func (b Brand) DisplayName() string {
	if name, ok := displayNames[b]; ok {
		return name
	}
	return string(b)
}

func (b Brand) String() string {
	return string(b)
}

func (b Brand) IsValid() bool {
	_, ok := displayNames[b]
	return ok
}

// ParseBrand resolves a lookup key. Matching is exact and case-sensitive.
func ParseBrand(s string) (Brand, error) {
	b := Brand(s)
	if !b.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBrand, s)
	}
	return b, nil
}

// Brands lists the known brand keys.
func Brands() []Brand {
	return []Brand{Harman, Endava}
}

func brandKeys() []string {
	keys := make([]string, 0, len(displayNames))
	for _, b := range Brands() {
		keys = append(keys, string(b))
	}
	return keys
}

func init() {
	supports.RegisterValidation("brand", supports.OneOfFunc(brandKeys))
	supports.RegisterValidation("hoodie_size", supports.OneOfFunc(sizeNames))
}

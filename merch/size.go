package merch

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSize = errors.New("hoodie size is required")
	ErrInvalidSize = errors.New("invalid hoodie size")
)

// HoodieSize starts at 1; the zero value means no size was given.
type HoodieSize int

const (
	XS HoodieSize = iota + 1
	S
	M
	L
	XL
	XXL
)

var sizeLabels = [...]string{"", "XS", "S", "M", "L", "XL", "XXL"}

func (s HoodieSize) String() string {
	if s.IsValid() {
		return sizeLabels[s]
	}
	return fmt.Sprintf("HoodieSize(%d)", int(s))
}

func (s HoodieSize) IsValid() bool {
	return s >= XS && s <= XXL
}

// MarshalText lets sizes appear by label in JSON output.
func (s HoodieSize) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, int(s))
	}
	return []byte(s.String()), nil
}

func (s *HoodieSize) UnmarshalText(text []byte) error {
	parsed, err := ParseHoodieSize(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseHoodieSize accepts the exact labels XS, S, M, L, XL and XXL.
func ParseHoodieSize(label string) (HoodieSize, error) {
	if label == "" {
		return 0, ErrMissingSize
	}
	for _, size := range HoodieSizes() {
		if size.String() == label {
			return size, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSize, label)
}

func HoodieSizes() []HoodieSize {
	return []HoodieSize{XS, S, M, L, XL, XXL}
}

func sizeNames() []string {
	return sizeLabels[1:]
}

func checkSize(size HoodieSize) error {
	switch {
	case size == 0:
		return ErrMissingSize
	case !size.IsValid():
		return fmt.Errorf("%w: %d", ErrInvalidSize, int(size))
	}
	return nil
}

package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseSize parses a "W,H" size argument
func ParseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.Wrapf(ErrInvalidConfig, "[ParseSize] want W,H, got %q", s)
	}

	if width, err = strconv.Atoi(strings.TrimSpace(w)); err != nil {
		return 0, 0, errors.Wrapf(err, "[ParseSize] bad width in %q", s)
	}
	if height, err = strconv.Atoi(strings.TrimSpace(h)); err != nil {
		return 0, 0, errors.Wrapf(err, "[ParseSize] bad height in %q", s)
	}
	if width < 1 || height < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidConfig, "[ParseSize] size must be positive, got %q", s)
	}
	return width, height, nil
}

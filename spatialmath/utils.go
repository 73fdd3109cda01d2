package spatialmath

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// delimitedStringToSlice is a helper method to split up space- or comma-delimited fields, such as "x y z" or "x,y,z".
func delimitedStringToSlice(s string) ([]float64, error) {
	var converted []float64
	slice := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	for _, field := range slice {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q", field)
		}
		converted = append(converted, value)
	}
	return converted, nil
}

// ParseVector parses three delimited numbers into an r3.Vector.
func ParseVector(s string) (r3.Vector, error) {
	vals, err := delimitedStringToSlice(s)
	if err != nil {
		return r3.Vector{}, err
	}
	if len(vals) != 3 {
		return r3.Vector{}, errors.Errorf("expected 3 values, got %d in %q", len(vals), s)
	}
	return r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// ParseSpatialVector parses six delimited numbers into a SpatialVector, upper half first.
func ParseSpatialVector(s string) (SpatialVector, error) {
	vals, err := delimitedStringToSlice(s)
	if err != nil {
		return SpatialVector{}, err
	}
	if len(vals) != 6 {
		return SpatialVector{}, errors.Errorf("expected 6 values, got %d in %q", len(vals), s)
	}
	return SpatialVector{
		Upper: r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]},
		Lower: r3.Vector{X: vals[3], Y: vals[4], Z: vals[5]},
	}, nil
}

package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// Scaler kinds understood by ReadScaler.
const (
	ScalerStandard = "standard"
	ScalerMinMax   = "minmax"
)

// Scaler is a per-feature affine transform fit offline. The arithmetic
// follows sklearn exactly so tree thresholds see identical values.
type Scaler struct {
	kind   string
	scale  []float64
	offset []float64 // mean for standard, min for minmax
}

type scalerFile struct {
	Kind  string    `json:"kind"`
	Mean  []float64 `json:"mean,omitempty"`
	Min   []float64 `json:"min,omitempty"`
	Scale []float64 `json:"scale"`
}

// NewStandardScaler returns a scaler computing (x - mean) / scale.
// Zero scales are treated as 1, as sklearn does for constant features.
func NewStandardScaler(mean, scale []float64) (*Scaler, error) {
	if len(mean) != len(scale) || len(mean) == 0 {
		return nil, fmt.Errorf("%w: mean has %d values, scale has %d", ErrDimension, len(mean), len(scale))
	}
	s := &Scaler{
		kind:   ScalerStandard,
		scale:  make([]float64, len(scale)),
		offset: append([]float64(nil), mean...),
	}
	for i, sc := range scale {
		if sc == 0 {
			sc = 1
		}
		s.scale[i] = sc
	}
	return s, nil
}

// NewMinMaxScaler returns a scaler computing x*scale + min.
func NewMinMaxScaler(minimum, scale []float64) (*Scaler, error) {
	if len(minimum) != len(scale) || len(minimum) == 0 {
		return nil, fmt.Errorf("%w: min has %d values, scale has %d", ErrDimension, len(minimum), len(scale))
	}
	return &Scaler{
		kind:   ScalerMinMax,
		scale:  append([]float64(nil), scale...),
		offset: append([]float64(nil), minimum...),
	}, nil
}

// ReadScaler decodes a scaler artifact.
func ReadScaler(r io.Reader) (*Scaler, error) {
	var f scalerFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding scaler: %w", err)
	}

	switch f.Kind {
	case ScalerStandard, "":
		return NewStandardScaler(f.Mean, f.Scale)
	case ScalerMinMax:
		return NewMinMaxScaler(f.Min, f.Scale)
	default:
		return nil, fmt.Errorf("unknown scaler kind %q", f.Kind)
	}
}

// NumFeatures returns the expected input width.
func (s *Scaler) NumFeatures() int {
	return len(s.scale)
}

// Transform returns the scaled copy of x.
func (s *Scaler) Transform(x []float64) ([]float64, error) {
	if err := checkWidth(x, len(s.scale)); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		if s.kind == ScalerMinMax {
			out[i] = v*s.scale[i] + s.offset[i]
		} else {
			out[i] = (v - s.offset[i]) / s.scale[i]
		}
	}
	return out, nil
}

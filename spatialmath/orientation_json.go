package spatialmath

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// OrientationType defines what orientation representations are known.
type OrientationType string

// The set of allowed representations for orientation.
const (
	NoOrientationType  = OrientationType("")
	AxisAnglesType     = OrientationType("axis_angles")
	QuaternionType     = OrientationType("quaternion")
	EulerAnglesType    = OrientationType("euler_angles")
	RotationMatrixType = OrientationType("rotation_matrix")
)

// OrientationConfig holds the underlying type of orientation, and the value.
type OrientationConfig struct {
	Type  OrientationType        `json:"type,omitempty" jsonschema:"enum=axis_angles,enum=quaternion,enum=euler_angles,enum=rotation_matrix"`
	Value map[string]interface{} `json:"value,omitempty"`
}

// QuaternionConfig is the json form of a quaternion.
type QuaternionConfig struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RotationMatrixConfig is the json form of a rotation matrix, row-major.
type RotationMatrixConfig struct {
	Mat []float64 `json:"mat"`
}

// TranslationConfig is the json form of a translation.
type TranslationConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewTranslationConfig returns a TranslationConfig for the given vector.
func NewTranslationConfig(pt r3.Vector) *TranslationConfig {
	return &TranslationConfig{X: pt.X, Y: pt.Y, Z: pt.Z}
}

// ParseConfig converts a TranslationConfig into an r3.Vector.
func (cfg *TranslationConfig) ParseConfig() r3.Vector {
	if cfg == nil {
		return r3.Vector{}
	}
	return r3.Vector{X: cfg.X, Y: cfg.Y, Z: cfg.Z}
}

// NewOrientationConfig encodes an orientation. Orientations that are not one of the configurable
// representations are stored as quaternions.
func NewOrientationConfig(o Orientation) (*OrientationConfig, error) {
	if o == nil {
		return &OrientationConfig{}, nil
	}
	var (
		oType OrientationType
		value interface{}
	)
	switch v := o.(type) {
	case *R4AA:
		oType, value = AxisAnglesType, v
	case *EulerAngles:
		oType, value = EulerAnglesType, v
	case *RotationMatrix:
		oType, value = RotationMatrixType, &RotationMatrixConfig{Mat: v.RowMajor()}
	default:
		q := o.Quaternion()
		oType, value = QuaternionType, &QuaternionConfig{W: q.Real, X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	}
	m := map[string]interface{}{}
	if err := decodeJSONTagged(value, &m); err != nil {
		return nil, errors.Wrapf(err, "cannot encode orientation of type %T", o)
	}
	return &OrientationConfig{Type: oType, Value: m}, nil
}

// ParseConfig converts an OrientationConfig into an Orientation. An empty type is no rotation.
func (config *OrientationConfig) ParseConfig() (Orientation, error) {
	if config == nil {
		return NewZeroOrientation(), nil
	}
	switch config.Type {
	case NoOrientationType:
		return NewZeroOrientation(), nil
	case AxisAnglesType:
		var aa R4AA
		if err := decodeJSONTagged(config.Value, &aa); err != nil {
			return nil, errors.Wrap(err, "axis_angles")
		}
		return &aa, nil
	case EulerAnglesType:
		var ea EulerAngles
		if err := decodeJSONTagged(config.Value, &ea); err != nil {
			return nil, errors.Wrap(err, "euler_angles")
		}
		return &ea, nil
	case QuaternionType:
		var qc QuaternionConfig
		if err := decodeJSONTagged(config.Value, &qc); err != nil {
			return nil, errors.Wrap(err, "quaternion")
		}
		q := quat.Number{Real: qc.W, Imag: qc.X, Jmag: qc.Y, Kmag: qc.Z}
		if quat.Abs(q) == 0 {
			return nil, errors.New("quaternion must be non-zero")
		}
		return NewOrientationFromQuaternion(q), nil
	case RotationMatrixType:
		var rc RotationMatrixConfig
		if err := decodeJSONTagged(config.Value, &rc); err != nil {
			return nil, errors.Wrap(err, "rotation_matrix")
		}
		return NewRotationMatrix(rc.Mat)
	default:
		return nil, errors.Errorf("orientation type %s not recognized", config.Type)
	}
}

func decodeJSONTagged(input, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

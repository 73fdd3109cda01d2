package referenceframe

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/multierr"

	"go.viam.com/spatialframes/logging"
	spatial "go.viam.com/spatialframes/spatialmath"
)

// FrameConfig is the json form of a single frame.
type FrameConfig struct {
	Name        string                     `json:"name"`
	Parent      string                     `json:"parent,omitempty"`
	Translation *spatial.TranslationConfig `json:"translation,omitempty"`
	Orientation *spatial.OrientationConfig `json:"orientation,omitempty"`
}

// Pose converts the translation and orientation of the config into a pose.
func (cfg *FrameConfig) Pose() (spatial.Pose, error) {
	orient, err := cfg.Orientation.ParseConfig()
	if err != nil {
		return nil, err
	}
	return spatial.NewPose(cfg.Translation.ParseConfig(), orient), nil
}

// FrameSystemConfig is the json form of a frame system. Frames may be listed in any order; a missing
// or "world" parent anchors a frame to the global frame.
type FrameSystemConfig struct {
	Name   string                        `json:"name"`
	Frames []FrameConfig                 `json:"frames"`
	Log    []logging.LoggerPatternConfig `json:"log,omitempty"`
}

// Validate checks every frame in the config and returns all problems found.
func (cfg *FrameSystemConfig) Validate() error {
	var errs error
	names := map[string]bool{}
	for i, f := range cfg.Frames {
		switch {
		case f.Name == "":
			multierr.AppendInto(&errs, errors.Errorf("frame %d: name is required", i))
		case f.Name == WorldName:
			multierr.AppendInto(&errs, errors.Errorf("frame %d: name %q is reserved", i, WorldName))
		case names[f.Name]:
			multierr.AppendInto(&errs, errors.Errorf("frame %d: duplicate name %q", i, f.Name))
		}
		names[f.Name] = true
		if _, err := f.Orientation.ParseConfig(); err != nil {
			multierr.AppendInto(&errs, errors.Wrapf(err, "frame %q", f.Name))
		}
	}
	for _, f := range cfg.Frames {
		if f.Parent != "" && f.Parent != WorldName && !names[f.Parent] {
			multierr.AppendInto(&errs, errors.Errorf("frame %q: parent %q not found", f.Name, f.Parent))
		}
	}
	return errs
}

// ParseFrameSystemConfig decodes a json frame system config. Unknown fields are rejected.
func ParseFrameSystemConfig(r io.Reader) (*FrameSystemConfig, error) {
	var cfg FrameSystemConfig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "cannot decode frame system config")
	}
	return &cfg, nil
}

// ParseFrameSystemConfigJSON5 decodes a frame system config written as JSON5, which allows
// comments, unquoted keys and trailing commas. Unknown fields are rejected.
func ParseFrameSystemConfigJSON5(r io.Reader) (*FrameSystemConfig, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read frame system config")
	}
	var doc interface{}
	if err := json5.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "cannot decode frame system config")
	}
	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode frame system config")
	}
	return ParseFrameSystemConfig(bytes.NewReader(canonical))
}

// NewFrameSystemFromConfig builds a frame system from a config. All frames are created first and
// linked afterwards, so parents may be listed after their children; a parent cycle is an error.
func NewFrameSystemFromConfig(cfg *FrameSystemConfig, logger logging.Logger) (*FrameSystem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid frame system config")
	}
	fs := NewFrameSystem(cfg.Name, logger)
	for _, fc := range cfg.Frames {
		pose, err := fc.Pose()
		if err != nil {
			return nil, err
		}
		if _, err := fs.NewFrame(fc.Name, pose, World); err != nil {
			return nil, err
		}
	}
	for _, fc := range cfg.Frames {
		if fc.Parent == "" || fc.Parent == WorldName {
			continue
		}
		f, err := fs.Frame(fc.Name)
		if err != nil {
			return nil, err
		}
		parent, err := fs.Frame(fc.Parent)
		if err != nil {
			return nil, err
		}
		if err := f.SetParent(parent); err != nil {
			return nil, err
		}
	}
	fs.logger.Infow("loaded frame system", "name", fs.name, "frames", len(fs.nodes))
	return fs, nil
}

// NewFrameSystemConfig encodes the current state of a frame system.
func NewFrameSystemConfig(fs *FrameSystem) (*FrameSystemConfig, error) {
	cfg := &FrameSystemConfig{Name: fs.name, Frames: make([]FrameConfig, 0, len(fs.nodes))}
	for _, f := range fs.Frames() {
		pose := f.Pose()
		orient, err := spatial.NewOrientationConfig(pose.Orientation())
		if err != nil {
			return nil, err
		}
		fc := FrameConfig{
			Name:        f.Name(),
			Translation: spatial.NewTranslationConfig(pose.Point()),
			Orientation: orient,
		}
		if parent := f.Parent(); !parent.IsWorld() {
			fc.Parent = parent.Name()
		}
		cfg.Frames = append(cfg.Frames, fc)
	}
	return cfg, nil
}

// FrameSystemConfigSchema returns the JSON Schema describing FrameSystemConfig.
func FrameSystemConfigSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&FrameSystemConfig{})
}

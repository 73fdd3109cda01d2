package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/spatialframes/logging"
	"go.viam.com/spatialframes/referenceframe"
	spatial "go.viam.com/spatialframes/spatialmath"
)

const (
	loggerName      = "frames"
	interpolateName = "interpolated"
)

// loadFrameSystemAction sets up logging and, when --config is given, loads the frame system
// so that commands can find it in the app metadata.
func loadFrameSystemAction(cCtx *cli.Context) error {
	debug := cCtx.Bool(generalFlagDebug)
	logger := logging.NewBlankLogger(loggerName)
	logger.AddAppender(logging.NewWriterAppender(cCtx.App.ErrWriter))
	logger.SetLevel(logging.INFO)
	fsLogger := logger.Sublogger("framesystem")
	logging.RegisterLogger(logger.Name(), logger)
	logging.RegisterLogger(fsLogger.Name(), fsLogger)
	cCtx.App.Metadata[metadataLogger] = logger

	path := cCtx.String(generalFlagConfig)
	if path == "" {
		applyDebug(debug, logger, fsLogger)
		return nil
	}

	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "cannot open frame system config")
	}
	defer func() {
		//nolint:errcheck
		f.Close()
	}()
	parse := referenceframe.ParseFrameSystemConfig
	if filepath.Ext(path) == ".json5" {
		parse = referenceframe.ParseFrameSystemConfigJSON5
	}
	cfg, err := parse(f)
	if err != nil {
		return errors.Wrapf(err, "cannot parse %s", path)
	}
	if len(cfg.Log) > 0 {
		if err := logging.UpdateLoggerConfig(cfg.Log, logger); err != nil {
			return err
		}
	}
	applyDebug(debug, logger, fsLogger)

	fs, err := referenceframe.NewFrameSystemFromConfig(cfg, fsLogger)
	if err != nil {
		return err
	}
	cCtx.App.Metadata[metadataFrameSystem] = fs
	return nil
}

func applyDebug(debug bool, loggers ...logging.Logger) {
	if !debug {
		return
	}
	for _, l := range loggers {
		l.SetLevel(logging.DEBUG)
	}
}

func syncLoggerAction(cCtx *cli.Context) error {
	logger, err := loggerFromContext(cCtx)
	if err != nil {
		// Before failed early; nothing to flush.
		return nil
	}
	return logger.Sync()
}

// ListFramesAction prints a table of every frame with its parent and pose.
func ListFramesAction(cCtx *cli.Context) error {
	fs, err := frameSystemFromContext(cCtx)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetTitle(fs.Name())
	t.AppendHeader(table.Row{"#", "Name", "Parent", "Translation", "Orientation"})
	for i, f := range fs.Frames() {
		pose := f.Pose()
		t.AppendRow(table.Row{
			i + 1,
			f.Name(),
			f.Parent().Name(),
			formatVector(pose.Point()),
			formatOrientation(pose.Orientation()),
		})
	}
	printf(cCtx.App.Writer, "%s", t.Render())
	return nil
}

// TracebackAction prints the chain of frames from the given frame up to world.
func TracebackAction(cCtx *cli.Context) error {
	fs, err := frameSystemFromContext(cCtx)
	if err != nil {
		return err
	}
	f, err := fs.Frame(cCtx.String(framesFlagFrame))
	if err != nil {
		return err
	}
	chain, err := fs.TracebackFrame(f)
	if err != nil {
		return err
	}
	for i, link := range chain {
		printf(cCtx.App.Writer, "%d: %s", i, link.Name())
	}
	return nil
}

// ResolveAction prints the transform between the --from and --to frames.
func ResolveAction(cCtx *cli.Context) error {
	from, to, err := framesFromFlags(cCtx)
	if err != nil {
		return err
	}
	tf, err := referenceframe.Resolve(from, to)
	if err != nil {
		return err
	}
	pose := tf.Pose()
	printf(cCtx.App.Writer, "%s -> %s", from.Name(), to.Name())
	printf(cCtx.App.Writer, "translation: %s", formatVector(pose.Point()))
	printf(cCtx.App.Writer, "orientation: %s", formatOrientation(pose.Orientation()))
	if cCtx.Bool(framesFlagDense) {
		dense := tf.SpatialTransform().ToDense()
		printf(cCtx.App.Writer, "%.4f", mat.Formatted(dense, mat.Prefix(""), mat.Squeeze()))
	}
	return nil
}

// PointAction re-expresses a point, or a free vector with --vector, in the --to frame.
func PointAction(cCtx *cli.Context) error {
	from, to, err := framesFromFlags(cCtx)
	if err != nil {
		return err
	}
	v, err := spatial.ParseVector(cCtx.String(framesFlagPoint))
	if err != nil {
		return err
	}
	if cCtx.Bool(framesFlagVector) {
		out, err := referenceframe.TransformTo(referenceframe.NewVector(from, v), to)
		if err != nil {
			return err
		}
		printf(cCtx.App.Writer, "vector in %s: %s", to.Name(), formatVector(out.Value()))
		return nil
	}
	out, err := referenceframe.TransformTo(referenceframe.NewPoint(from, v), to)
	if err != nil {
		return err
	}
	printf(cCtx.App.Writer, "point in %s: %s", to.Name(), formatVector(out.Value()))
	return nil
}

// TwistAction re-expresses a twist, or a wrench with --wrench, in the --to frame.
func TwistAction(cCtx *cli.Context) error {
	from, to, err := framesFromFlags(cCtx)
	if err != nil {
		return err
	}
	sv, err := spatial.ParseSpatialVector(cCtx.String(framesFlagValue))
	if err != nil {
		return err
	}
	if cCtx.Bool(framesFlagWrench) {
		w, err := referenceframe.TransformTo(referenceframe.NewWrenchFromSpatialVector(from, sv), to)
		if err != nil {
			return err
		}
		printf(cCtx.App.Writer, "wrench in %s: force %s torque %s",
			to.Name(), formatVector(w.Force()), formatVector(w.Torque()))
		return nil
	}
	tw, err := referenceframe.TransformTo(referenceframe.NewTwistFromSpatialVector(from, sv), to)
	if err != nil {
		return err
	}
	printf(cCtx.App.Writer, "twist in %s: angular %s linear %s",
		to.Name(), formatVector(tw.Angular()), formatVector(tw.Linear()))
	return nil
}

// InterpolateAction prints the pose of the frame a fraction t of the way from --a to --b.
func InterpolateAction(cCtx *cli.Context) error {
	fs, err := frameSystemFromContext(cCtx)
	if err != nil {
		return err
	}
	var errs error
	a, err := fs.Frame(cCtx.String(framesFlagA))
	errs = multierr.Append(errs, err)
	b, err := fs.Frame(cCtx.String(framesFlagB))
	errs = multierr.Append(errs, err)
	if errs != nil {
		return errs
	}
	by := cCtx.Float64(framesFlagT)
	f, err := fs.Interpolate(interpolateName, a, b, by)
	if err != nil {
		return err
	}
	pose := f.Pose()
	printf(cCtx.App.Writer, "%s at t=%s (parent %s)", f.Name(), strconv.FormatFloat(by, 'g', -1, 64), f.Parent().Name())
	printf(cCtx.App.Writer, "translation: %s", formatVector(pose.Point()))
	printf(cCtx.App.Writer, "orientation: %s", formatOrientation(pose.Orientation()))
	return nil
}

// ExportAction prints the loaded frame system back out as an indented config.
func ExportAction(cCtx *cli.Context) error {
	fs, err := frameSystemFromContext(cCtx)
	if err != nil {
		return err
	}
	cfg, err := referenceframe.NewFrameSystemConfig(fs)
	if err != nil {
		return err
	}
	return printJSON(cCtx, cfg)
}

// SchemaAction prints the JSON schema of frame system configs.
func SchemaAction(cCtx *cli.Context) error {
	if _, err := frameSystemFromContext(cCtx); err == nil {
		warningf(cCtx.App.ErrWriter, "--%s is ignored by schema", generalFlagConfig)
	}
	return printJSON(cCtx, referenceframe.FrameSystemConfigSchema())
}

func printJSON(cCtx *cli.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot encode output")
	}
	printf(cCtx.App.Writer, "%s", string(out))
	return nil
}

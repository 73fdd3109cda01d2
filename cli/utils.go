package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/spatialframes/logging"
	"go.viam.com/spatialframes/referenceframe"
	spatial "go.viam.com/spatialframes/spatialmath"
	"go.viam.com/spatialframes/utils"
)

const (
	metadataFrameSystem = "frame_system"
	metadataLogger      = "logger"

	// Components smaller than this print as zero.
	printEpsilon = 1e-9
)

// printf prints a message with no prefix.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// warningf prints a message prefixed with a bold yellow "Warning: ".
func warningf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, color.New(color.Bold, color.FgYellow).Sprint("Warning: ")+format+"\n", a...)
}

func frameSystemFromContext(cCtx *cli.Context) (*referenceframe.FrameSystem, error) {
	v, ok := cCtx.App.Metadata[metadataFrameSystem]
	if !ok {
		return nil, errors.Errorf("no frame system loaded; pass --%s", generalFlagConfig)
	}
	return utils.AssertType[*referenceframe.FrameSystem](v)
}

func loggerFromContext(cCtx *cli.Context) (logging.Logger, error) {
	v, ok := cCtx.App.Metadata[metadataLogger]
	if !ok {
		return nil, errors.New("logger not initialized")
	}
	return utils.AssertType[logging.Logger](v)
}

// framesFromFlags looks up the frames named by the --from and --to flags.
func framesFromFlags(cCtx *cli.Context) (referenceframe.Frame, referenceframe.Frame, error) {
	fs, err := frameSystemFromContext(cCtx)
	if err != nil {
		return referenceframe.World, referenceframe.World, err
	}
	from, err := fs.Frame(cCtx.String(framesFlagFrom))
	if err != nil {
		return referenceframe.World, referenceframe.World, err
	}
	to, err := fs.Frame(cCtx.String(framesFlagTo))
	if err != nil {
		return referenceframe.World, referenceframe.World, err
	}
	return from, to, nil
}

func cleanFloat(f float64) float64 {
	if math.Abs(f) < printEpsilon {
		return 0
	}
	return f
}

func formatVector(v r3.Vector) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", cleanFloat(v.X), cleanFloat(v.Y), cleanFloat(v.Z))
}

func formatOrientation(o spatial.Orientation) string {
	ea := o.EulerAngles()
	return fmt.Sprintf("Roll:%.2f, Pitch:%.2f, Yaw:%.2f",
		cleanFloat(utils.RadToDeg(ea.Roll)),
		cleanFloat(utils.RadToDeg(ea.Pitch)),
		cleanFloat(utils.RadToDeg(ea.Yaw)),
	)
}

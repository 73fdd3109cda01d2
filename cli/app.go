// Package cli contains the frames command line tool for inspecting frame systems and
// re-expressing quantities between their frames.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"

	framesFlagFrom   = "from"
	framesFlagTo     = "to"
	framesFlagFrame  = "frame"
	framesFlagDense  = "dense"
	framesFlagPoint  = "point"
	framesFlagVector = "vector"
	framesFlagValue  = "value"
	framesFlagWrench = "wrench"
	framesFlagA      = "a"
	framesFlagB      = "b"
	framesFlagT      = "t"
)

func withFromToFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		&cli.StringFlag{
			Name:     framesFlagFrom,
			Required: true,
			Usage:    "frame the quantity is expressed in",
		},
		&cli.StringFlag{
			Name:     framesFlagTo,
			Required: true,
			Usage:    "frame to re-express the quantity in",
		},
	)
}

// NewApp returns the frames CLI application writing to the given outputs.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "frames",
		Usage:           "inspect frame systems and move quantities between frames",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    generalFlagConfig,
				Aliases: []string{"c"},
				Usage:   "load frame system from `FILE`",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: loadFrameSystemAction,
		After:  syncLoggerAction,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list the frames of the loaded system",
				Action: ListFramesAction,
			},
			{
				Name:  "traceback",
				Usage: "print the chain of frames from a frame up to world",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     framesFlagFrame,
						Required: true,
						Usage:    "frame to start from",
					},
				},
				Action: TracebackAction,
			},
			{
				Name:  "resolve",
				Usage: "resolve the transform between two frames",
				Flags: withFromToFlags(
					&cli.BoolFlag{
						Name:  framesFlagDense,
						Usage: "also print the 6x6 motion transform matrix",
					},
				),
				Action: ResolveAction,
			},
			{
				Name:      "point",
				Usage:     "re-express a point or free vector in another frame",
				UsageText: "frames point --from <frame> --to <frame> --point \"x,y,z\" [--vector]",
				Flags: withFromToFlags(
					&cli.StringFlag{
						Name:     framesFlagPoint,
						Required: true,
						Usage:    "three comma or space separated components",
					},
					&cli.BoolFlag{
						Name:  framesFlagVector,
						Usage: "treat the value as a free vector, ignoring translation",
					},
				),
				Action: PointAction,
			},
			{
				Name:      "twist",
				Usage:     "re-express a twist or wrench in another frame",
				UsageText: "frames twist --from <frame> --to <frame> --value \"a1 a2 a3 l1 l2 l3\" [--wrench]",
				Flags: withFromToFlags(
					&cli.StringFlag{
						Name:     framesFlagValue,
						Required: true,
						Usage:    "six values, angular then linear for twists and force then torque for wrenches",
					},
					&cli.BoolFlag{
						Name:  framesFlagWrench,
						Usage: "treat the value as a wrench",
					},
				),
				Action: TwistAction,
			},
			{
				Name:  "interpolate",
				Usage: "interpolate between two frames sharing a parent",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     framesFlagA,
						Required: true,
						Usage:    "frame at t=0",
					},
					&cli.StringFlag{
						Name:     framesFlagB,
						Required: true,
						Usage:    "frame at t=1",
					},
					&cli.Float64Flag{
						Name:  framesFlagT,
						Value: 0.5,
						Usage: "interpolation parameter in [0, 1]",
					},
				},
				Action: InterpolateAction,
			},
			{
				Name:   "export",
				Usage:  "print the loaded frame system as a config",
				Action: ExportAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of frame system configs",
				Action: SchemaAction,
			},
		},
	}
}

// Package main is the frames CLI command itself.
package main

import (
	"log"
	"os"

	"go.viam.com/spatialframes/cli"
)

func main() {
	if err := cli.NewApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

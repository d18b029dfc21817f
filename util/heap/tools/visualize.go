package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/navijation/njheap/util/heap/tools/config"
)

func visualizeValues(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: visualize value [value ...]")
	}

	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return visualizeHelper(cfg, cmd.Args().Slice(), os.Stdout)
}

// visualizeHelper prints the internal layout of a heap after every insertion
// and removal.
func visualizeHelper(cfg config.ConfigFile, values []string, out io.Writer) error {
	tracer, err := newLineSorter(cfg)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "Adds\n"); err != nil {
		return err
	}
	for _, value := range values {
		if err := tracer.Add(value); err != nil {
			return errors.Wrapf(err, "failed to add %q", value)
		}
		if err := printStep(out, "+", value, tracer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(out, "\nRemoves\n"); err != nil {
		return err
	}
	for tracer.Size() > 0 {
		removed, err := tracer.Remove()
		if err != nil {
			return err
		}
		if err := printStep(out, "-", removed, tracer); err != nil {
			return err
		}
	}

	return nil
}

func printStep(out io.Writer, op, value string, tracer lineSorter) error {
	_, err := fmt.Fprintf(out, "  %s %-12s size=%-3d capacity=%-3d %s\n",
		op, value, tracer.Size(), tracer.Capacity(), tracer.String(),
	)
	return err
}

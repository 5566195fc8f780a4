// Command sample prints a random landscape, one integer height per line, in
// the format rainflow reads.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/vk/rainflow/internal/sample"
)

var errUsage = errors.New("usage: sample [-seed S] <points_num> [upper_bound]")

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(outW, errW io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("sample", flag.ContinueOnError)
	flagSet.SetOutput(errW)
	seed := flagSet.Uint64("seed", uint64(time.Now().UnixNano()), "seed for reproducible output")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if flagSet.NArg() < 1 || flagSet.NArg() > 2 {
		return errUsage
	}
	points, err := strconv.Atoi(flagSet.Arg(0))
	if err != nil {
		return fmt.Errorf("%w: points_num: %w", errUsage, err)
	}
	upper := sample.DefaultUpperBound
	if flagSet.NArg() == 2 {
		if upper, err = strconv.Atoi(flagSet.Arg(1)); err != nil {
			return fmt.Errorf("%w: upper_bound: %w", errUsage, err)
		}
	}
	if err := sample.Validate(points, upper); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	return sample.New(*seed).Write(outW, points, upper)
}

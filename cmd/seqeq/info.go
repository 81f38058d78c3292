package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/hupe1980/seqeq"
	"github.com/hupe1980/seqeq/internal/simd"
	"github.com/hupe1980/seqeq/internal/wordsize"
)

func (a *app) infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show the detected comparison capabilities",
		Description: `Print the platform, the active vector instruction set, its register
width and the native word width used for pointer sequences.

Set SEQEQ_SIMD (generic, neon, sve2, avx2, avx512) to pin the instruction set.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.runInfo()
		},
	}
}

func (a *app) runInfo() error {
	isa := seqeq.ActiveISA()

	fmt.Fprintf(a.stdout, "platform:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(a.stdout, "isa:          %s (override: %t)\n", isa, simd.IsOverridden())
	fmt.Fprintf(a.stdout, "vector width: %d bytes\n", isa.RegisterBytes())
	fmt.Fprintf(a.stdout, "features:     avx2=%t avx512=%t neon=%t sve2=%t\n",
		simd.HasAVX2(), simd.HasAVX512(), simd.HasASIMD(), simd.HasSVE2())

	width, err := seqeq.NativeWordWidth()
	if err != nil {
		fmt.Fprintf(a.stdout, "native word:  unsupported (measured %d bytes)\n", wordsize.Measured())
		return err
	}
	source := "compile time"
	if wordsize.Constant == wordsize.Indeterminate {
		source = "measured"
	}
	fmt.Fprintf(a.stdout, "native word:  %d bytes (%s)\n", width, source)
	return nil
}

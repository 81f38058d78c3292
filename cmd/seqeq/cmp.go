package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/urfave/cli/v3"

	"github.com/hupe1980/seqeq"
	"github.com/hupe1980/seqeq/internal/source"
)

// nativeWidth selects the machine word width.
const nativeWidth = "native"

// cmpConfig is the parsed form of the cmp flags.
type cmpConfig struct {
	width     string
	workers   int
	ioLimit   int64
	memLimit  int64
	list      bool
	max       int
	shardSize int
}

// report is the outcome of one comparison.
type report struct {
	width    int
	words    int
	equal    bool
	sizes    [2]int // set only when the inputs differ in length
	total    uint64
	mismatch []uint32
}

func (a *app) cmpCommand() *cli.Command {
	return &cli.Command{
		Name:      "cmp",
		Usage:     "Compare two inputs word by word",
		ArgsUsage: "A B",
		Description: `Compare two inputs as sequences of words of the given width.

Exits 0 when the inputs are equal, 1 when they differ and 2 on error.
Inputs of different length always differ. With --list the indices of the
first differing words are printed. Either input may be "-" for standard
input.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "word width in bytes (1, 2, 4, 8 or native)",
				Value:   "1",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines comparing shards concurrently (0 uses GOMAXPROCS)",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "shard-size",
				Usage: "words per parallel shard (0 picks 4MiB worth)",
				Value: 0,
			},
			&cli.IntFlag{
				Name:    "io-limit",
				Usage:   "maximum bytes per second to read and compare (0 is unlimited)",
				Sources: cli.EnvVars("SEQEQ_IO_LIMIT"),
				Value:   0,
			},
			&cli.IntFlag{
				Name:    "mem-limit",
				Usage:   "maximum bytes held for decoded inputs (0 is unlimited)",
				Sources: cli.EnvVars("SEQEQ_MEM_LIMIT"),
				Value:   0,
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "print the indices of differing words",
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "maximum number of indices printed by --list",
				Value: 10,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return fmt.Errorf("cmp: expected 2 inputs, got %d", cmd.NArg())
			}
			cfg := cmpConfig{
				width:     cmd.String("width"),
				workers:   int(cmd.Int("workers")),
				shardSize: int(cmd.Int("shard-size")),
				ioLimit:   int64(cmd.Int("io-limit")),
				memLimit:  int64(cmd.Int("mem-limit")),
				list:      cmd.Bool("list"),
				max:       int(cmd.Int("max")),
			}
			return a.runCmp(ctx, cmd.Args().Get(0), cmd.Args().Get(1), cfg)
		},
	}
}

func (a *app) runCmp(ctx context.Context, left, right string, cfg cmpConfig) error {
	if cfg.ioLimit < 0 || cfg.memLimit < 0 || cfg.max < 0 {
		return errors.New("cmp: limits must not be negative")
	}

	rc := seqeq.NewResourceController(seqeq.ResourceConfig{
		MemoryLimitBytes:   cfg.memLimit,
		IOLimitBytesPerSec: cfg.ioLimit,
	})

	if isStdin(left) && isStdin(right) {
		return errors.New("cmp: only one input may be standard input")
	}

	srcA, err := a.open(ctx, left, rc)
	if err != nil {
		return err
	}
	defer srcA.Close()

	srcB, err := a.open(ctx, right, rc)
	if err != nil {
		return err
	}
	defer srcB.Close()

	a.logger.Debug("inputs opened",
		"left", srcA.Name(), "left_format", srcA.Format().String(), "left_bytes", srcA.Len(),
		"right", srcB.Name(), "right_format", srcB.Format().String(), "right_bytes", srcB.Len(),
	)

	opts := []seqeq.Option{seqeq.WithLogger(a.logger), seqeq.WithResources(rc)}
	if cfg.workers > 0 {
		opts = append(opts, seqeq.WithWorkers(cfg.workers))
	}
	if cfg.shardSize > 0 {
		opts = append(opts, seqeq.WithShardSize(cfg.shardSize))
	}

	r, err := compare(ctx, srcA.Bytes(), srcB.Bytes(), cfg, opts)
	if err != nil {
		return err
	}

	a.print(r, srcA.Name(), srcB.Name())
	if !r.equal {
		return errDiffer
	}
	return nil
}

// open reads standard input through the app's reader and anything else
// through the file system.
func (a *app) open(ctx context.Context, path string, rc *seqeq.ResourceController) (*source.Source, error) {
	if isStdin(path) {
		return source.Read(ctx, "stdin", a.stdin, rc)
	}
	return source.Open(ctx, path, rc, a.logger.Logger)
}

func isStdin(path string) bool {
	return path == stdinArg || path == source.Stdin
}

// compare dispatches on the configured word width.
func compare(ctx context.Context, x, y []byte, cfg cmpConfig, opts []seqeq.Option) (*report, error) {
	width, err := parseWidth(cfg.width)
	if err != nil {
		return nil, err
	}

	if len(x) != len(y) {
		return &report{width: width, sizes: [2]int{len(x), len(y)}}, nil
	}
	if len(x)%width != 0 {
		return nil, fmt.Errorf("cmp: input length %d is not a multiple of the word width %d", len(x), width)
	}

	if cfg.width == nativeWidth {
		return compareWords(ctx, words[uintptr](x), words[uintptr](y), width, cfg, opts)
	}

	switch width {
	case 1:
		return compareWords(ctx, words[uint8](x), words[uint8](y), 1, cfg, opts)
	case 2:
		return compareWords(ctx, words[uint16](x), words[uint16](y), 2, cfg, opts)
	case 4:
		return compareWords(ctx, words[uint32](x), words[uint32](y), 4, cfg, opts)
	default:
		return compareWords(ctx, words[uint64](x), words[uint64](y), 8, cfg, opts)
	}
}

func compareWords[T uint8 | uint16 | uint32 | uint64 | uintptr](ctx context.Context, x, y []T, width int, cfg cmpConfig, opts []seqeq.Option) (*report, error) {
	seq := seqeq.For[T](opts...)

	eq, err := seq.EqualParallel(ctx, x, y)
	if err != nil {
		return nil, err
	}

	r := &report{width: width, words: len(x), equal: eq}
	if eq || !cfg.list {
		return r, nil
	}

	bm, err := seq.Mismatches(x, y)
	if err != nil {
		return nil, err
	}
	r.total = bm.GetCardinality()

	it := bm.Iterator()
	for it.HasNext() && len(r.mismatch) < cfg.max {
		r.mismatch = append(r.mismatch, it.Next())
	}
	return r, nil
}

// parseWidth resolves a --width value to a byte count.
func parseWidth(s string) (int, error) {
	if s == nativeWidth {
		return seqeq.NativeWordWidth()
	}
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q", s)
	}
	switch w {
	case 1, 2, 4, 8:
		return w, nil
	default:
		return 0, fmt.Errorf("invalid width %d: must be 1, 2, 4, 8 or native", w)
	}
}

// words reinterprets b as a slice of T. len(b) must be a multiple of the
// size of T. Misaligned input is copied first.
func words[T any](b []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(b) == 0 {
		return nil
	}
	if uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(zero) != 0 {
		b = bytes.Clone(b)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/size)
}

func (a *app) print(r *report, left, right string) {
	switch {
	case r.equal:
		fmt.Fprintf(a.stdout, "equal: %d words of %d bytes\n", r.words, r.width)
	case r.sizes != [2]int{}:
		fmt.Fprintf(a.stdout, "differ: size %s=%d %s=%d bytes\n", left, r.sizes[0], right, r.sizes[1])
	default:
		fmt.Fprintf(a.stdout, "differ: content (%d words of %d bytes)\n", r.words, r.width)
		if r.total > 0 {
			fmt.Fprintf(a.stdout, "mismatches: %d\n", r.total)
			for _, i := range r.mismatch {
				fmt.Fprintf(a.stdout, "word %d\n", i)
			}
		}
	}
}

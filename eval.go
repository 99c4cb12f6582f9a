package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/percona-lab/l99/config"
	"github.com/percona-lab/l99/errors"
	"github.com/percona-lab/l99/l99"
	"github.com/percona-lab/l99/laws"
	"github.com/percona-lab/l99/list"
	"github.com/percona-lab/l99/log"
	"github.com/percona-lab/l99/metrics"
)

// parseList parses integer arguments into a list in argument order.
func parseList(args []string) (list.List[int], error) {
	vals := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return list.List[int]{}, errors.Wrapf(err, "element %d", i)
		}

		vals[i] = v
	}

	return list.FromSlice(vals), nil
}

// parsePos parses a 0-based position. Negative positions are rejected.
func parsePos(arg string) (uint, error) {
	pos, err := strconv.ParseUint(arg, 10, strconv.IntSize)
	if err != nil {
		return 0, errors.Wrap(err, "position")
	}

	return uint(pos), nil
}

func evalOption(cmd *cobra.Command, p *printer, op string, args []string) error {
	var pos uint
	if op == "kth" {
		var err error
		pos, err = parsePos(args[0])
		if err != nil {
			return err
		}

		args = args[1:]
	}

	l, err := parseList(args)
	if err != nil {
		return err
	}

	log.Ctx(cmd.Context()).With(log.Op(op)).Debugf("input: %v", l)
	metrics.AddOperation(op)

	var rv l99.Option[int]
	switch op {
	case "last":
		rv = l99.Last(l)
	case "last-but-one":
		rv = l99.LastButOne(l)
	case "kth":
		rv = l99.Kth(l, pos)
	default:
		return errors.Errorf("unknown operation %q", op)
	}

	return p.Option(rv)
}

func evalLength(cmd *cobra.Command, p *printer, args []string) error {
	l, err := parseList(args)
	if err != nil {
		return err
	}

	log.Ctx(cmd.Context()).With(log.Op("length")).Debugf("input: %v", l)
	metrics.AddOperation("length")

	return p.Length(l99.Length(l))
}

func evalReverse(cmd *cobra.Command, p *printer, args []string) error {
	l, err := parseList(args)
	if err != nil {
		return err
	}

	log.Ctx(cmd.Context()).With(log.Op("reverse")).Debugf("input: %v", l)
	metrics.AddOperation("reverse")

	return p.List(l99.Reverse(l))
}

func addCheckFlags(fs *pflag.FlagSet, opts *laws.Options, timeout *time.Duration) {
	fs.IntVar(&opts.Trials, "trials", config.DefaultTrials, "Number of generated lists")
	fs.IntVar(&opts.MaxLen, "max-len", config.DefaultMaxLen, "Maximum generated list length")
	fs.Uint64Var(&opts.Seed, "seed", 0, "Random seed")
	fs.IntVar(&opts.Workers, "workers", 0, "Lists checked concurrently (0 means number of CPUs)")
	fs.StringSliceVar(&opts.Include, "include", nil, "Laws to check (name or prefix*)")
	fs.StringSliceVar(&opts.Exclude, "exclude", nil, "Laws to skip (name or prefix*)")
	fs.DurationVar(timeout, "timeout", config.DefaultCheckTimeout, "Time limit for the whole run")
}

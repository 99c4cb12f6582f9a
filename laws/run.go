package laws

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/percona-lab/l99/config"
	"github.com/percona-lab/l99/errors"
	"github.com/percona-lab/l99/list"
	"github.com/percona-lab/l99/log"
	"github.com/percona-lab/l99/metrics"
)

// Options configures a law checker run. Zero values select defaults.
type Options struct {
	// Trials is the number of generated lists.
	Trials int
	// MaxLen is the maximum length of a generated list.
	MaxLen int
	// Seed makes the generated lists reproducible.
	Seed uint64
	// Workers limits the number of lists checked concurrently.
	Workers int
	// Include and Exclude select laws by name, see MakeFilter.
	Include []string
	Exclude []string
}

func (o Options) withDefaults() Options {
	if o.Trials <= 0 {
		o.Trials = config.DefaultTrials
	}

	if o.MaxLen <= 0 {
		o.MaxLen = config.DefaultMaxLen
	} else {
		o.MaxLen = min(o.MaxLen, config.MaxMaxLen)
	}

	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}

	return o
}

// ErrNoLaws is returned when the include and exclude patterns select nothing.
var ErrNoLaws = errors.New("no laws selected")

// Report summarizes a completed run.
type Report struct {
	Lists  int   `bson:"lists"  json:"lists"`
	Checks int64 `bson:"checks" json:"checks"`
}

// Run checks every law against generated lists.
// It stops at the first violation or when ctx is done.
func Run(ctx context.Context, opts Options) (Report, error) {
	laws := Select(All(), MakeFilter(opts.Include, opts.Exclude))
	if len(laws) == 0 {
		return Report{}, ErrNoLaws
	}

	return run(ctx, opts.withDefaults(), laws)
}

func run(ctx context.Context, opts Options, laws []Law) (Report, error) {
	lg := log.Ctx(ctx).With(log.Op("check"))
	lg.Debugf("Trials: %s, MaxLen: %d, Seed: %d, Workers: %d",
		humanize.Comma(int64(opts.Trials)), opts.MaxLen, opts.Seed, opts.Workers)

	startedAt := time.Now()
	rnd := rand.New(rand.NewPCG(opts.Seed, opts.Seed)) //nolint:gosec

	var rep Report
	var checks atomic.Int64

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(opts.Workers)

	for trial := range opts.Trials {
		if grpCtx.Err() != nil {
			break
		}

		// generated on this goroutine so the sequence depends only on the seed
		l := generate(rnd, opts.MaxLen)
		rep.Lists++

		grp.Go(func() error {
			for _, law := range laws {
				if err := grpCtx.Err(); err != nil {
					return err //nolint:wrapcheck
				}

				metrics.AddLawCheck(law.Name)
				checks.Add(1)

				err := law.Check(l)
				if err != nil {
					metrics.AddLawViolation(law.Name)
					log.Ctx(grpCtx).With(log.Law(law.Name)).Error(err, "")

					return errors.Wrapf(err, "trial %d: %s", trial, law.Name)
				}
			}

			return nil
		})
	}

	err := grp.Wait()
	if err == nil {
		err = ctx.Err()
	}

	rep.Checks = checks.Load()
	if err != nil {
		return rep, err //nolint:wrapcheck
	}

	lg.With(log.Elapsed(time.Since(startedAt))).
		Infof("%s checks over %s lists passed",
			humanize.Comma(rep.Checks), humanize.Comma(int64(rep.Lists)))

	return rep, nil
}

// generate returns a list of up to maxLen small integers.
func generate(rnd *rand.Rand, maxLen int) list.List[int] {
	n := rnd.IntN(maxLen + 1)

	l := list.Nil[int]()
	for range n {
		l = list.Cons(rnd.IntN(100)-50, l) //nolint:mnd
	}

	return l
}

package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/fpgaio/config"
	"github.com/wippyai/fpgaio/internal/logging"
	"github.com/wippyai/fpgaio/pointnn"
	"github.com/wippyai/fpgaio/session"
	"github.com/wippyai/fpgaio/sink"
)

// Points are drawn uniformly from [-pointRange, pointRange) on both axes.
const pointRange = 10.0

type options struct {
	configFile string
	format     string
	out        string
	count      int
	seed       uint64
	simulate   bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "classify-many",
		Short: "Classify random points on the FPGA point classifier.",
		Long: `classify-many draws random points in [-10, 10) x [-10, 10), ` +
			`classifies each on the accelerator and stores x,y,class records ` +
			`in a CSV file or SQLite database.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sim") {
				cfg.Device.Simulate = opts.simulate
			}
			if cmd.Flags().Changed("format") {
				cfg.Sink.Format = opts.format
			}
			if cmd.Flags().Changed("out") {
				cfg.Sink.Path = opts.out
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if opts.count < 0 {
				return fmt.Errorf("point count must not be negative, got %d", opts.count)
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
			} else {
				rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}

			return run(cmd.OutOrStdout(), cfg, opts.count, rng)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", 100, "number of points to classify")
	f.StringVar(&opts.configFile, "config", "", "path to TOML config file")
	f.BoolVar(&opts.simulate, "sim", false, "use the WASM simulator instead of /dev/mem")
	f.StringVar(&opts.format, "format", config.FormatCSV, "output format: csv or sqlite")
	f.StringVarP(&opts.out, "out", "o", "", "output path (default: a unique fpga_classified_points_* file)")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible point sequences")

	return cmd
}

func run(w io.Writer, cfg config.Config, n int, rng *rand.Rand) error {
	log, flush, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	atexit.Register(flush)

	if err := pointnn.Configure(cfg.Device); err != nil {
		return err
	}
	sess, err := pointnn.TakeSession()
	if err != nil {
		return err
	}

	out, err := sink.Open(cfg.Sink)
	if err != nil {
		return multierr.Append(err, sess.Close())
	}

	err = sess.Run(func(s *session.Session) error {
		return classifyMany(s, out, n, rng)
	})
	if err = multierr.Append(err, out.Close()); err != nil {
		return err
	}

	log.Info("classified points", zap.Int("count", n), zap.String("path", out.Path()))
	fmt.Fprintf(w, "Classified %d points into %s\n", n, out.Path())
	return nil
}

// classifyMany classifies n random points and writes one record per point.
// Records carry the coordinates as the accelerator saw them after rounding.
func classifyMany(s *session.Session, out sink.Sink, n int, rng *rand.Rand) error {
	for i := 0; i < n; i++ {
		p, err := pointnn.NewPoint(randomCoord(rng), randomCoord(rng))
		if err != nil {
			return err
		}
		class, err := pointnn.Classify(s, p)
		if err != nil {
			return err
		}
		if err := out.Write(sink.Record{
			X:     p.First.Float64(),
			Y:     p.Second.Float64(),
			Class: class.Float64(),
		}); err != nil {
			return err
		}
	}
	return out.Flush()
}

func randomCoord(rng *rand.Rand) float64 {
	return -pointRange + 2*pointRange*rng.Float64()
}

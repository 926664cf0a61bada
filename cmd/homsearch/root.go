package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvhom/batch"
	"github.com/katalvlaran/lvhom/graphio"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "homsearch",
		Short:         "Graph homomorphism search, cores and cube-like quotients",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String("format", string(graphio.EdgeList), "graph encoding: edgelist or graph6")
	pf.Int("limit", 0, "cap on homomorphisms counted per pair (0 = all)")
	pf.Int("workers", 0, "pairs evaluated in parallel (0 = GOMAXPROCS)")
	pf.Int("max-deletions", batch.DefaultMaxDeletions, "edge deletions probed when no homomorphism exists")
	pf.Bool("vertex-transitive", false, "treat inputs to core as vertex-transitive")
	pf.Bool("avoid-complete", false, "skip the complete graph when enumerating cubes")
	pf.String("catalog", "", "directory of a persistent canonical-form catalog")
	pf.Bool("squash", false, "try every displacement on each enumerated cube")
	pf.String("out", "", "output file (default stdout)")
	if err := bindFlags(a.v, pf); err != nil {
		panic(err)
	}

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	_ = klogFlags.Set("logtostderr", "true")
	pf.AddGoFlagSet(klogFlags)
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root.AddCommand(a.newPairsCmd(), a.newCoreCmd(), a.newCubesCmd(), a.newConfigCmd())

	return root
}

func (a *app) format() (graphio.Format, error) {
	return graphio.ParseFormat(a.cfg.Format)
}

// output returns the --out file or w, and a close func.
func (a *app) output(w io.Writer) (io.Writer, func() error, error) {
	if a.cfg.Out == "" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.Out)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating output")
	}

	return f, f.Close, nil
}

func (a *app) readGraphs(path string) ([]graphio.Named, error) {
	format, err := a.format()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening graphs")
	}
	defer f.Close()

	graphs, err := graphio.ReadGraphs(f, format)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	klog.V(1).Infof("read %d graphs from %s", len(graphs), path)

	return graphs, nil
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhom/batch"
	"github.com/katalvlaran/lvhom/catalog"
	"github.com/katalvlaran/lvhom/cayley"
	"github.com/katalvlaran/lvhom/graphio"
	"github.com/katalvlaran/lvhom/retract"
)

func (a *app) newPairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs FILE",
		Short: "Count homomorphisms between every ordered pair of graphs and write CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := a.readGraphs(args[0])
			if err != nil {
				return err
			}
			results, err := batch.Run(cmd.Context(), graphs,
				batch.WithLimit(a.cfg.Limit),
				batch.WithWorkers(a.cfg.Workers),
				batch.WithMaxDeletions(a.cfg.MaxDeletions),
			)
			if err != nil {
				return err
			}
			w, closeOut, err := a.output(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err = batch.WriteCSV(w, results); err != nil {
				_ = closeOut()
				return err
			}

			return closeOut()
		},
	}
}

func (a *app) newCoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "core FILE",
		Short: "Reduce every graph to its core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := a.readGraphs(args[0])
			if err != nil {
				return err
			}
			var ropts []retract.Option
			ropts = append(ropts, retract.WithContext(cmd.Context()))
			if a.cfg.VertexTransitive {
				ropts = append(ropts, retract.WithVertexTransitive())
			}

			cores := make([]graphio.Named, 0, len(graphs))
			for _, ng := range graphs {
				c, err := retract.FindCore(ng.Graph, ropts...)
				if err != nil {
					return errors.WithMessage(err, ng.Name)
				}
				klog.Infof("%s: order %d, core order %d", ng.Name, ng.Graph.VertexCount(), c.VertexCount())
				cores = append(cores, graphio.Named{Name: ng.Name, Graph: c})
			}

			format, err := a.format()
			if err != nil {
				return err
			}
			w, closeOut, err := a.output(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err = graphio.WriteGraphs(w, format, cores); err != nil {
				_ = closeOut()
				return err
			}

			return closeOut()
		},
	}
}

func (a *app) newCubesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cubes DIM",
		Short: "Enumerate non-isomorphic cube-like graphs of a dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("bad dimension %q", args[0])
			}
			format, err := a.format()
			if err != nil {
				return err
			}
			var copts []cayley.CubeOption
			if a.cfg.AvoidComplete {
				copts = append(copts, cayley.WithAvoidComplete())
			}
			if a.cfg.Catalog != "" {
				cat, err := catalog.Open(catalog.Options{Path: a.cfg.Catalog})
				if err != nil {
					return err
				}
				defer cat.Close()
				copts = append(copts, cayley.WithSeenSet(cat))
			}

			w, closeOut, err := a.output(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err = a.writeCubes(w, dim, format, copts); err != nil {
				_ = closeOut()
				return err
			}

			return closeOut()
		},
	}
}

func (a *app) writeCubes(w io.Writer, dim int, format graphio.Format, copts []cayley.CubeOption) error {
	it := cayley.CubeLikeGraphs(dim, copts...)
	defer it.Close()
	sp := it.Space()
	count := 0
	for it.Next() {
		enc, err := format.Encode(it.Graph())
		if err != nil {
			return err
		}
		labels := make([]string, len(it.Generators()))
		for i, g := range it.Generators() {
			labels[i] = sp.Label(g)
		}
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(labels, " "), enc)
		count++

		if !a.cfg.Squash {
			continue
		}
		for _, c := range sp.Elements() {
			if c.IsZero() {
				continue
			}
			q, err := cayley.Squash(it.Graph(), sp, c)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\tc=%s %s", sp.Label(c), q.Outcome)
			if q.Outcome == cayley.Collapsed {
				fmt.Fprintf(w, " %v", q.Survivors)
			}
			fmt.Fprintln(w)
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	klog.Infof("cubes: %d graphs of dimension %d", count, dim)

	return nil
}

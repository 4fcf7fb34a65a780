package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vgunfold/hapidx"
	"github.com/katalvlaran/vgunfold/idmap"
	"github.com/katalvlaran/vgunfold/unfold"
)

// Flag-backed globals, following cmd/aleutian/commands.go's convention
// of package-level vars bound via Flags() in a single command tree.
var (
	graphPath    string
	refIdxPath   string
	hapIdxPath   string
	outPath      string
	mapInPath    string
	mapOutPath   string
	showProgress bool

	rootCmd = &cobra.Command{
		Use:   "vgunfold",
		Short: "Restore pruned variation-graph evidence as bounded, acyclic duplicated regions",
	}

	unfoldCmd = &cobra.Command{
		Use:   "unfold",
		Short: "Unfold a pruned variation graph against reference-path and haplotype-thread evidence",
		RunE:  runUnfold,
	}
)

func init() {
	unfoldCmd.Flags().StringVar(&graphPath, "graph", "", "path to the pruned variation graph (required)")
	unfoldCmd.Flags().StringVar(&refIdxPath, "refidx", "", "path to the reference-path index (required)")
	unfoldCmd.Flags().StringVar(&hapIdxPath, "hapidx", "", "path to the haplotype-thread index (optional)")
	unfoldCmd.Flags().StringVar(&outPath, "out", "", "path to write the unfolded graph (required)")
	unfoldCmd.Flags().StringVar(&mapInPath, "map-in", "", "path to load a prior duplicate-id map M from (optional)")
	unfoldCmd.Flags().StringVar(&mapOutPath, "map-out", "", "path to save the duplicate-id map M to (optional)")
	unfoldCmd.Flags().BoolVar(&showProgress, "progress", false, "log progress at each pipeline stage")

	_ = unfoldCmd.MarkFlagRequired("graph")
	_ = unfoldCmd.MarkFlagRequired("refidx")
	_ = unfoldCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(unfoldCmd)
}

func progressf(format string, args ...any) {
	if showProgress {
		slog.Info(fmt.Sprintf(format, args...))
	}
}

func runUnfold(cmd *cobra.Command, args []string) error {
	progressf("loading graph from %s", graphPath)
	g, err := loadGraph(graphPath)
	if err != nil {
		return err
	}

	progressf("loading reference-path index from %s", refIdxPath)
	x, err := loadRefIndex(refIdxPath)
	if err != nil {
		return err
	}

	progressf("loading haplotype-thread index from %s", hapIdxPath)
	hStatic, err := loadHapIndex(hapIdxPath)
	if err != nil {
		return err
	}
	// A nil *hapidx.Static boxed into the hapidx.Index interface is a
	// non-nil interface value; unfold.Unfold's empty-H check compares
	// the interface itself, so an absent index must stay a literal nil
	// interface, not a typed nil.
	var h hapidx.Index
	if hStatic != nil {
		h = hStatic
	}

	var m *idmap.Map
	if mapInPath != "" {
		progressf("loading duplicate-id map from %s", mapInPath)
		m, err = idmap.LoadFile(mapInPath)
		if err != nil {
			return err
		}
	} else {
		m = unfold.NewMap(g)
	}

	progressf("unfolding")
	if _, err := unfold.Unfold(g, x, h, m); err != nil {
		return err
	}

	progressf("verifying")
	failures, err := unfold.VerifyWalks(context.Background(), g, m, x, h)
	if err != nil {
		return err
	}
	if failures > 0 {
		slog.Warn("verification found unrealized evidence walks", "failures", failures)
	} else {
		progressf("verification clean: 0 failures")
	}

	progressf("writing unfolded graph to %s", outPath)
	if err := saveGraph(outPath, g); err != nil {
		return err
	}

	if mapOutPath != "" {
		progressf("saving duplicate-id map to %s", mapOutPath)
		if err := m.SaveFile(mapOutPath); err != nil {
			return err
		}
	}

	return nil
}

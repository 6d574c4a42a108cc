package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnarkffi/gnb/internal/build"
	"github.com/gnarkffi/gnb/internal/buildenv"
	"github.com/gnarkffi/gnb/internal/config"
	"github.com/gnarkffi/gnb/internal/watch"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	buildConfig   string
	buildSource   string
	buildPrebuilt string
	buildOut      string
	buildEnvs     string
	buildBindgen  string
	buildStrict   bool
	buildForce    bool
	buildVerbose  bool
	buildWatch    bool
)

var buildCmd = &cobra.Command{
	Use:   "build [triple...]",
	Short: "Build libgnark for one or more target triples",
	Long: `Build produces the native library, its C header, and the link line for
each target triple. With no triples on the command line, the targets come
from gnb.yaml; with none configured, a host-native build runs.`,
	Args: cobra.ArbitraryArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildConfig, "config", "c", "", "Config file (default gnb.yaml if present)")
	buildCmd.Flags().StringVar(&buildSource, "source", "", "Go source tree of the library")
	buildCmd.Flags().StringVar(&buildPrebuilt, "prebuilt", "", "Root of per-triple prebuilt artifacts")
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output root (default: workspace cache dir)")
	buildCmd.Flags().StringVar(&buildEnvs, "envs", "", `Explicit env override, e.g. "GOOS=ios;GOARCH=arm64;CC=/x"`)
	buildCmd.Flags().StringVar(&buildBindgen, "bindgen", "", "Bindings generator command (header path appended)")
	buildCmd.Flags().BoolVar(&buildStrict, "strict-envs", false, "Reject malformed --envs entries")
	buildCmd.Flags().BoolVarP(&buildForce, "force", "f", false, "Rebuild even when the cache is current")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Enable verbose build output")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "Rebuild when the source tree changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildConfig)
	if err != nil {
		return err
	}
	if buildSource != "" {
		cfg.SourceDir = buildSource
	}
	if buildPrebuilt != "" {
		cfg.PrebuiltDir = buildPrebuilt
	}
	if buildOut != "" {
		cfg.OutDir = buildOut
	}
	if buildEnvs != "" {
		cfg.Envs = buildEnvs
	}
	if buildBindgen != "" {
		cfg.Bindgen = buildBindgen
	}
	if buildStrict {
		cfg.StrictEnvs = true
	}
	if buildVerbose {
		log.SetOutputLevel(log.Ldebug)
	}

	targets := args
	if len(targets) == 0 {
		targets = cfg.Targets
	}
	if len(targets) == 0 {
		targets = []string{""} // host-native
	}

	ctx := context.Background()
	runAll := func() error {
		for _, triple := range targets {
			if err := buildOne(ctx, cfg, triple); err != nil {
				return err
			}
		}
		return nil
	}

	if err := runAll(); err != nil {
		return err
	}
	if !buildWatch {
		return nil
	}

	log.Infof("watching %s for changes", cfg.SourceDir)
	return watch.Dir(ctx, cfg.SourceDir, time.Second, func() {
		if err := runAll(); err != nil {
			log.Errorf("rebuild failed: %v", err)
		}
	})
}

func buildOne(ctx context.Context, cfg *config.Config, triple string) error {
	outDir, err := outDirFor(cfg, triple)
	if err != nil {
		return err
	}

	// Flag/config override wins over the ambient GNB_GO_ENVS variable.
	envs := cfg.Envs
	if envs == "" {
		envs = buildenv.Override()
	}

	b := build.New(build.Options{
		Triple:         triple,
		SourceDir:      cfg.SourceDir,
		PrebuiltDir:    cfg.PrebuiltDir,
		OutDir:         outDir,
		Override:       envs,
		StrictOverride: cfg.StrictEnvs,
		Bindgen:        cfg.Bindgen,
		Force:          buildForce,
		Host:           buildenv.Host(),
		NDK:            buildenv.NDK(),
	})
	res, err := b.Build(ctx)
	if err != nil {
		return fmt.Errorf("build %s: %w", displayTarget(triple), err)
	}

	how := "built"
	switch {
	case res.Prebuilt:
		how = "prebuilt"
	case res.Cached:
		how = "cached"
	}
	fmt.Printf("%s: %s (%s)\n", displayTarget(triple), res.Artifact, how)
	fmt.Printf("  link: %s\n", strings.Join(res.LinkArgs, " "))
	return nil
}

func outDirFor(cfg *config.Config, triple string) (string, error) {
	if cfg.OutDir == "" {
		return buildenv.OutDir(triple)
	}
	name := triple
	if name == "" {
		name = "host"
	}
	return filepath.Join(cfg.OutDir, name), nil
}

func displayTarget(triple string) string {
	if triple == "" {
		return "host"
	}
	return triple
}

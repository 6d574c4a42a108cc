package internal

import (
	"fmt"

	"github.com/gnarkffi/gnb/internal/buildenv"
	"github.com/gnarkffi/gnb/internal/recipe"
	"github.com/gnarkffi/gnb/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	resolveEnvs    string
	resolveScratch string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [triple]",
	Short: "Show the build recipe for a target triple",
	Long: `Resolve prints the environment, build mode and artifact name a build of
the given triple would use, without compiling anything. Wrapper scripts
required by the recipe are synthesized into the scratch directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveEnvs, "envs", "", "Explicit env override to apply")
	resolveCmd.Flags().StringVar(&resolveScratch, "scratch", "", "Directory for wrapper scripts (default: workspace out dir)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	var triple string
	if len(args) == 1 {
		triple = args[0]
	}

	scratch := resolveScratch
	if scratch == "" {
		var err error
		scratch, err = buildenv.OutDir(triple)
		if err != nil {
			return err
		}
	}

	envs := resolveEnvs
	if envs == "" {
		envs = buildenv.Override()
	}

	tc := &toolchain.Resolver{
		ScratchDir: scratch,
		Host:       buildenv.Host(),
		NDK:        buildenv.NDK(),
	}
	rcp, err := recipe.Assemble(triple, recipe.ParseOverride(envs), tc)
	if err != nil {
		return err
	}

	fmt.Printf("target:    %s\n", displayTarget(triple))
	fmt.Printf("buildmode: %s\n", rcp.Mode)
	fmt.Printf("artifact:  %s\n", rcp.Artifact)
	if len(rcp.Env) == 0 {
		fmt.Println("env:       (host native)")
		return nil
	}
	for i, e := range rcp.Env {
		label := "env:      "
		if i > 0 {
			label = "          "
		}
		fmt.Printf("%s %s\n", label, e)
	}
	return nil
}

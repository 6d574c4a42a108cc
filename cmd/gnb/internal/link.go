package internal

import (
	"fmt"
	"strings"

	"github.com/gnarkffi/gnb/internal/buildenv"
	"github.com/gnarkffi/gnb/internal/linkdeps"
	"github.com/gnarkffi/gnb/internal/target"
	"github.com/spf13/cobra"
)

var linkDir string

var linkCmd = &cobra.Command{
	Use:   "link [triple]",
	Short: "Print the linker arguments for a target triple",
	Long: `Link prints the arguments the final linker needs to consume libgnark for
the given triple: the search path, the library, and the system libraries
the Go runtime requires on that platform.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLink,
}

func init() {
	linkCmd.Flags().StringVarP(&linkDir, "dir", "d", "", "Library search directory (default: workspace out dir)")
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	var triple string
	if len(args) == 1 {
		triple = args[0]
	}

	dir := linkDir
	if dir == "" {
		var err error
		dir, err = buildenv.OutDir(triple)
		if err != nil {
			return err
		}
	}

	cls := target.Classify(triple)
	fmt.Println(strings.Join(linkdeps.LinkLine(cls, dir), " "))
	return nil
}

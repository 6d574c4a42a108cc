package internal

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gnb",
	Short: "gnb builds the native gnark FFI library",
	Long: `gnb builds libgnark as a static archive or shared object for a target
platform, resolving the cross-compilation toolchain from the target triple.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}

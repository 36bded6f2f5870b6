// Command verilogdump is the reference driver for the verilog library:
// it opens one or more structural Verilog sources, feeds them through
// verilog.Driver, and prints the recognized modules/ports/nets/
// assignments/instances either as canonical text or as a
// machine-readable event stream (JSON or msgpack).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "verilogdump",
	Short: "Structural Verilog netlist dumper",
	Long:  `verilogdump parses a structural Verilog subset and prints the recognized records.`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

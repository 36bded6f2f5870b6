package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	versionColor = color.New(color.FgCyan, color.Bold)
	version      = "0.1.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the verilogdump version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(versionColor.Sprint(version))
		return nil
	},
}

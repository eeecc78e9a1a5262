package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the stockcharts CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stockcharts version %s\n", version)
		fmt.Println("Monthly OHLC charts from daily equity prices")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

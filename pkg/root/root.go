package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gmail",
	Short: "Gmail SMTP mail CLI",
	Long:  `A command line tool for composing and sending emails through Gmail's SMTP submission endpoint.`,
}

// SetInfo overrides the root command identity, for callers embedding the
// commands under their own binary name.
func SetInfo(use, short, long string) {
	rootCmd.Use = use
	rootCmd.Short = short
	rootCmd.Long = long
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func GetRoot() *cobra.Command {
	return rootCmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasse/grabby/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show build information",
	Run: func(_ *cobra.Command, _ []string) {
		theme := styles.DefaultTheme()
		fmt.Println(theme.Title("grabby"))
		fmt.Println(theme.KV("version", buildInfo.Version))
		fmt.Println(theme.KV("commit", buildInfo.Commit))
		fmt.Println(theme.KV("built", buildInfo.BuildDate))
		fmt.Println(theme.KV("go", buildInfo.GoVersion))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render mail templates from a template directory for inspection",
}

var templatesDir string

func init() {
	rootCmd.PersistentFlags().StringVarP(&templatesDir, "templates", "t", ".",
		"directory holding one subdirectory per template id")
}

func Execute() error {
	return rootCmd.Execute()
}

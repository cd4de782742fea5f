package main

import (
	"fmt"

	"github.com/aretw0/grievanceflow/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var (
	previewLang string
	previewRaw  bool
	previewWrap int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the messages of one language in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator()
		if err != nil {
			return err
		}

		code := previewLang
		if code == "" {
			code = gen.Config().Languages[0].Code
		}
		if _, ok := gen.Config().Language(code); !ok {
			return fmt.Errorf("language %q is not configured", code)
		}

		doc, err := gen.Generate()
		if err != nil {
			return err
		}

		md := tui.PreviewMarkdown(doc, code)
		if previewRaw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		render, err := tui.NewRenderer(previewWrap)
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewLang, "lang", "l", "", "Language code (default: first configured language)")
	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "Print the markdown without rendering")
	previewCmd.Flags().IntVar(&previewWrap, "width", 80, "Word wrap width")
	rootCmd.AddCommand(previewCmd)
}

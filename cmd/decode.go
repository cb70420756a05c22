package cmd

import (
	"fmt"
	"strings"

	"github.com/luminabrain/lb/internal/domain"
	"github.com/spf13/cobra"
)

type decodeResult struct {
	Text      string `json:"text"`
	Intensity int    `json:"intensity"`
}

func newDecodeCmd(_ *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode TEXT...",
		Short: "Score the intensity of a thought",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			result := decodeResult{Text: text, Intensity: domain.DecodeIntensity(text)}
			if asJSON {
				return writeJSON(cmd, result)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "intensity: %d\n", result.Intensity)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

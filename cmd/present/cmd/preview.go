package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/present/internal/preview"
	"github.com/go-drift/present/pkg/graphics"
)

func newPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Open an interactive terminal preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolve()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, r)
			if err != nil {
				return err
			}
			p := r.Preview()
			return preview.Run(preview.Options{
				Title:     r.ProjectName,
				Size:      graphics.Size{Width: p.Width, Height: p.Height},
				FrameRate: p.FrameRate,
				Tuning:    r.Tuning(),
				Logger:    logger,
			})
		},
	}
}

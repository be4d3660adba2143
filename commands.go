package modelhash

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewCommand creates the Cobra command that looks up a single file.
//
// Usage: modelhash <file>
//
// Flag parsing is disabled: the first argument is always the file path, even
// when it starts with a dash, and any further arguments are ignored. The
// registry response (or NotFoundBody) is written to stdout as one line of
// compact JSON. Warnings go to stderr; pass WithLogger for debug output.
func NewCommand(cfg Config, opts ...Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modelhash <file>",
		Short: "Look up a model file in the Civitai registry",
		Long: "Compute the SHA-256 digest of a model file and print the matching model version " +
			"from the Civitai registry as JSON.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newStderrLogger(cmd.ErrOrStderr())

			client, err := NewClient(cfg, append([]Option{WithLogger(logger)}, opts...)...)
			if err != nil {
				return fmt.Errorf("failed to initialize client: %w", err)
			}

			res, err := client.Lookup(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res)
		},
		DisableFlagParsing: true,
		SilenceUsage:       true,
	}

	return cmd
}

// writeResult prints the result body followed by a newline.
func writeResult(w io.Writer, res Result) error {
	_, err := fmt.Fprintf(w, "%s\n", res.Body)
	return err
}

// newStderrLogger returns a text slog logger on w that reports warnings and errors.
func newStderrLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

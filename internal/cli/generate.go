package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/pipeline"
)

// defaultOutputBase names generated files when --output is not given.
const defaultOutputBase = "GeneratedUI"

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	output   string // output file (single format), base path (several), or "-" for stdout
	formats  string // comma-separated formats
	detailed bool   // flex, gap and summaries in diagrams
	refresh  bool   // bypass cached artifacts
	noCache  bool   // disable the cache entirely
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate React code or a diagram from the current layout",
		Long: `Generate the current layout in one or more formats:

  tsx   the React component (default)
  json  the layout itself
  dot   the layout tree as Graphviz source
  svg   the layout tree diagram`,
		Example: `  pagesmith generate -o - | pbcopy
  pagesmith generate -f tsx,svg -o site/Header`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file (single format), base path (several), or "-" for stdout`)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): tsx (default), json, dot, svg (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include alignment, gap and component summaries in diagrams")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate even if cached")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	ctx := cmd.Context()
	formats := pipeline.ParseFormats(opts.formats)
	if len(formats) == 0 {
		formats = []string{pipeline.DefaultFormat}
	}
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	if opts.output == "-" && len(formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(formats))
	}

	e, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	runner := c.newRunner(ctx, e.cfg, opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Export(ctx, e.session.Snapshot(), pipeline.Options{
		Formats:  formats,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done("Generated "+strings.Join(formats, ", "), "hash", res.Hash[:12])

	if len(res.Unknown) > 0 {
		printWarning("Unknown component types rendered as placeholders: %s", strings.Join(res.Unknown, ", "))
	}

	if opts.output == "-" {
		_, err := cmd.OutOrStdout().Write(res.Artifacts[formats[0]])
		return err
	}

	for _, format := range formats {
		path := outputPath(opts.output, format, len(formats) > 1)
		if err := writeArtifact(path, res.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	printStats(res.Stats.Columns, res.Stats.Components, res.CacheInfo.AllHit(formats))
	return nil
}

// outputPath picks the file for format. A single format writes to output
// verbatim; several formats treat output as a base path.
func outputPath(output, format string, multiple bool) string {
	if output == "" {
		return defaultOutputBase + pipeline.Extension(format)
	}
	if !multiple {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + pipeline.Extension(format)
}

func writeArtifact(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

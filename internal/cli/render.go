package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/pipeline"
)

// renderCommand creates the render command for writing result artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags      scenarioFlags
		formatsStr string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "render [scenario]",
		Short: "Render the result as JSON, SVG or text",
		Long: `Render the evaluated scenario to one or more files.

With a single format, -o names the output file ("-" writes to stdout).
With several formats, -o is a base path and each file gets its format's
extension. Without -o, files are written next to the scenario.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := pipeline.ParseFormats(formatsStr)
			if err != nil {
				return err
			}
			if len(formats) == 0 {
				formats = []string{pipeline.FormatSVG}
			}

			sc, err := loadScenario(cmd, args, &flags)
			if err != nil {
				return err
			}
			result, err := c.evaluate(cmd.Context(), sc, flags.refresh, formats)
			if err != nil {
				return err
			}

			if output == "-" && len(formats) == 1 {
				_, err := os.Stdout.Write(result.Artifacts[formats[0]])
				return err
			}
			paths, err := writeArtifacts(result.Artifacts, formats, scenarioPath(args), output)
			if err != nil {
				return err
			}

			printSuccess("Rendered %s", result.Scenario)
			for _, p := range paths {
				printFile(p)
			}
			fmt.Println(planStats(result.Plan, result.CacheInfo.ResultHit))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, text (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")

	return cmd
}

// writeArtifacts writes one file per format and returns the paths written.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	base := basePath(output, input)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + artifactExt(format)
		if len(formats) == 1 && output != "" {
			path = output
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, the input's extension is replaced with ".stack" so a
// JSON scenario is never overwritten by its JSON result.
// If output has a format extension (.svg, .json, .txt), that is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".stack"
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] || ext == artifactExt(pipeline.FormatText) {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

func artifactExt(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

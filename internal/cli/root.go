// Package cli implements the wordsearch command line.
//
// The same binary runs the MCP server (serve) and solves puzzles directly:
// search works on a grid given as text, solve reads the grid from an image
// with OCR and writes the highlighted solution as a PNG.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/wordsearch-mcp/internal/config"
	"github.com/ironsheep/wordsearch-mcp/internal/imaging"
	"github.com/ironsheep/wordsearch-mcp/internal/logger"
	"github.com/ironsheep/wordsearch-mcp/internal/ocr"
)

// BuildInfo is set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// app carries state shared by the commands of one invocation.
type app struct {
	build      BuildInfo
	configPath string
	verbose    bool
	cfg        *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	if build.Version == "" {
		build.Version = "dev"
	}
	a := &app{build: build, cfg: config.Default()}

	root := &cobra.Command{
		Use:   "wordsearch",
		Short: "Solve word search puzzles from scanned images",
		Long: `wordsearch finds words in a letter grid and draws the solutions over
the puzzle image. Run "wordsearch serve" to expose it as an MCP server.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.wordsearch/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newSearchCmd(a),
		newSolveCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the command line.
func Execute(build BuildInfo) error {
	return NewRootCmd(build).Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	if err := logger.Configure(level); err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())
	logger.Debug("wordsearch %s (built %s, commit %s)", a.build.Version, a.build.BuildTime, a.build.GitCommit)
	return nil
}

func (a *app) ocrOptions() ocr.Options {
	return ocr.Options{
		Language:    a.cfg.OCR.Language,
		Whitelist:   a.cfg.OCR.Whitelist,
		PageSegMode: a.cfg.OCR.PageSegMode,
		Threshold:   uint8(a.cfg.OCR.Threshold),
	}
}

func (a *app) renderStyle() imaging.RenderStyle {
	return imaging.RenderStyle{
		LineWidth: a.cfg.Render.LineWidth,
		Color:     a.cfg.Render.Color,
		Alpha:     uint8(a.cfg.Render.Alpha),
	}
}

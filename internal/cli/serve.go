package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/wordsearch-mcp/internal/logger"
	"github.com/ironsheep/wordsearch-mcp/internal/server"
	"github.com/ironsheep/wordsearch-mcp/internal/session"
)

func newServeCmd(a *app) *cobra.Command {
	var displayHeight int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol server on stdio.

The server communicates over stdin/stdout using JSON-RPC; logs go to stderr.

MCP client configuration:
  {
    "mcpServers": {
      "wordsearch": {
        "command": "/path/to/wordsearch",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if displayHeight <= 0 {
				displayHeight = a.cfg.Display.Height
			}
			srv := server.New(server.Options{
				Session: session.Options{
					DisplayHeight: displayHeight,
					Style:         a.renderStyle(),
				},
				OCR:     a.ocrOptions(),
				Version: a.build.Version,
			})
			logger.Info("Serving MCP on stdio")
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&displayHeight, "display-height", 0, "display height in pixels (default from config)")
	return cmd
}

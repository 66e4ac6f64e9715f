package main

import (
	"log"
	"os"

	"github.com/ironsheep/wordsearch-mcp/internal/cli"
	"github.com/ironsheep/wordsearch-mcp/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(logger.Flags)

	err := cli.Execute(cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})
	if err != nil {
		os.Exit(1)
	}
}

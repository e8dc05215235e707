package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-editor-mcp/internal/config"
	"github.com/ironsheep/image-editor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-editor-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}

	// Logging goes to stderr; stdout is for the MCP protocol
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}

	if len(os.Args) > 1 && os.Args[1] == "apply" {
		if err := runApply(os.Args[2:], logger); err != nil {
			logger.WithError(err).Error("Apply failed")
			os.Exit(1)
		}
		return
	}

	logger.WithFields(logrus.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("Image editor MCP server starting")

	server.Version = Version
	srv := server.New(cfg, logger)
	if err := srv.Run(); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}

func printHelp() {
	fmt.Println("image-editor-mcp - MCP server for single-image editing")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  image-editor-mcp [options]          Serve MCP over stdin/stdout")
	fmt.Println("  image-editor-mcp apply -in SRC -out DST [adjustments]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Apply adjustments:")
	fmt.Println("  -brightness F    Brightness factor 0..2 (default 1)")
	fmt.Println("  -contrast F      Contrast factor 0..2 (default 1)")
	fmt.Println("  -saturation F    Saturation factor 0..2 (default 1)")
	fmt.Println("  -rotate N        Degrees counter-clockwise, -180..180")
	fmt.Println("  -crop-left F     Fraction removed from each side, 0..0.4")
	fmt.Println("  -crop-top F")
	fmt.Println("  -crop-right F")
	fmt.Println("  -crop-bottom F")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  IMAGE_EDITOR_CONFIG=path        YAML configuration file")
	fmt.Println("  IMAGE_EDITOR_LOG_LEVEL=debug    Log level (default info)")
	fmt.Println("  IMAGE_EDITOR_LOG_FORMAT=json    Log format: text or json")
	fmt.Println()
	fmt.Println("In server mode it communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

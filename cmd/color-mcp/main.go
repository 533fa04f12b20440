package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/tdhoang/color-tools-mcp/internal/httpapi"
	"github.com/tdhoang/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-tools-mcp - MCP server for color extraction and colorimetry")
			fmt.Println()
			fmt.Println("Usage: color-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  --http ADDR      Serve the HTTP API on ADDR instead of MCP stdio")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("By default this server communicates via MCP protocol over")
			fmt.Println("stdin/stdout. Configure it in your MCP client (e.g., Claude")
			fmt.Println("Desktop), or pass --http to expose the same operations as a")
			fmt.Println("REST API.")
			return
		}
	}

	httpAddr := flag.String("http", "", "serve the HTTP API on this address instead of MCP stdio")
	flag.Parse()

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("COLOR_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv, err := server.New()
	if err != nil {
		log.Fatalf("Server init error: %v", err)
	}

	if *httpAddr != "" {
		api := httpapi.New(srv.Cache(), srv.Namer())
		log.Printf("Serving HTTP API on %s", *httpAddr)
		if err := http.ListenAndServe(*httpAddr, api.Router()); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
		return
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

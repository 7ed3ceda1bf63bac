package main

import (
	"fmt"
	"log"
	"os"

	"github.com/lumos-dev/icongen/internal/icon"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	outDir := "."
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("icongen %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("icongen - renders the lumos icon set")
			fmt.Println()
			fmt.Println("Usage: icongen [output-dir]")
			fmt.Println()
			fmt.Println("Writes icon.png (128x128), icon-512.png, icon-64.png and")
			fmt.Println("icon-32.png into output-dir (default: current directory).")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			return
		default:
			outDir = os.Args[1]
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	outputs, err := icon.GenerateSet(outDir)
	for _, out := range outputs {
		log.Printf("wrote %s (%dx%d)", out.Path, out.Size, out.Size)
	}
	if err != nil {
		log.Fatalf("icon generation failed: %v", err)
	}
}

// Command shipkit bumps the project version file and writes dependency
// manifests for release builds.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/koral--/shipkit/internal/cli"
)

func main() {
	// Optional .env file; SHIPKIT_ variables set there feed the config.
	_ = godotenv.Load()

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

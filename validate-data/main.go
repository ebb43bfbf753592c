package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"time"

	"foodtour/config"
	"foodtour/validate-data/internal/audit"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	config.InitLogger("validate-data")

	usersPath := flag.String("users", filepath.Join(config.GetEnv("DATA_DIR", "./data"), "users.json"),
		"path to users.json with favorites; skipped when missing")
	timeout := flag.Duration("timeout", time.Minute, "time allowed for loading the catalog")
	flag.Parse()

	favorites, err := audit.LoadFavorites(*usersPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *usersPath).Msg("failed to read users")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	issues, err := audit.Run(ctx, config.CatalogSource(), favorites, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("validation failed")
	}
	if len(issues) > 0 {
		log.Warn().Int("issues", len(issues)).Msg("catalog has integrity issues")
		os.Exit(1)
	}
}

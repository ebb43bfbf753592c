package config

import (
	"context"

	"foodtour/catalog"
)

// LoadCatalog reads the restaurant catalog from the source named by
// CATALOG_SOURCE: "json" (files under DATA_DIR) or "postgres".
func LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	return catalog.Load(ctx, CatalogSource())
}

func CatalogSource() catalog.Source {
	switch GetEnv("CATALOG_SOURCE", "json") {
	case "postgres":
		return catalog.NewPostgresSource(MustInitPostgres())
	default:
		return catalog.NewJSONSource(GetEnv("DATA_DIR", "./data"))
	}
}

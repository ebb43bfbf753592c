package main

import (
	"context"
	"time"

	"foodtour/config"
	httpapi "foodtour/food-svc/internal/api/http"
	"foodtour/food-svc/internal/service"
	"foodtour/food-svc/internal/storage"
	"foodtour/geo"
	"foodtour/search"

	"github.com/rs/zerolog/log"
)

func searchWeights() search.Weights {
	w := search.DefaultWeights()
	w.Name = config.GetEnvFloat("SEARCH_WEIGHT_NAME", w.Name)
	w.Tag = config.GetEnvFloat("SEARCH_WEIGHT_TAG", w.Tag)
	w.Dish = config.GetEnvFloat("SEARCH_WEIGHT_DISH", w.Dish)
	w.RatingFactor = config.GetEnvFloat("SEARCH_RATING_FACTOR", w.RatingFactor)
	return w
}

func main() {
	config.LoadEnv()
	config.InitLogger("food-svc")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	cat, err := config.LoadCatalog(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	tomtom := storage.NewTomTomClient(
		config.GetEnv("TOMTOM_URL", storage.DefaultTomTomURL),
		config.GetEnv("TOMTOM_API_KEY", ""),
		nil,
		config.NewBreaker[[]geo.Point]("tomtom"),
	)

	restaurants := service.NewRestaurantService(cat, service.DefaultQRGenerator{
		BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	})
	searchSvc := service.NewSearchService(
		cat,
		search.NewEngine(searchWeights()),
		search.NewMapAdapter(config.GetEnvFloat("MAP_DEFAULT_RADIUS_KM", search.DefaultMapRadiusKm)),
	)
	routes := service.NewRouteService(tomtom, config.GetEnvInt("ROUTE_CACHE_SIZE", 256))

	handler := httpapi.NewHandler(
		restaurants,
		service.NewFoodService(cat),
		service.NewCategoryService(cat),
		searchSvc,
		routes,
	)

	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))
}

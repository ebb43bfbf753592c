package service

import (
	"foodtour/search"
)

type SearchService struct {
	catalog    CatalogReader
	engine     *search.Engine
	mapAdapter *search.MapAdapter
}

func NewSearchService(catalog CatalogReader, engine *search.Engine, mapAdapter *search.MapAdapter) *SearchService {
	return &SearchService{
		catalog:    catalog,
		engine:     engine,
		mapAdapter: mapAdapter,
	}
}

func (s *SearchService) Search(query string, filters search.Filters) []search.Result {
	return s.engine.Search(query, s.catalog.Restaurants(), s.catalog.Menus(), filters)
}

// FilterMarkers also returns the filters after map defaults were applied,
// so callers can echo what was actually used.
func (s *SearchService) FilterMarkers(filters search.Filters, limit int) ([]search.Marker, search.Filters) {
	effective := s.mapAdapter.EffectiveFilters(filters)
	return s.mapAdapter.FilterMarkers(s.catalog.Restaurants(), effective, limit), effective
}

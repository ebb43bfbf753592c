package httpapi

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"foodtour/geo"
	"foodtour/search"
)

// decodeBody reads a JSON object body. An empty body is an empty object.
func decodeBody(body io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()
	payload := map[string]any{}
	if err := dec.Decode(&payload); err != nil && err != io.EOF {
		return nil, err
	}
	return payload, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func optFloat(payload map[string]any, key string) *float64 {
	v, ok := payload[key]
	if !ok || v == nil {
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}

func optString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return strings.TrimSpace(s)
}

// optIntList returns nil unless the value is a JSON array, so a present
// but malformed list means "no filter". Elements that are not whole
// numbers are skipped, so [1.5] filters everything out.
func optIntList(payload map[string]any, key string) []int {
	list, ok := payload[key].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(list))
	for _, el := range list {
		if f, ok := toFloat(el); ok && f == math.Trunc(f) {
			out = append(out, int(f))
		}
	}
	return out
}

func optStringList(payload map[string]any, key string) []string {
	list, ok := payload[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, el := range list {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// filtersFromPayload coerces a loosely typed request body into search
// filters. Values of the wrong type are dropped rather than rejected.
func filtersFromPayload(payload map[string]any) search.Filters {
	f := search.Filters{
		Province:   optString(payload, "province"),
		Categories: optIntList(payload, "categories"),
		MinPrice:   optFloat(payload, "min_price"),
		MaxPrice:   optFloat(payload, "max_price"),
		MinRating:  optFloat(payload, "min_rating"),
		MaxRating:  optFloat(payload, "max_rating"),
		Tags:       optStringList(payload, "tags"),
	}

	lat, lon := optFloat(payload, "lat"), optFloat(payload, "lon")
	if lat != nil && lon != nil {
		if p := geo.NewPoint(*lat, *lon); p.Valid() {
			f.User = p
		}
	}

	// Clients send the radius in meters or kilometers. Anything above 50 is
	// far too wide for a food search in km, so it is read as meters. The
	// search package only ever sees kilometers.
	if radius := optFloat(payload, "radius"); radius != nil && *radius > 0 {
		km := *radius
		if km > 50 {
			km /= 1000
		}
		f.RadiusKm = &km
	}

	return f
}

func optLimit(payload map[string]any) int {
	if v := optFloat(payload, "limit"); v != nil && *v > 0 {
		return int(*v)
	}
	return 0
}

package usecase

import (
	"math"
	"strconv"
	"strings"

	"estatia/internal/domain/entity"
	"estatia/internal/domain/repository"
)

const (
	defaultPageLimit = 12
	maxPageLimit     = 100
)

var sortSpecs = map[string]repository.SortSpec{
	"price_asc":  {Field: "price", Desc: false},
	"price_desc": {Field: "price", Desc: true},
	"rating":     {Field: "ratings.average", Desc: true},
	"views":      {Field: "views", Desc: true},
	"newest":     {Field: "createdAt", Desc: true},
	"oldest":     {Field: "createdAt", Desc: false},
}

// BuildPropertyQuery maps the loosely-typed listing filter parameters into
// a validated PropertyQuery. Every optional filter is parsed and checked
// individually; a value that fails its check is dropped, never an error.
// Min/max bounds are validated independently, so an inverted range (min >
// max) passes through and simply matches nothing.
func BuildPropertyQuery(params map[string]string) repository.PropertyQuery {
	filter := repository.PropertyFilter{
		Search: params["search"],
		City:   params["city"],
		State:  params["state"],
	}

	if t := params["propertyType"]; entity.ValidPropertyType(t) {
		filter.PropertyType = t
	}
	if t := params["listingType"]; entity.ValidListingType(t) {
		filter.ListingType = t
	}
	if s := params["status"]; entity.ValidPropertyStatus(s) {
		filter.Status = s
	}

	filter.MinPrice = parseNonNegative(params["minPrice"])
	filter.MaxPrice = parseNonNegative(params["maxPrice"])
	filter.MinArea = parseNonNegative(params["minArea"])
	filter.MaxArea = parseNonNegative(params["maxArea"])
	filter.Bedrooms = parsePositive(params["bedrooms"])
	filter.Bathrooms = parsePositive(params["bathrooms"])

	switch params["featured"] {
	case "true":
		v := true
		filter.Featured = &v
	case "false":
		v := false
		filter.Featured = &v
	}

	if raw := params["amenities"]; raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				filter.Amenities = append(filter.Amenities, a)
			}
		}
	}

	sort, ok := sortSpecs[params["sort"]]
	if !ok {
		sort = sortSpecs["newest"]
	}

	return repository.PropertyQuery{
		Filter: filter,
		Sort:   sort,
		Page:   parsePage(params["page"]),
		Limit:  parseLimit(params["limit"]),
	}
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseNonNegative(s string) *float64 {
	if s == "" {
		return nil
	}
	if f, ok := parseNumber(s); ok && f >= 0 {
		return &f
	}
	return nil
}

func parsePositive(s string) *float64 {
	if s == "" {
		return nil
	}
	if f, ok := parseNumber(s); ok && f > 0 {
		return &f
	}
	return nil
}

func parsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parseLimit(s string) int {
	limit, err := strconv.Atoi(s)
	if err != nil {
		return defaultPageLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxPageLimit {
		return maxPageLimit
	}
	return limit
}

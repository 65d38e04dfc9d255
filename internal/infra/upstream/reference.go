package upstream

import (
	"context"
)

// ReferenceGateway serves the create-form dropdown data: countries, cities
// and categories.
type ReferenceGateway struct {
	c *Client
}

func NewReferenceGateway(c *Client) *ReferenceGateway {
	return &ReferenceGateway{c: c}
}

func (g *ReferenceGateway) ListCountries(ctx context.Context, q ListQuery) ([]Country, int, error) {
	var countries []Country
	total, err := g.c.get(ctx, "/admin/country/get-country-list", q.values(), &countries)
	if err != nil {
		return nil, 0, err
	}
	return countries, total, nil
}

func (g *ReferenceGateway) ListCities(ctx context.Context, q ListQuery) ([]City, int, error) {
	var cities []City
	total, err := g.c.get(ctx, "/admin/city/get-city-list", q.values(), &cities)
	if err != nil {
		return nil, 0, err
	}
	return cities, total, nil
}

func (g *ReferenceGateway) ListCategories(ctx context.Context, q ListQuery) ([]Category, int, error) {
	var categories []Category
	total, err := g.c.get(ctx, "/admin/category/get-category-list", q.values(), &categories)
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

package queries

import (
	"context"

	"tripdesk/internal/infra/upstream"

	"golang.org/x/sync/errgroup"
)

// The create form needs its relation dropdowns populated in one round trip.
const referenceBatchLimit = 1000

type ReferenceReadStore interface {
	ListCountries(ctx context.Context, q upstream.ListQuery) ([]upstream.Country, int, error)
	ListCities(ctx context.Context, q upstream.ListQuery) ([]upstream.City, int, error)
	ListCategories(ctx context.Context, q upstream.ListQuery) ([]upstream.Category, int, error)
}

type AgencyOptionReadStore interface {
	ListAgencies(ctx context.Context, q upstream.ListQuery) ([]upstream.Agency, int, error)
}

type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CityOption struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CountryID int    `json:"country_id"` // lets the client filter by country
}

type PackageFormData struct {
	Countries  []Option     `json:"countries"`
	Cities     []CityOption `json:"cities"`
	Categories []Option     `json:"categories"`
	Agencies   []Option     `json:"agencies"`
}

type FormQueries interface {
	PackageFormData(ctx context.Context) (*PackageFormData, error)
}

type formQueriesImpl struct {
	refs     ReferenceReadStore
	agencies AgencyOptionReadStore
}

func NewFormQueries(refs ReferenceReadStore, agencies AgencyOptionReadStore) FormQueries {
	return &formQueriesImpl{refs: refs, agencies: agencies}
}

// PackageFormData fans out the four reference fetches concurrently; unlike
// the dashboard panels, the form is unusable with any of them missing, so
// the first failure cancels the rest.
func (q *formQueriesImpl) PackageFormData(ctx context.Context) (*PackageFormData, error) {
	data := &PackageFormData{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		countries, _, err := q.refs.ListCountries(ctx, upstream.ListQuery{Limit: referenceBatchLimit, Page: 1})
		if err != nil {
			return err
		}
		for _, c := range countries {
			data.Countries = append(data.Countries, Option{ID: c.ID, Name: c.Name})
		}
		return nil
	})
	g.Go(func() error {
		cities, _, err := q.refs.ListCities(ctx, upstream.ListQuery{Limit: referenceBatchLimit, Page: 1})
		if err != nil {
			return err
		}
		for _, c := range cities {
			data.Cities = append(data.Cities, CityOption{ID: c.ID, Name: c.Name, CountryID: c.CountryID})
		}
		return nil
	})
	g.Go(func() error {
		categories, _, err := q.refs.ListCategories(ctx, upstream.ListQuery{Limit: 100, Page: 1})
		if err != nil {
			return err
		}
		for _, c := range categories {
			name := c.Name
			if name == "" {
				name = "Unnamed"
			}
			data.Categories = append(data.Categories, Option{ID: c.ID, Name: name})
		}
		return nil
	})
	g.Go(func() error {
		agencies, _, err := q.agencies.ListAgencies(ctx, upstream.ListQuery{Limit: referenceBatchLimit, Page: 1})
		if err != nil {
			return err
		}
		for _, a := range agencies {
			data.Agencies = append(data.Agencies, Option{ID: a.ID, Name: nameOr(a.Translations, "Unnamed")})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

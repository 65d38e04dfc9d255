//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/clock"
	"tripdesk/internal/pkg/errs"
	"tripdesk/internal/usecase/queries"
	"tripdesk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsStore struct {
	overview      *upstream.AnalyticsOverview
	overviewErr   error
	requestedMo   string
	revenue       []upstream.RevenuePoint
	revenueErr    error
	revenueCalled bool
}

func (f *fakeAnalyticsStore) Overview(_ context.Context, selectedMonth string) (*upstream.AnalyticsOverview, error) {
	f.requestedMo = selectedMonth
	return f.overview, f.overviewErr
}

func (f *fakeAnalyticsStore) RevenueGrowth(_ context.Context) ([]upstream.RevenuePoint, error) {
	f.revenueCalled = true
	return f.revenue, f.revenueErr
}

type fakeCountryStore struct {
	countries []upstream.Country
	total     int
	err       error
}

func (f *fakeCountryStore) ListCountries(_ context.Context, _ upstream.ListQuery) ([]upstream.Country, int, error) {
	return f.countries, f.total, f.err
}

func continentOf(name string) *upstream.Continent {
	return &upstream.Continent{Translations: []upstream.Translation{{Locale: "en", Name: name}}}
}

func newDashboardFixture() (*fakeAnalyticsStore, *fakeUserStore, *fakePackageStore, *fakeCountryStore, queries.DashboardQueries) {
	analytics := &fakeAnalyticsStore{
		overview: &upstream.AnalyticsOverview{TotalRevenue: 5000, TotalBookings: 12},
		revenue: []upstream.RevenuePoint{
			{Month: "2026-03", Revenue: 900},
			{Month: "2026-01", Revenue: 700},
			{Month: "2026-02", Revenue: 800},
		},
	}
	users := &fakeUserStore{users: makeUsers(8), total: 42}
	packages := &fakePackageStore{pages: map[int][]upstream.Package{1: packageBatch(1, 3)}}
	countries := &fakeCountryStore{
		countries: []upstream.Country{
			{ID: 1, Continent: continentOf("Asia")},
			{ID: 2, Continent: continentOf("Asia")},
			{ID: 3, Continent: continentOf("Europe")},
			{ID: 4},
		},
		total: 4,
	}
	clk := clock.NewMockClock(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))
	q := queries.NewDashboardQueries(analytics, users, packages, countries, clk)
	return analytics, users, packages, countries, q
}

func TestDashboardLoad(t *testing.T) {
	t.Run("all panels land", func(t *testing.T) {
		analytics, _, _, _, q := newDashboardFixture()

		dash := q.Load(context.Background())

		require.NotNil(t, dash.Overview)
		assert.Equal(t, 5000.0, dash.Overview.TotalRevenue)
		assert.Equal(t, "2026-08", analytics.requestedMo, "overview defaults to the current month")

		require.NotNil(t, dash.UserCount)
		assert.Equal(t, 42, *dash.UserCount)
		assert.Len(t, dash.RecentUsers, 6, "recent users cap at six")
		assert.Len(t, dash.RecentPackages, 3)
	})

	t.Run("revenue trend sorts ascending by month", func(t *testing.T) {
		_, _, _, _, q := newDashboardFixture()

		dash := q.Load(context.Background())

		months := make([]string, 0, len(dash.RevenueTrend))
		for _, p := range dash.RevenueTrend {
			months = append(months, p.Month)
		}
		assert.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, months)
	})

	t.Run("continent shares use the server total and Unknown fallback", func(t *testing.T) {
		_, _, _, _, q := newDashboardFixture()

		dash := q.Load(context.Background())

		want := []queries.ContinentShare{
			{Name: "Asia", Count: 2, Percent: 50},
			{Name: "Europe", Count: 1, Percent: 25},
			{Name: "Unknown", Count: 1, Percent: 25},
		}
		if diff := cmp.Diff(want, dash.Continents); diff != "" {
			t.Errorf("continent shares mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("a failed panel yields null and never blanks the others", func(t *testing.T) {
		analytics, users, _, _, q := newDashboardFixture()
		analytics.overviewErr = errs.New("analytics down")
		users.err = errs.New("users down")

		dash := q.Load(context.Background())

		assert.Nil(t, dash.Overview)
		assert.Nil(t, dash.UserCount)
		assert.Empty(t, dash.RecentUsers)
		assert.Len(t, dash.RecentPackages, 3, "healthy panels still render")
		assert.NotEmpty(t, dash.Continents)
		assert.NotEmpty(t, dash.RevenueTrend)
	})

	t.Run("blocked and blank recent users normalize", func(t *testing.T) {
		_, users, _, _, q := newDashboardFixture()
		users.users = []upstream.User{
			builder.NewUserBuilder().WithID(1).Blocked().Build(),
			builder.NewUserBuilder().WithID(2).WithName("").WithEmail("").Build(),
		}

		dash := q.Load(context.Background())

		require.Len(t, dash.RecentUsers, 2)
		assert.Equal(t, "blocked", dash.RecentUsers[0].Status)
		assert.Equal(t, "N/A", dash.RecentUsers[1].Name)
		assert.Equal(t, "N/A", dash.RecentUsers[1].Email)
	})
}

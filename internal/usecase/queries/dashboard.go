package queries

import (
	"context"
	"log/slog"
	"sort"

	"tripdesk/internal/infra/upstream"
	"tripdesk/internal/pkg/clock"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

const (
	recentUserCount    = 6
	recentPackageCount = 3
)

type AnalyticsReadStore interface {
	Overview(ctx context.Context, selectedMonth string) (*upstream.AnalyticsOverview, error)
	RevenueGrowth(ctx context.Context) ([]upstream.RevenuePoint, error)
}

type CountryReadStore interface {
	ListCountries(ctx context.Context, q upstream.ListQuery) ([]upstream.Country, int, error)
}

type OverviewPanel struct {
	TotalRevenue     float64 `json:"total_revenue"`
	AgencyRevenue    float64 `json:"agency_revenue"`
	FreelanceRevenue float64 `json:"freelance_revenue"`
	TotalBookings    int     `json:"total_bookings"`
	TotalCustomers   int     `json:"total_customers"`
	ActivePackages   int     `json:"active_packages"`
	TotalSearches    int     `json:"total_searches"`
}

type RecentUser struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type ContinentShare struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type RevenueTrendPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Dashboard carries one field per panel. A nil panel means its fetch failed
// and the screen shows that panel's "no data" state; the others render fine.
type Dashboard struct {
	Overview       *OverviewPanel      `json:"overview"`
	UserCount      *int                `json:"user_count"`
	RecentUsers    []RecentUser        `json:"recent_users"`
	RecentPackages []PackageCard       `json:"recent_packages"`
	Continents     []ContinentShare    `json:"continents"`
	RevenueTrend   []RevenueTrendPoint `json:"revenue_trend"`
}

type DashboardQueries interface {
	Load(ctx context.Context) *Dashboard
}

type dashboardQueriesImpl struct {
	analytics AnalyticsReadStore
	users     UserReadStore
	packages  PackageReadStore
	countries CountryReadStore
	clock     clock.Clock
}

func NewDashboardQueries(
	analytics AnalyticsReadStore,
	users UserReadStore,
	packages PackageReadStore,
	countries CountryReadStore,
	clk clock.Clock,
) DashboardQueries {
	return &dashboardQueriesImpl{
		analytics: analytics,
		users:     users,
		packages:  packages,
		countries: countries,
		clock:     clk,
	}
}

// Load fires every panel fetch in parallel. Panels are strictly independent:
// each records only its own result, logs its own failure, and never cancels a
// sibling. No retry; a failed panel stays empty until the screen reloads.
func (q *dashboardQueriesImpl) Load(ctx context.Context) *Dashboard {
	dash := &Dashboard{}
	var g errgroup.Group

	g.Go(func() error {
		month := q.clock.Now().Format("2006-01")
		overview, err := q.analytics.Overview(ctx, month)
		if err != nil {
			slog.Warn("dashboard: analytics overview fetch failed", "error", err.Error())
			return nil
		}
		panel := &OverviewPanel{}
		_ = copier.Copy(panel, overview)
		dash.Overview = panel
		return nil
	})

	g.Go(func() error {
		users, total, err := q.users.List(ctx, upstream.ListQuery{Page: 1, Limit: userBatchLimit, SortDir: "desc"})
		if err != nil {
			slog.Warn("dashboard: user fetch failed", "error", err.Error())
			return nil
		}
		dash.UserCount = &total

		if len(users) > recentUserCount {
			users = users[:recentUserCount]
		}
		for _, u := range users {
			recent := RecentUser{ID: u.ID, Name: u.Name, Email: u.Email, Status: "blocked"}
			if u.IsActive {
				recent.Status = "active"
			}
			if recent.Name == "" {
				recent.Name = "N/A"
			}
			if recent.Email == "" {
				recent.Email = "N/A"
			}
			dash.RecentUsers = append(dash.RecentUsers, recent)
		}
		return nil
	})

	g.Go(func() error {
		pkgs, _, err := q.packages.List(ctx, upstream.ListQuery{
			Sort:    "created_at",
			SortDir: "desc",
			Limit:   recentPackageCount,
			Page:    1,
		})
		if err != nil {
			slog.Warn("dashboard: recent packages fetch failed", "error", err.Error())
			return nil
		}
		for _, p := range pkgs {
			dash.RecentPackages = append(dash.RecentPackages, NewPackageCard(p))
		}
		return nil
	})

	g.Go(func() error {
		countries, total, err := q.countries.ListCountries(ctx, upstream.ListQuery{Limit: 500})
		if err != nil {
			slog.Warn("dashboard: country fetch failed", "error", err.Error())
			return nil
		}
		dash.Continents = continentShares(countries, total)
		return nil
	})

	g.Go(func() error {
		points, err := q.analytics.RevenueGrowth(ctx)
		if err != nil {
			slog.Warn("dashboard: revenue growth fetch failed", "error", err.Error())
			return nil
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
		for _, p := range points {
			dash.RevenueTrend = append(dash.RevenueTrend, RevenueTrendPoint{Month: p.Month, Revenue: p.Revenue})
		}
		return nil
	})

	_ = g.Wait() // panel funcs never return errors
	return dash
}

// continentShares turns the country list into a percentage-per-continent
// distribution for the proportion chart. The denominator is the
// server-reported total, not the fetched batch size.
func continentShares(countries []upstream.Country, total int) []ContinentShare {
	if total <= 0 {
		return nil
	}

	counts := map[string]int{}
	for _, c := range countries {
		name := "Unknown"
		if c.Continent != nil {
			name = nameOr(c.Continent.Translations, "Unknown")
		}
		counts[name]++
	}

	shares := make([]ContinentShare, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, ContinentShare{
			Name:    name,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

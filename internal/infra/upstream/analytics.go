package upstream

import (
	"context"
	"net/url"
)

type AnalyticsGateway struct {
	c *Client
}

func NewAnalyticsGateway(c *Client) *AnalyticsGateway {
	return &AnalyticsGateway{c: c}
}

type analyticsData struct {
	Overview AnalyticsOverview `json:"overview"`
}

// Overview fetches the monthly summary; selectedMonth uses the upstream's
// "2006-01" format.
func (g *AnalyticsGateway) Overview(ctx context.Context, selectedMonth string) (*AnalyticsOverview, error) {
	q := url.Values{}
	q.Set("date_filter_type", "monthly")
	q.Set("selected_month", selectedMonth)

	var data analyticsData
	if _, err := g.c.get(ctx, "/admin/analytics/get-analytics", q, &data); err != nil {
		return nil, err
	}
	return &data.Overview, nil
}

type overallData struct {
	RevenueGrowth []RevenuePoint `json:"revenue_growth"`
}

func (g *AnalyticsGateway) RevenueGrowth(ctx context.Context) ([]RevenuePoint, error) {
	var data overallData
	if _, err := g.c.get(ctx, "/admin/analytics/overall", nil, &data); err != nil {
		return nil, err
	}
	return data.RevenueGrowth, nil
}

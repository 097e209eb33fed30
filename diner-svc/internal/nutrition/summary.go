// Package nutrition resolves the nutrition summary shown after an order is
// placed, preferring the remote report and falling back to the static table.
package nutrition

import (
	"context"
	"math"

	"foodfriend/catalog"
	"foodfriend/diner-svc/internal/domain"
	"foodfriend/diner-svc/internal/telemetry"

	"github.com/sirupsen/logrus"
)

const (
	ReasonRemoteError   = "remote_error"
	ReasonMissingTotals = "missing_totals"
)

type Source interface {
	GenerateNutrition(ctx context.Context, items []catalog.Portion) (*catalog.Report, error)
}

// Portions maps order lines to name and quantity pairs.
func Portions(items []domain.CartItem) []catalog.Portion {
	portions := make([]catalog.Portion, 0, len(items))
	for _, item := range items {
		portions = append(portions, catalog.Portion{Name: item.Name, Quantity: item.Quantity})
	}
	return portions
}

type Fetcher struct {
	source   Source
	reporter telemetry.Reporter
}

func NewFetcher(source Source, reporter telemetry.Reporter) *Fetcher {
	return &Fetcher{source: source, reporter: reporter}
}

// Fetch always returns a usable report. It never returns an error: remote
// failures and reports without totals are replaced by the local table.
func (f *Fetcher) Fetch(ctx context.Context, portions []catalog.Portion) (catalog.Report, bool) {
	report, err := f.source.GenerateNutrition(ctx, portions)
	if err != nil {
		f.reporter.RemoteFailure(telemetry.OpNutrition, err, logrus.Fields{"items": len(portions)})
		f.reporter.NutritionFallback(ReasonRemoteError)
		return catalog.Calculate(portions), true
	}
	if report == nil || report.Totals == nil {
		f.reporter.NutritionFallback(ReasonMissingTotals)
		return catalog.Calculate(portions), true
	}
	return *report, false
}

// Summary is the per-order loading state.
type Summary struct {
	loading  bool
	loaded   bool
	fallback bool
	report   *catalog.Report
}

// Begin starts a fetch; a previous result is discarded.
func (s *Summary) Begin() {
	*s = Summary{loading: true}
}

// Complete records the result and reports whether this call is the one
// that turned the summary loaded.
func (s *Summary) Complete(report catalog.Report, fallback bool) bool {
	if !s.loading {
		return false
	}
	s.loading = false
	s.loaded = true
	s.fallback = fallback
	s.report = &report
	return true
}

func (s *Summary) Reset() {
	*s = Summary{}
}

func (s *Summary) Loaded() bool {
	return s.loaded
}

// MetricRow is one progress bar of the summary.
type MetricRow struct {
	Metric  string  `json:"metric"`
	Total   float64 `json:"total"`
	Percent int     `json:"percent"`
	Fill    int     `json:"fill"`
	Over    bool    `json:"over"`
}

type View struct {
	Loading   bool                    `json:"loading"`
	Loaded    bool                    `json:"loaded"`
	Fallback  bool                    `json:"fallback"`
	Items     []catalog.ItemNutrition `json:"items,omitempty"`
	Rows      []MetricRow             `json:"rows,omitempty"`
	HealthTip string                  `json:"healthTip,omitempty"`
}

func (s *Summary) View() View {
	v := View{Loading: s.loading, Loaded: s.loaded, Fallback: s.fallback}
	if s.report == nil {
		return v
	}
	v.Items = s.report.Items
	v.HealthTip = s.report.HealthTip
	if s.report.Totals != nil {
		v.Rows = Rows(*s.report.Totals, s.report.DailyPercentages)
	}
	return v
}

// Rows rounds each percentage for display and caps only the bar fill at 100.
func Rows(totals catalog.Metrics, pct catalog.Percentages) []MetricRow {
	row := func(name string, total, share float64) MetricRow {
		percent := int(math.Round(share))
		fill := percent
		if fill > 100 {
			fill = 100
		}
		if fill < 0 {
			fill = 0
		}
		return MetricRow{Metric: name, Total: total, Percent: percent, Fill: fill, Over: percent > 100}
	}
	return []MetricRow{
		row("calories", totals.Calories, pct.Calories),
		row("protein", totals.Protein, pct.Protein),
		row("carbs", totals.Carbs, pct.Carbs),
		row("fat", totals.Fat, pct.Fat),
		row("fiber", totals.Fiber, pct.Fiber),
		row("sugar", totals.Sugar, pct.Sugar),
	}
}

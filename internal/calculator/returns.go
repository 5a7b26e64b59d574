package calculator

import (
	"fmt"
	"sort"
	"time"

	"finora/internal/domain"
	"finora/internal/util"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const (
	// BaselineValue is where the equity curve starts.
	BaselineValue = 100
	// TrailingWindowSize is the number of most recent trades in the
	// last-10 curve and metrics.
	TrailingWindowSize = 10
	// below this many years since the earliest trade, the annualized
	// figure is growth * 10 instead of growth / years
	minXirrYears = 0.1
)

var (
	baseline   = decimal.NewFromInt(BaselineValue)
	hundred    = decimal.NewFromInt(100)
	windowSize = decimal.NewFromInt(TrailingWindowSize)
)

// CalculateReturns aggregates trade P&L into the curves and summary of a
// returns report. Trades are processed in creation order; now decides the
// year-to-date window and the elapsed time for the annualized figure.
// Creation times are read in now's location so every bucket agrees on
// which month and week a trade falls in.
func CalculateReturns(trades []domain.Trade, now time.Time) domain.ReturnsReport {
	sorted := make([]domain.Trade, len(trades))
	copy(sorted, trades)
	for i := range sorted {
		sorted[i].CreatedAt = sorted[i].CreatedAt.In(now.Location())
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	report := domain.ReturnsReport{
		TradeReturns: []domain.TradeReturn{},
		EquityCurve:  []domain.CurvePoint{},
		Last10Curve:  []domain.CurvePoint{},
		YTDCurve:     []domain.CurvePoint{},
		ComputedAt:   now,
	}

	returns := make([]decimal.Decimal, len(sorted))
	exitedReturns := []float64{}
	summary := domain.ReturnsSummary{
		NumTrades: len(sorted),
	}
	wins := 0

	cumulative := baseline
	for i, t := range sorted {
		r := t.SignedReturn()
		returns[i] = r

		cumulative = cumulative.Add(r)
		report.EquityCurve = addPoint(report.EquityCurve, util.MonthKey(t.CreatedAt), t.CreatedAt, cumulative)

		report.TradeReturns = append(report.TradeReturns, domain.TradeReturn{
			TradeID:   t.TradeID,
			Symbol:    t.Symbol,
			Direction: t.Direction,
			CreatedAt: t.CreatedAt,
			Exited:    t.HasExited(),
			Return:    r,
		})

		if !t.HasExited() {
			summary.NumActive++
			continue
		}
		summary.NumExited++
		if r.IsPositive() {
			wins++
		}
		if summary.NumExited == 1 || r.GreaterThan(summary.BestTrade) {
			summary.BestTrade = r
		}
		if summary.NumExited == 1 || r.LessThan(summary.WorstTrade) {
			summary.WorstTrade = r
		}
		exitedReturns = append(exitedReturns, r.InexactFloat64())
	}

	// trailing window, cumulative from zero
	start := len(sorted) - TrailingWindowSize
	if start < 0 {
		start = 0
	}
	windowTotal := decimal.Zero
	for i := start; i < len(sorted); i++ {
		windowTotal = windowTotal.Add(returns[i])
		report.Last10Curve = append(report.Last10Curve, domain.CurvePoint{
			Label: sorted[i].CreatedAt.Format(time.DateOnly),
			Date:  sorted[i].CreatedAt,
			Value: windowTotal,
		})
	}

	// year to date, bucketed by ISO week
	ytdTotal := decimal.Zero
	ytdCount := 0
	for i, t := range sorted {
		if t.CreatedAt.Year() != now.Year() {
			continue
		}
		ytdCount++
		ytdTotal = ytdTotal.Add(returns[i])
		report.YTDCurve = addPoint(report.YTDCurve, isoWeekKey(t.CreatedAt), t.CreatedAt, ytdTotal)
	}

	summary.TotalValue = cumulative
	summary.Last10Return = windowTotal
	summary.Last10Percent = windowTotal.Div(windowSize)
	summary.YTDReturn = ytdTotal
	if ytdCount > 0 {
		summary.YTDPercent = ytdTotal.Div(decimal.NewFromInt(int64(ytdCount)))
	}
	summary.GrowthPercent = cumulative.Sub(baseline).Div(baseline).Mul(hundred)
	if len(sorted) > 0 {
		summary.XIRR = approximateXirr(summary.GrowthPercent, sorted[0].CreatedAt, now)
	}
	if summary.NumExited > 0 {
		summary.WinRate = float64(wins) / float64(summary.NumExited)
	}
	if len(exitedReturns) >= 2 {
		stdev, err := stats.StandardDeviationSample(exitedReturns)
		if err == nil {
			summary.Volatility = stdev
		}
	}

	report.Summary = summary
	return report
}

// addPoint appends a point, or overwrites the last one when it carries the
// same label. Input is chronological so equal labels are adjacent.
func addPoint(curve []domain.CurvePoint, label string, date time.Time, value decimal.Decimal) []domain.CurvePoint {
	point := domain.CurvePoint{
		Label: label,
		Date:  date,
		Value: value,
	}
	if n := len(curve); n > 0 && curve[n-1].Label == label {
		curve[n-1] = point
		return curve
	}
	return append(curve, point)
}

// isoWeekKey labels t with its ISO year and week, e.g. "2026-W01". The ISO
// year differs from the calendar year for the first and last days of a year.
func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func approximateXirr(growthPercent decimal.Decimal, earliest, now time.Time) decimal.Decimal {
	years := now.Sub(earliest).Hours() / (365 * 24)
	if years < minXirrYears {
		return growthPercent.Mul(decimal.NewFromInt(10))
	}
	return growthPercent.Div(decimal.NewFromFloat(years))
}

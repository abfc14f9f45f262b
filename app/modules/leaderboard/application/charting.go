package leaderboardservice

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	leaderboarddomain "github.com/mosley-golf-club/tourney-engine/app/modules/leaderboard/domain"
)

// ChartPalette carries the colors used for rendered leaderboard charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	TextColor  drawing.Color
}

// DefaultChartPalette is the club's green-on-cream house style.
func DefaultChartPalette() ChartPalette {
	return ChartPalette{
		Background: drawing.Color{R: 0xFA, G: 0xF7, B: 0xF0, A: 0xFF},
		Bar:        drawing.Color{R: 0x1F, G: 0x5E, B: 0x3B, A: 0xFF},
		TextColor:  drawing.Color{R: 0x22, G: 0x22, B: 0x22, A: 0xFF},
	}
}

// chartTopN caps how many bars a standings chart renders.
const chartTopN = 10

// GenerateTournamentChart produces a PNG bar chart of the top tournament
// standings by total net points.
func GenerateTournamentChart(rows []leaderboarddomain.TournamentRow, palette ChartPalette) ([]byte, error) {
	if len(rows) == 0 {
		return renderNoDataPlaceholder("No tournament scores yet", palette)
	}

	bars := make([]chart.Value, 0, chartTopN)
	for _, row := range rows {
		if len(bars) == chartTopN {
			break
		}
		bars = append(bars, chart.Value{
			Label: row.PlayerName,
			Value: float64(row.TotalNet),
			Style: chart.Style{FillColor: palette.Bar, StrokeColor: palette.Bar},
		})
	}

	return renderBars("Tournament Standings (Net Points)", bars, palette)
}

// GenerateTeamChart produces a PNG bar chart of team standings by total points.
func GenerateTeamChart(rows []leaderboarddomain.TeamRow, palette ChartPalette) ([]byte, error) {
	if len(rows) == 0 {
		return renderNoDataPlaceholder("No team scores yet", palette)
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{
			Label: row.TeamName,
			Value: float64(row.TotalPoints),
			Style: chart.Style{FillColor: palette.Bar, StrokeColor: palette.Bar},
		})
	}

	return renderBars("Team Standings", bars, palette)
}

func renderBars(title string, bars []chart.Value, palette ChartPalette) ([]byte, error) {
	// Net totals can be negative, and a flat field would give the renderer a
	// zero-width range, so the axis is pinned explicitly.
	minVal, maxVal := 0.0, 0.0
	for _, bar := range bars {
		minVal = min(minVal, bar.Value)
		maxVal = max(maxVal, bar.Value)
	}

	graph := chart.BarChart{
		Title:  title,
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{
				Min: minVal,
				Max: maxVal + 1,
			},
		},
		BarWidth: 40,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(msg string, palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Package presenter turns a built dashboard into display-ready values:
// metric tiles, progress fractions, chart series and pre-sorted tables.
// It only reads its inputs.
package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"casemonitor/internal/aggregate"
	"casemonitor/internal/model"
	"casemonitor/internal/service"
	"casemonitor/pkg/config"
)

const (
	MsgNoActiveBatches = "No active batches. Generate a new batch in the case generator."
	MsgNoCases         = "No cases in the active batches."
	MsgNoOperators     = "No operator has taken a case yet."
	MsgNoDailyData     = "No data for the selected range."
	MsgNoInProgress    = "No case is in progress right now."
)

// Page view model of the dashboard
type Page struct {
	GeneratedAt string
	Windows     []WindowOption
	Window      WindowOption

	// EmptyMessage set when the dashboard stopped early; nothing below it is filled
	EmptyMessage string

	Tiles    []Tile
	Progress Progress
	Groups   []GroupPanel

	Ranking      Table
	RankingChart BarChart
	RankingEmpty string

	DailyChart AreaChart
	DailyTable Table
	DailyEmpty string

	InProgress      []CaseLine
	InProgressEmpty string

	Batches []BatchLine
}

// WindowOption one entry of the date-range selector
type WindowOption struct {
	Param    string
	Label    string
	Selected bool
}

// Tile numeric metric
type Tile struct {
	Icon  string
	Label string
	Value string
}

// Progress linear progress indicator
type Progress struct {
	Fraction float64 // in [0,1]
	Percent  float64
	Text     string
}

// GroupPanel progress of one group
type GroupPanel struct {
	Name     string
	Flag     string
	Progress Progress
	Done     int
	Total    int
	Caption  string
	Chart    *BarChart // nil when the group has no cases
}

// BarChart bars keyed by category label
type BarChart struct {
	Bars []Bar
}

// Bar one category; Fraction is Value relative to the largest bar
type Bar struct {
	Label    string
	Value    int
	Fraction float64
}

// AreaChart time series drawn as an SVG polygon
type AreaChart struct {
	Points  []Bar
	Polygon string
	Width   int
	Height  int
}

// Table rows already ordered by SortColumn
type Table struct {
	Columns    []string
	SortColumn string
	Rows       [][]string
}

// CaseLine one in-progress case
type CaseLine struct {
	Icon         string
	OrderNumber  string
	PriorityIcon string
	Score        string
	Group        string
	Operator     string
	Status       string
}

// String renders the line the way the live list shows it
func (l CaseLine) String() string {
	return fmt.Sprintf("%s %s — %s [%s] | %s | %s | %s",
		l.Icon, l.OrderNumber, l.PriorityIcon, l.Score, l.Group, l.Operator, l.Status)
}

// BatchLine one active batch
type BatchLine struct {
	ID        string
	DateLabel string
	Summary   string
	Prompt    string
	Model     string
}

// statusTiles metric tiles per status; skipped cases get no tile
var statusTiles = map[model.CaseStatus]Tile{
	model.CaseStatusUnassigned: {Icon: "🔵", Label: "Unassigned"},
	model.CaseStatusAssigned:   {Icon: "🟡", Label: "Assigned"},
	model.CaseStatusInProgress: {Icon: "🟠", Label: "In progress"},
	model.CaseStatusCompleted:  {Icon: "🟢", Label: "Completed"},
}

const (
	chartWidth  = 600
	chartHeight = 160
)

// Build converts d into a page. groups are the configured group panels.
func Build(d *service.Dashboard, groups []config.GroupConfig) *Page {
	p := &Page{
		GeneratedAt: d.GeneratedAt.Format("2006-01-02 15:04:05"),
	}
	for _, w := range aggregate.Windows {
		opt := WindowOption{Param: w.Param(), Label: w.Label(), Selected: w == d.Window}
		p.Windows = append(p.Windows, opt)
		if opt.Selected {
			p.Window = opt
		}
	}

	switch d.Empty {
	case service.EmptyNoActiveBatches:
		p.EmptyMessage = MsgNoActiveBatches
		return p
	case service.EmptyNoCases:
		p.EmptyMessage = MsgNoCases
		return p
	}

	s := d.Summary
	p.Tiles = []Tile{{Icon: "📋", Label: "Total", Value: strconv.Itoa(s.Total)}}
	for _, st := range model.KnownCaseStatuses {
		tile, ok := statusTiles[st]
		if !ok {
			continue
		}
		tile.Value = strconv.Itoa(s.Counts.Get(st))
		p.Tiles = append(p.Tiles, tile)
	}
	p.Tiles = append(p.Tiles, Tile{Icon: "📈", Label: "Progress", Value: formatPercent(s.Percent)})
	p.Progress = progress(s.Percent)

	for _, g := range groups {
		p.Groups = append(p.Groups, groupPanel(s.Group(g.Name), g.Flag))
	}

	if len(d.Ranking) == 0 {
		p.RankingEmpty = MsgNoOperators
	} else {
		p.Ranking, p.RankingChart = ranking(d.Ranking)
	}

	if d.Daily == nil || !d.Daily.HasData {
		p.DailyEmpty = MsgNoDailyData
	} else {
		p.DailyChart = areaChart(d.Daily.Totals)
		p.DailyTable = dailyTable(d.Daily)
	}

	if len(d.InProgress) == 0 {
		p.InProgressEmpty = MsgNoInProgress
	} else {
		for _, ac := range d.InProgress {
			p.InProgress = append(p.InProgress, caseLine(ac))
		}
	}

	p.Batches = batchLines(d.Batches)
	return p
}

func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 1, 64) + "%"
}

func progress(pct float64) Progress {
	f := pct / 100
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return Progress{Fraction: f, Percent: pct, Text: formatPercent(pct)}
}

func groupPanel(g aggregate.GroupTally, flag string) GroupPanel {
	panel := GroupPanel{
		Name:     g.Group,
		Flag:     flag,
		Progress: progress(g.Percent),
		Done:     g.Counts.Completed,
		Total:    g.Total,
		Caption: fmt.Sprintf("🔵 Unassigned: %d | 🟡 Assigned: %d | 🟠 In progress: %d",
			g.Counts.Unassigned, g.Counts.Assigned, g.Counts.InProgress),
	}
	if g.Total > 0 {
		panel.Chart = barChart([]string{"Unassigned", "Assigned", "In progress", "Completed"},
			[]int{g.Counts.Unassigned, g.Counts.Assigned, g.Counts.InProgress, g.Counts.Completed})
	}
	return panel
}

func barChart(labels []string, values []int) *BarChart {
	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	chart := &BarChart{Bars: make([]Bar, len(values))}
	for i, v := range values {
		chart.Bars[i] = Bar{Label: labels[i], Value: v, Fraction: fraction(v, maxVal)}
	}
	return chart
}

func fraction(v, maxVal int) float64 {
	if maxVal <= 0 {
		return 0
	}
	return float64(v) / float64(maxVal)
}

func ranking(ops []aggregate.OperatorTally) (Table, BarChart) {
	table := Table{
		Columns:    []string{"Operator", "🟢 Completed", "🟠 In progress", "🟡 Assigned"},
		SortColumn: "🟢 Completed",
		Rows:       make([][]string, 0, len(ops)),
	}
	labels := make([]string, len(ops))
	values := make([]int, len(ops))
	for i, op := range ops {
		table.Rows = append(table.Rows, []string{
			op.Operator,
			strconv.Itoa(op.Completed),
			strconv.Itoa(op.InProgress),
			strconv.Itoa(op.Assigned),
		})
		labels[i] = op.Operator
		values[i] = op.Completed
	}
	return table, *barChart(labels, values)
}

func areaChart(totals []aggregate.DayTotal) AreaChart {
	labels := make([]string, len(totals))
	values := make([]int, len(totals))
	for i, t := range totals {
		labels[i] = t.Date
		values[i] = t.Completed
	}
	bars := barChart(labels, values).Bars

	var sb strings.Builder
	fmt.Fprintf(&sb, "0,%d", chartHeight)
	n := len(bars)
	for i, b := range bars {
		y := float64(chartHeight) * (1 - b.Fraction)
		if n == 1 {
			fmt.Fprintf(&sb, " 0,%.1f %d,%.1f", y, chartWidth, y)
			continue
		}
		x := float64(chartWidth) * float64(i) / float64(n-1)
		fmt.Fprintf(&sb, " %.1f,%.1f", x, y)
	}
	fmt.Fprintf(&sb, " %d,%d", chartWidth, chartHeight)

	return AreaChart{Points: bars, Polygon: sb.String(), Width: chartWidth, Height: chartHeight}
}

func dailyTable(d *aggregate.Daily) Table {
	table := Table{
		Columns:    append([]string{"Operator", "Sum"}, d.Dates...),
		SortColumn: "Sum",
		Rows:       make([][]string, 0, len(d.Operators)),
	}
	for _, op := range d.Operators {
		row := []string{op.Operator, strconv.Itoa(op.Sum)}
		for _, n := range op.PerDay {
			row = append(row, strconv.Itoa(n))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func caseLine(ac aggregate.ActiveCase) CaseLine {
	c := ac.Case
	operator := c.AssignedTo
	if operator == "" {
		operator = model.UnknownOperator
	}
	return CaseLine{
		Icon:         ac.Icon,
		OrderNumber:  c.OrderNumber,
		PriorityIcon: c.PriorityIcon,
		Score:        strconv.FormatFloat(c.Score, 'f', -1, 64),
		Group:        c.Group,
		Operator:     operator,
		Status:       string(c.Status),
	}
}

func batchLines(batches []*model.Batch) []BatchLine {
	lines := make([]BatchLine, 0, len(batches))
	for _, b := range batches {
		lines = append(lines, BatchLine{
			ID:        b.ID,
			DateLabel: b.DateLabel,
			Summary:   b.Summary,
			Prompt:    b.PromptUsed,
			Model:     b.ModelUsed,
		})
	}
	return lines
}

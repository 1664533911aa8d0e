package report

import "github.com/xuri/excelize/v2"

// addParetoChart draws the classic Pareto diagram: bars for the metric
// with the cumulative percentage overlaid as a line.
func (b *builder) addParetoChart(sheet, anchor, titleText, seriesName, catRange, valRange, pctRange string) error {
	bars := excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       seriesName,
			Categories: catRange,
			Values:     valRange,
		}},
		Title:     []excelize.RichTextRun{{Text: titleText}},
		Dimension: excelize.ChartDimension{Width: 720, Height: 400},
		Legend:    excelize.ChartLegend{Position: "top"},
	}
	line := excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       "% Acumulado",
			Categories: catRange,
			Values:     pctRange,
		}},
	}
	return b.f.AddChart(sheet, anchor, &bars, &line)
}

func (b *builder) addBarChart(sheet, anchor, titleText, seriesName, catRange, valRange string) error {
	chart := excelize.Chart{
		Type: excelize.Bar,
		Series: []excelize.ChartSeries{{
			Name:       seriesName,
			Categories: catRange,
			Values:     valRange,
		}},
		Title:     []excelize.RichTextRun{{Text: titleText}},
		Dimension: excelize.ChartDimension{Width: 540, Height: 360},
		Legend:    excelize.ChartLegend{Position: "none"},
	}
	return b.f.AddChart(sheet, anchor, &chart)
}

func (b *builder) addPieChart(sheet, anchor, titleText, catRange, valRange string) error {
	chart := excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       titleText,
			Categories: catRange,
			Values:     valRange,
		}},
		Title:     []excelize.RichTextRun{{Text: titleText}},
		Dimension: excelize.ChartDimension{Width: 540, Height: 360},
		Legend:    excelize.ChartLegend{Position: "right"},
	}
	return b.f.AddChart(sheet, anchor, &chart)
}

func (b *builder) addLineChart(sheet, anchor, titleText, seriesName, catRange, valRange string) error {
	chart := excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       seriesName,
			Categories: catRange,
			Values:     valRange,
		}},
		Title:     []excelize.RichTextRun{{Text: titleText}},
		Dimension: excelize.ChartDimension{Width: 720, Height: 400},
		Legend:    excelize.ChartLegend{Position: "top"},
	}
	return b.f.AddChart(sheet, anchor, &chart)
}

func (b *builder) addScatterChart(sheet, anchor, titleText, xName, yName, catRange, valRange string) error {
	chart := excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{{
			Name:       titleText,
			Categories: catRange,
			Values:     valRange,
		}},
		Title:     []excelize.RichTextRun{{Text: titleText}},
		XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: xName}}},
		YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: yName}}},
		Dimension: excelize.ChartDimension{Width: 540, Height: 360},
		Legend:    excelize.ChartLegend{Position: "none"},
	}
	return b.f.AddChart(sheet, anchor, &chart)
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/freightdash/dashboard-etl/internal/catalog"
	"github.com/freightdash/dashboard-etl/internal/domain"
)

// Output file per dataset. The names are fixed: the dashboard frontend
// fetches them by path.
var datasetFiles = map[string]string{
	"chart_data":    "crawling_data.json",
	"table_data":    "crawling_data_tables.json",
	"exchange_rate": "exchange_rate_data.json",
	"la_weather":    "la_weather_data.json",
}

type chartPayload struct {
	ChartData map[string][]domain.ChartRecord `json:"chart_data"`
}

type tablePayload struct {
	TableData map[string]domain.SummaryTable `json:"table_data"`
}

type exchangePayload struct {
	History []domain.ChartRecord `json:"exchange_rate_history"`
	Latest  map[string]*float64  `json:"exchange_rate_latest"`
}

// buildChartData extracts every chart section from the Crawling_Data
// worksheet. A section whose configured columns are absent publishes as an
// empty series; the other sections are unaffected.
func (p *Pipeline) buildChartData(ctx context.Context) (domain.Dataset, error) {
	grid, err := p.fetchGrid(ctx, catalog.ChartWorksheet)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("fetch %s: %w", catalog.ChartWorksheet, err)
	}

	sections := make(map[string][]domain.ChartRecord, len(catalog.ChartSections))
	for _, spec := range catalog.ChartSections {
		records, stats, err := domain.ExtractChartSeries(grid, spec)
		p.metrics.RowsDropped.WithLabelValues(spec.Name).Add(float64(stats.RowsDropped))
		p.metrics.CellParseFailures.Add(float64(stats.CellsFailed))
		if err != nil {
			p.logger.Warn("chart section columns absent, publishing empty series",
				"section", spec.Name, "error", err)
			p.metrics.SectionsSkipped.WithLabelValues("chart_data", "missing_columns").Inc()
			sections[spec.Name] = []domain.ChartRecord{}
			continue
		}
		p.metrics.SectionsExtracted.WithLabelValues("chart_data").Inc()
		sections[spec.Name] = records
	}

	return p.newDataset("chart_data", chartPayload{ChartData: sections}), nil
}

// buildTableData extracts every summary table from the Crawling_Data2
// worksheet. Tables whose anchor is not present are omitted from the output
// mapping entirely; some weeks legitimately lack a section.
func (p *Pipeline) buildTableData(ctx context.Context) (domain.Dataset, error) {
	grid, err := p.fetchGrid(ctx, catalog.TableWorksheet)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("fetch %s: %w", catalog.TableWorksheet, err)
	}

	tables := make(map[string]domain.SummaryTable, len(catalog.SummaryTables))
	for _, spec := range catalog.SummaryTables {
		table, ok := domain.ExtractSummaryTable(grid, spec)
		if !ok {
			p.logger.Warn("summary table anchor not found, omitting section",
				"section", spec.Name, "anchor", spec.AnchorText)
			p.metrics.SectionsSkipped.WithLabelValues("table_data", "missing_anchor").Inc()
			continue
		}
		p.metrics.SectionsExtracted.WithLabelValues("table_data").Inc()
		tables[spec.Name] = table
	}

	return p.newDataset("table_data", tablePayload{TableData: tables}), nil
}

// buildExchangeRates extracts the dated history plus the most recent rate row
// from the exchange-rate worksheet.
func (p *Pipeline) buildExchangeRates(ctx context.Context) (domain.Dataset, error) {
	grid, err := p.fetchGrid(ctx, catalog.ExchangeWorksheet)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("fetch %s: %w", catalog.ExchangeWorksheet, err)
	}

	history, stats, err := domain.ExtractChartSeriesByHeader(grid, catalog.ExchangeDateHeader)
	p.metrics.CellParseFailures.Add(float64(stats.CellsFailed))
	if err != nil {
		p.logger.Warn("exchange history columns absent, publishing empty series", "error", err)
		p.metrics.SectionsSkipped.WithLabelValues("exchange_rate", "missing_columns").Inc()
		history = []domain.ChartRecord{}
	} else {
		p.metrics.SectionsExtracted.WithLabelValues("exchange_rate").Inc()
	}

	payload := exchangePayload{
		History: history,
		Latest:  domain.ExtractLatestRates(grid),
	}
	return p.newDataset("exchange_rate", payload), nil
}

// buildWeather extracts the current-conditions block and forecast rows from
// the weather worksheet.
func (p *Pipeline) buildWeather(ctx context.Context) (domain.Dataset, error) {
	grid, err := p.fetchGrid(ctx, catalog.WeatherWorksheet)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("fetch %s: %w", catalog.WeatherWorksheet, err)
	}

	report := domain.ExtractWeather(grid)
	if report.Current == nil {
		p.logger.Warn("weather sheet too short for current conditions, omitting block")
		p.metrics.SectionsSkipped.WithLabelValues("la_weather", "missing_columns").Inc()
	} else {
		p.metrics.SectionsExtracted.WithLabelValues("la_weather").Inc()
	}

	return p.newDataset("la_weather", report), nil
}

func (p *Pipeline) newDataset(name string, payload any) domain.Dataset {
	return domain.Dataset{
		Name:        name,
		File:        datasetFiles[name],
		Payload:     payload,
		GeneratedAt: clock.Now(),
	}
}

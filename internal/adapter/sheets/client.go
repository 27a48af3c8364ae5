// Package sheets fetches worksheet grids from the Google Sheets API.
package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/freightdash/dashboard-etl/internal/domain"
)

// Client implements pipeline.GridFetcher against one spreadsheet.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *slog.Logger
}

// NewClient creates a Sheets client authenticated with a service-account
// credential JSON blob.
func NewClient(ctx context.Context, spreadsheetID, credentialJSON string, logger *slog.Logger) (*Client, error) {
	service, err := sheetsapi.NewService(ctx, option.WithCredentialsJSON([]byte(credentialJSON)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// GetGrid fetches every populated cell of one worksheet. Worksheet titles may
// contain non-ASCII characters, so the A1 range quotes the title.
func (c *Client) GetGrid(ctx context.Context, worksheet string) (domain.Grid, error) {
	readRange := fmt.Sprintf("'%s'", strings.ReplaceAll(worksheet, "'", "''"))

	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetch worksheet %q: %w", worksheet, err)
	}

	grid := make(domain.Grid, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		grid[i] = cells
	}

	c.logger.Debug("worksheet fetched", "worksheet", worksheet, "rows", len(grid))
	return grid, nil
}

package sheets

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Source is what the fetch pipeline needs from a workbook backend.
// The production implementation is Client; tests supply fakes.
type Source interface {
	// SheetTitles returns the workbook's sheet titles in workbook order.
	SheetTitles(ctx context.Context) ([]string, error)
	// Values returns the raw rows of each named sheet, in request order.
	Values(ctx context.Context, titles []string) ([][][]string, error)
	// Grid returns the cell-level data of one sheet, including
	// strikethrough formatting.
	Grid(ctx context.Context, title string) ([][]Cell, error)
}

// Client reads one spreadsheet through the Sheets API on behalf of a
// single bearer token. Built per request; holds no global state.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient creates a client bound to one spreadsheet and one token.
func NewClient(ctx context.Context, spreadsheetID, accessToken string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id not configured")
	}
	if accessToken == "" {
		return nil, fmt.Errorf("missing access token")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := gsheets.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// SheetTitles returns the sheet titles in workbook order.
func (c *Client) SheetTitles(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet metadata: %w", err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

// Values batch-reads the plain values of the named sheets.
func (c *Client) Values(ctx context.Context, titles []string) ([][][]string, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	call := c.svc.Spreadsheets.Values.BatchGet(c.spreadsheetID)
	for _, t := range titles {
		call = call.Ranges(t)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch value ranges: %w", err)
	}

	out := make([][][]string, len(resp.ValueRanges))
	for i, vr := range resp.ValueRanges {
		rows := make([][]string, len(vr.Values))
		for r, row := range vr.Values {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = cellString(v)
			}
			rows[r] = cells
		}
		out[i] = rows
	}
	return out, nil
}

// Grid reads cell-level data (values + text format) for one sheet.
func (c *Client) Grid(ctx context.Context, title string) ([][]Cell, error) {
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Ranges(title).
		IncludeGridData(true).
		Fields("sheets.data.rowData.values(formattedValue,effectiveValue,effectiveFormat.textFormat.strikethrough)").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grid data: %w", err)
	}

	if len(resp.Sheets) == 0 || len(resp.Sheets[0].Data) == 0 {
		return nil, nil
	}

	data := resp.Sheets[0].Data[0]
	grid := make([][]Cell, len(data.RowData))
	for r, rd := range data.RowData {
		row := make([]Cell, len(rd.Values))
		for j, cd := range rd.Values {
			row[j] = normalizeCell(cd)
		}
		grid[r] = row
	}
	return grid, nil
}

// normalizeCell flattens the API's nested cell payload into the Cell
// shape the parsers consume.
func normalizeCell(cd *gsheets.CellData) Cell {
	if cd == nil {
		return Cell{}
	}

	cell := Cell{Formatted: cd.FormattedValue}
	if ev := cd.EffectiveValue; ev != nil {
		switch {
		case ev.StringValue != nil:
			cell.Value = *ev.StringValue
		case ev.NumberValue != nil:
			cell.Value = strconv.FormatFloat(*ev.NumberValue, 'f', -1, 64)
		case ev.BoolValue != nil:
			cell.Value = strconv.FormatBool(*ev.BoolValue)
		}
	}
	if f := cd.EffectiveFormat; f != nil && f.TextFormat != nil {
		cell.StruckThrough = f.TextFormat.Strikethrough
	}
	return cell
}

// cellString renders a batchGet value (interface{}) as a string.
func cellString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

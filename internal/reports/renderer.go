package reports

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"api-usage/internal/models"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	apiColumnWidth        = 32
	countColumnWidth      = 10
	percentageColumnWidth = 16
	noDataRow             = "no data"
)

var separator = strings.Repeat("-", apiColumnWidth+countColumnWidth+percentageColumnWidth)

// Renderer writes a finished report in one output format.
type Renderer interface {
	Render(w io.Writer, report *models.Report) error
}

// NewRenderer returns the renderer for format. precision is the number of decimals
// printed for percentages in the table format.
func NewRenderer(format string, precision int) (Renderer, error) {
	if precision < 0 {
		return nil, fmt.Errorf("invalid precision: %d", precision)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTable:
		return &tableRenderer{precision: precision}, nil
	case FormatJSON:
		return &jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %q", format)
	}
}

type tableRenderer struct {
	precision int
}

// Render writes right-aligned fixed-width columns: API (32), Count (10), Percentage (16).
// Names longer than their column are printed in full and push the row wider.
func (r *tableRenderer) Render(w io.Writer, report *models.Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s%*s%*s\n", apiColumnWidth, "API", countColumnWidth, "Count", percentageColumnWidth, "Percentage")
	sb.WriteString(separator)
	sb.WriteByte('\n')

	if report.IsEmpty() {
		fmt.Fprintf(&sb, "%*s\n", apiColumnWidth, noDataRow)
	}
	for _, entry := range report.Entries {
		fmt.Fprintf(&sb, "%*s%*d%*.*f\n",
			apiColumnWidth, entry.APIName,
			countColumnWidth, entry.Count,
			percentageColumnWidth, r.precision, entry.Percentage)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonRenderer struct{}

func (r *jsonRenderer) Render(w io.Writer, report *models.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

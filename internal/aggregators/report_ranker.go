package aggregators

import (
	"sort"

	"api-usage/internal/models"
)

//go:generate mockgen -source=report_ranker.go -destination=./mocks/report_ranker_mock.go -package=mocks
type ReportRanker interface {
	// Rank turns a finalized table into a Report ordered by count descending.
	Rank(table *models.FrequencyTable) *models.Report
}

type reportRanker struct{}

func NewReportRanker() ReportRanker {
	return &reportRanker{}
}

// Rank breaks count ties by API name ascending so equal inputs always render identically.
// An empty table yields an empty, non-nil entry list and no percentage is computed.
func (r *reportRanker) Rank(table *models.FrequencyTable) *models.Report {
	total := table.Total()
	counts := table.Counts()

	entries := make([]models.ReportEntry, 0, len(counts))
	if total == 0 {
		return &models.Report{Entries: entries}
	}

	for apiName, count := range counts {
		entries = append(entries, models.ReportEntry{
			APIName:    apiName,
			Count:      count,
			Percentage: 100 * float64(count) / float64(total),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].APIName < entries[j].APIName
		}
		return entries[i].Count > entries[j].Count
	})

	return &models.Report{
		TotalCount: total,
		Entries:    entries,
	}
}

package models

// Report is the ranked usage listing produced once from a finalized FrequencyTable.
//
// Example JSON:
//
//	{
//	  "totalCount": 3,
//	  "skippedCount": 0,
//	  "entries": [
//	    {"apiName": "login", "count": 2, "percentage": 66.66666666666667},
//	    {"apiName": "logout", "count": 1, "percentage": 33.333333333333336}
//	  ]
//	}
//
// Entries are ordered by count descending, then by API name ascending. TotalCount is the
// number of successfully extracted lines; SkippedCount the malformed lines dropped in
// lenient mode.
type Report struct {
	TotalCount   int64         `json:"totalCount"`
	SkippedCount int64         `json:"skippedCount"`
	Entries      []ReportEntry `json:"entries"`
}

type ReportEntry struct {
	APIName    string  `json:"apiName"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// IsEmpty reports the "no data" case: nothing was extracted.
func (r *Report) IsEmpty() bool {
	return r.TotalCount == 0
}

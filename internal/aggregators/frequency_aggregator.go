package aggregators

import (
	"api-usage/internal/models"
)

//go:generate mockgen -source=frequency_aggregator.go -destination=./mocks/frequency_aggregator_mock.go -package=mocks
type FrequencyAggregator interface {
	// Aggregate counts every name once; the table total equals len(apiNames).
	Aggregate(apiNames []string) *models.FrequencyTable
}

type frequencyAggregator struct{}

func NewFrequencyAggregator() FrequencyAggregator {
	return &frequencyAggregator{}
}

func (a *frequencyAggregator) Aggregate(apiNames []string) *models.FrequencyTable {
	table := models.NewFrequencyTable()
	for _, apiName := range apiNames {
		table.Increment(apiName)
	}
	return table
}

package queries

import (
	vo "bodygraph/domain/core/valueobjects"
)

// CalculateChartQuery asks for the bodygraph of a birth. A nil or empty
// BirthTime requests the probabilistic chart.
type CalculateChartQuery struct {
	Name      string  `json:"name" yaml:"name"`
	BirthDate string  `json:"birth_date" yaml:"birth_date"`
	BirthTime *string `json:"birth_time,omitempty" yaml:"birth_time,omitempty"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Timezone  string  `json:"timezone" yaml:"timezone"`
}

// Validate validates the query
func (q CalculateChartQuery) Validate() error {
	_, err := q.ToBirthInput()
	return err
}

// ToBirthInput converts the query into a validated BirthInput
func (q CalculateChartQuery) ToBirthInput() (vo.BirthInput, error) {
	return vo.NewBirthInput(q.Name, q.BirthDate, q.BirthTime, q.Latitude, q.Longitude, q.Timezone)
}

// CacheKey identifies the chart this query produces. Queries that normalise
// to the same input share a key.
func (q CalculateChartQuery) CacheKey() string {
	in, err := q.ToBirthInput()
	if err != nil {
		return ""
	}
	return "chart:" + in.Key()
}

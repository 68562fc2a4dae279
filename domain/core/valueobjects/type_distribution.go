package valueobjects

// ConfidenceLevel buckets the probability of the most likely type
type ConfidenceLevel string

const (
	ConfidenceCertain ConfidenceLevel = "certain"
	ConfidenceHigh    ConfidenceLevel = "high"
	ConfidenceMedium  ConfidenceLevel = "medium"
	ConfidenceLow     ConfidenceLevel = "low"
)

// TypeDistribution is the frequency of each chart type across the hourly
// samples of a day with unknown birth time
type TypeDistribution struct {
	Probabilities   map[ChartType]float64 `json:"probabilities"`
	Counts          map[ChartType]int     `json:"counts"`
	MostLikely      ChartType             `json:"most_likely"`
	Confidence      float64               `json:"confidence"`
	ConfidenceLevel ConfidenceLevel       `json:"confidence_level"`
	ValidSamples    int                   `json:"valid_samples"`
	FailedHours     []int                 `json:"failed_hours,omitempty"`
}

// Clone returns a deep copy
func (d TypeDistribution) Clone() TypeDistribution {
	out := d
	out.Probabilities = make(map[ChartType]float64, len(d.Probabilities))
	for k, v := range d.Probabilities {
		out.Probabilities[k] = v
	}
	out.Counts = make(map[ChartType]int, len(d.Counts))
	for k, v := range d.Counts {
		out.Counts[k] = v
	}
	out.FailedHours = append([]int(nil), d.FailedHours...)
	return out
}

package aggregates

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/domain/catalog"
	"bodygraph/domain/core/entities"
	vo "bodygraph/domain/core/valueobjects"
)

func TestCenterGraph(t *testing.T) {
	g := NewCenterGraph()
	require.NoError(t, g.Connect(vo.CenterThroat, vo.CenterSacral, "20-34"))
	require.NoError(t, g.Connect(vo.CenterSacral, vo.CenterThroat, "20-34"))
	require.NoError(t, g.Connect(vo.CenterG, vo.CenterThroat, "1-8"))

	assert.Error(t, g.Connect(vo.CenterG, vo.CenterG, "x"))
	assert.Error(t, g.Connect(vo.Center("Crown"), vo.CenterG, "x"))

	assert.True(t, g.Adjacent(vo.CenterSacral, vo.CenterThroat))
	assert.False(t, g.Adjacent(vo.CenterSacral, vo.CenterG))
	assert.Equal(t, []vo.Center{vo.CenterG, vo.CenterSacral}, g.Neighbors(vo.CenterThroat))
	assert.Equal(t, 2, g.Degree(vo.CenterThroat))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []vo.Center{vo.CenterThroat, vo.CenterG, vo.CenterSacral}, g.ConnectedCenters().Sorted())

	assert.Equal(t, []CenterEdge{
		{From: vo.CenterThroat, To: vo.CenterG, Channels: []string{"1-8"}},
		{From: vo.CenterThroat, To: vo.CenterSacral, Channels: []string{"20-34"}},
	}, g.Edges())
}

func testInput(t *testing.T, clock *string) vo.BirthInput {
	t.Helper()
	in, err := vo.NewBirthInput("John Doe", "1990-05-15", clock, 37.7749, -122.4194, "America/Los_Angeles")
	require.NoError(t, err)
	return in
}

func testParams(t *testing.T) ChartParams {
	clock := "14:30"
	ch, ok := catalog.ChannelByGates(20, 34)
	require.True(t, ok)

	return ChartParams{
		Input: testInput(t, &clock),
		Type: TypeDetails{
			Type:     vo.TypeManifestingGenerator,
			Strategy: "To Respond, then Inform",
		},
		Authority:        Authority{Code: catalog.AuthoritySacral, Name: "Sacral"},
		Profile:          Profile{PersonalityLine: 1, DesignLine: 3, Lines: "1/3"},
		Definition:       Definition{Count: 1, Name: "Single Definition"},
		PersonalityGates: []vo.GateActivation{{Body: vo.Sun, Epoch: vo.EpochPersonality, Activation: vo.Activation{Gate: 20}}},
		DesignGates:      []vo.GateActivation{{Body: vo.Sun, Epoch: vo.EpochDesign, Activation: vo.Activation{Gate: 34}}},
		Channels:         []entities.Channel{ch},
		DefinedCenters:   vo.NewCenterSet(vo.CenterSacral, vo.CenterThroat),
		Accuracy:         vo.AccuracyFull,
		BirthJulianDate:  2448027.4,
		DesignJulianDate: 2447938.2,
	}
}

func TestNewChart(t *testing.T) {
	params := testParams(t)
	chart, err := NewChart(params)
	require.NoError(t, err)

	assert.Equal(t, NewChartID(params.Input), chart.ID())
	assert.Equal(t, "John Doe", chart.Name())
	assert.Equal(t, vo.TypeManifestingGenerator, chart.Type())
	assert.Equal(t, []vo.Center{vo.CenterThroat, vo.CenterSacral}, chart.DefinedCenters())
	assert.Len(t, chart.UndefinedCenters(), vo.CenterCount-2)

	_, ok := chart.TypeProbabilities()
	assert.False(t, ok)
	_, ok = chart.BaselineHour()
	assert.False(t, ok)

	// accessors hand out copies
	gates := chart.PersonalityGates()
	gates[0].Gate = 1
	assert.Equal(t, 20, chart.PersonalityGates()[0].Gate)

	params.Channels[0].Name = "changed"
	assert.Equal(t, "Charisma", chart.Channels()[0].Name)
}

func TestNewChartRejectsInconsistentAccuracy(t *testing.T) {
	params := testParams(t)
	params.TypeProbabilities = &vo.TypeDistribution{}
	_, err := NewChart(params)
	assert.Error(t, err)

	params = testParams(t)
	params.Accuracy = vo.AccuracyProbabilistic
	_, err = NewChart(params)
	assert.Error(t, err)

	params = testParams(t)
	params.Type.Type = vo.ChartType("Oracle")
	_, err = NewChart(params)
	assert.Error(t, err)
}

func TestChartIDIsDeterministic(t *testing.T) {
	clock := "14:30"
	a := NewChartID(testInput(t, &clock))
	b := NewChartID(testInput(t, &clock))
	c := NewChartID(testInput(t, nil))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a.String(), 36)
}

func TestChartJSON(t *testing.T) {
	params := testParams(t)
	params.Accuracy = vo.AccuracyProbabilistic
	params.TypeProbabilities = &vo.TypeDistribution{
		Probabilities:   map[vo.ChartType]float64{vo.TypeManifestingGenerator: 1},
		Counts:          map[vo.ChartType]int{vo.TypeManifestingGenerator: 24},
		MostLikely:      vo.TypeManifestingGenerator,
		Confidence:      1,
		ConfidenceLevel: vo.ConfidenceCertain,
		ValidSamples:    24,
	}
	noon := 12
	params.BaselineHour = &noon

	chart, err := NewChart(params)
	require.NoError(t, err)

	first, err := json.Marshal(chart)
	require.NoError(t, err)
	second, err := json.Marshal(chart)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(first, &decoded))
	assert.Equal(t, "Manifesting Generator", decoded["type"])
	assert.Equal(t, "probabilistic", decoded["accuracy"])
	assert.Equal(t, float64(12), decoded["baseline_hour"])
	assert.Equal(t, []interface{}{"Throat", "Sacral"}, decoded["defined_centers"])

	probs := decoded["type_probabilities"].(map[string]interface{})
	assert.Equal(t, "certain", probs["confidence_level"])

	gates := decoded["personality_gates"].([]interface{})
	assert.Equal(t, "sun", gates[0].(map[string]interface{})["planet"])
}

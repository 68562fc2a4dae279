package catalog

import (
	"fmt"
	"strings"

	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// Validate checks that the tables are exhaustive and agree with each other.
// It runs once when the engine is wired; a failure is a programming error.
func Validate() error {
	var problems []string
	problems = append(problems, validateWheel()...)
	problems = append(problems, validatePartition()...)
	problems = append(problems, validateChannels()...)
	problems = append(problems, validateNames()...)

	if len(problems) == 0 {
		return nil
	}
	return pkgerrors.ErrCatalogInconsistent.Clone().
		WithDetail("problems", problems).
		WithCause(fmt.Errorf("%s", strings.Join(problems, "; ")))
}

func validateWheel() []string {
	var problems []string
	seen := make(map[int]int, GateCount)
	for slot, gate := range wheelOrder {
		if gate < 1 || gate > GateCount {
			problems = append(problems, fmt.Sprintf("wheel slot %d holds invalid gate %d", slot, gate))
			continue
		}
		if prev, dup := seen[gate]; dup {
			problems = append(problems, fmt.Sprintf("gate %d on wheel slots %d and %d", gate, prev, slot))
		}
		seen[gate] = slot
	}
	if len(seen) != GateCount {
		problems = append(problems, fmt.Sprintf("wheel covers %d gates, want %d", len(seen), GateCount))
	}
	return problems
}

func validatePartition() []string {
	var problems []string
	owner := make(map[int]vo.Center, GateCount)
	for _, center := range vo.AllCenters() {
		gates, ok := centerGates[center]
		if !ok {
			problems = append(problems, fmt.Sprintf("center %s has no gates", center))
			continue
		}
		for _, g := range gates {
			if prev, dup := owner[g]; dup {
				problems = append(problems, fmt.Sprintf("gate %d in both %s and %s", g, prev, center))
			}
			owner[g] = center
		}
	}
	if len(centerGates) != vo.CenterCount {
		problems = append(problems, fmt.Sprintf("partition has %d centers, want %d", len(centerGates), vo.CenterCount))
	}
	for g := 1; g <= GateCount; g++ {
		if _, ok := owner[g]; !ok {
			problems = append(problems, fmt.Sprintf("gate %d has no center", g))
		}
	}
	return problems
}

func validateChannels() []string {
	var problems []string
	if len(channelTable) != ChannelCount {
		problems = append(problems, fmt.Sprintf("channel table has %d entries, want %d", len(channelTable), ChannelCount))
	}
	seen := make(map[string]bool, len(channelTable))
	for _, ch := range channelTable {
		key := ch.Key()
		if seen[key] {
			problems = append(problems, fmt.Sprintf("channel %s listed twice", key))
		}
		seen[key] = true

		if ch.Centers[0] == ch.Centers[1] {
			problems = append(problems, fmt.Sprintf("channel %s joins %s to itself", key, ch.Centers[0]))
		}
		for i, g := range ch.Gates {
			center, ok := CenterOf(g)
			if !ok {
				problems = append(problems, fmt.Sprintf("channel %s uses unknown gate %d", key, g))
				continue
			}
			if center != ch.Centers[i] {
				problems = append(problems, fmt.Sprintf("channel %s gate %d is in %s, table says %s", key, g, center, ch.Centers[i]))
			}
		}
		if ch.Name == "" {
			problems = append(problems, fmt.Sprintf("channel %s has no name", key))
		}
	}
	return problems
}

func validateNames() []string {
	var problems []string
	for _, t := range vo.AllChartTypes() {
		if _, ok := typeInfo[t]; !ok {
			problems = append(problems, fmt.Sprintf("type %s has no metadata", t))
		}
	}
	for _, code := range AuthorityCodes() {
		if _, ok := authorityNames[code]; !ok {
			problems = append(problems, fmt.Sprintf("authority %s has no name", code))
		}
	}
	if len(profileNames) != ProfileCount {
		problems = append(problems, fmt.Sprintf("profile table has %d entries, want %d", len(profileNames), ProfileCount))
	}
	for key := range profileNames {
		if _, ok := profileCrossTypes[key]; !ok {
			problems = append(problems, fmt.Sprintf("profile %s has no cross type", key))
		}
	}
	for g := 1; g <= GateCount; g++ {
		names, ok := incarnationCrosses[g]
		if !ok {
			problems = append(problems, fmt.Sprintf("gate %d has no incarnation crosses", g))
			continue
		}
		for _, t := range []CrossType{CrossRightAngle, CrossJuxtaposition, CrossLeftAngle} {
			if _, ok := names.For(t); !ok {
				problems = append(problems, fmt.Sprintf("gate %d has no %s cross", g, t))
			}
		}
	}
	return problems
}

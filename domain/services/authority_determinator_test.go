package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodygraph/domain/catalog"
)

func TestDetermineAuthority(t *testing.T) {
	tests := []struct {
		name     string
		gates    []int
		expected catalog.AuthorityCode
	}{
		{"solar plexus outranks sacral", []int{6, 59}, catalog.AuthorityEmotional},
		{"solar plexus to throat", []int{12, 22}, catalog.AuthorityEmotional},
		{"sacral", []int{20, 34}, catalog.AuthoritySacral},
		{"spleen outranks heart", []int{26, 44}, catalog.AuthoritySplenic},
		{"heart to throat", []int{21, 45}, catalog.AuthorityEgoManifested},
		{"heart to g", []int{25, 51}, catalog.AuthorityEgoProjected},
		{"heart through g to throat is still projected", []int{25, 51, 13, 33}, catalog.AuthorityEgoProjected},
		{"g to throat", []int{1, 8}, catalog.AuthoritySelfProjected},
		{"no definition", nil, catalog.AuthorityLunar},
		{"mental", []int{4, 63, 17, 62}, catalog.AuthorityNone},
	}

	determinator := NewAuthorityDeterminator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defined, graph := chartFor(t, tt.gates...)

			authority, err := determinator.DetermineAuthority(defined, graph)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, authority.Code)

			name, ok := catalog.AuthorityName(tt.expected)
			require.True(t, ok)
			assert.Equal(t, name, authority.Name)
		})
	}
}

package services

import (
	"bodygraph/domain/catalog"
	"bodygraph/domain/core/aggregates"
	vo "bodygraph/domain/core/valueobjects"
	pkgerrors "bodygraph/pkg/errors"
)

// AuthorityDeterminator selects the inner authority by center priority
type AuthorityDeterminator struct{}

// NewAuthorityDeterminator creates an authority determinator
func NewAuthorityDeterminator() *AuthorityDeterminator {
	return &AuthorityDeterminator{}
}

// DetermineAuthority walks the authority waterfall. The first matching rule
// wins.
func (d *AuthorityDeterminator) DetermineAuthority(
	defined vo.CenterSet,
	graph *aggregates.CenterGraph,
) (aggregates.Authority, error) {
	var code catalog.AuthorityCode

	switch {
	case defined.Has(vo.CenterSolarPlexus):
		code = catalog.AuthorityEmotional
	case defined.Has(vo.CenterSacral):
		code = catalog.AuthoritySacral
	case defined.Has(vo.CenterSpleen):
		code = catalog.AuthoritySplenic
	case defined.Has(vo.CenterHeart):
		if IsConnected(graph, vo.CenterHeart, vo.CenterThroat) {
			code = catalog.AuthorityEgoManifested
		} else {
			code = catalog.AuthorityEgoProjected
		}
	case defined.Has(vo.CenterG) && IsConnected(graph, vo.CenterG, vo.CenterThroat):
		code = catalog.AuthoritySelfProjected
	case defined.Len() == 0:
		code = catalog.AuthorityLunar
	default:
		code = catalog.AuthorityNone
	}

	name, ok := catalog.AuthorityName(code)
	if !ok {
		return aggregates.Authority{}, pkgerrors.LookupMiss("authority", string(code))
	}
	return aggregates.Authority{Code: code, Name: name}, nil
}

package catalog

// AuthorityCode identifies an inner authority
type AuthorityCode string

const (
	AuthorityEmotional     AuthorityCode = "emotional"
	AuthoritySacral        AuthorityCode = "sacral"
	AuthoritySplenic       AuthorityCode = "splenic"
	AuthorityEgoManifested AuthorityCode = "ego_manifested"
	AuthorityEgoProjected  AuthorityCode = "ego_projected"
	AuthoritySelfProjected AuthorityCode = "self_projected"
	AuthorityLunar         AuthorityCode = "lunar"
	AuthorityNone          AuthorityCode = "none"
)

var authorityNames = map[AuthorityCode]string{
	AuthorityEmotional:     "Emotional - Solar Plexus",
	AuthoritySacral:        "Sacral",
	AuthoritySplenic:       "Splenic",
	AuthorityEgoManifested: "Ego Manifested",
	AuthorityEgoProjected:  "Ego Projected",
	AuthoritySelfProjected: "Self-Projected",
	AuthorityLunar:         "Lunar",
	AuthorityNone:          "No Inner Authority",
}

// AuthorityName returns the display name of an authority
func AuthorityName(code AuthorityCode) (string, bool) {
	name, ok := authorityNames[code]
	return name, ok
}

// AuthorityCodes returns every authority in waterfall order
func AuthorityCodes() []AuthorityCode {
	return []AuthorityCode{
		AuthorityEmotional,
		AuthoritySacral,
		AuthoritySplenic,
		AuthorityEgoManifested,
		AuthorityEgoProjected,
		AuthoritySelfProjected,
		AuthorityLunar,
		AuthorityNone,
	}
}

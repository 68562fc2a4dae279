package catalog

import "fmt"

// ProfileKey is a (personality Sun line, design Sun line) pair
type ProfileKey struct {
	Personality int
	Design      int
}

// String formats the key as "1/3"
func (k ProfileKey) String() string {
	return fmt.Sprintf("%d/%d", k.Personality, k.Design)
}

// ProfileCount is the number of profiles that can occur
const ProfileCount = 12

var profileNames = map[ProfileKey]string{
	{1, 3}: "Investigator / Martyr",
	{1, 4}: "Investigator / Opportunist",
	{2, 4}: "Hermit / Opportunist",
	{2, 5}: "Hermit / Heretic",
	{3, 5}: "Martyr / Heretic",
	{3, 6}: "Martyr / Role Model",
	{4, 6}: "Opportunist / Role Model",
	{4, 1}: "Opportunist / Investigator",
	{5, 1}: "Heretic / Investigator",
	{5, 2}: "Heretic / Hermit",
	{6, 2}: "Role Model / Hermit",
	{6, 3}: "Role Model / Martyr",
}

var profileCrossTypes = map[ProfileKey]CrossType{
	{1, 3}: CrossRightAngle,
	{1, 4}: CrossRightAngle,
	{2, 4}: CrossRightAngle,
	{2, 5}: CrossRightAngle,
	{3, 5}: CrossRightAngle,
	{3, 6}: CrossRightAngle,
	{4, 6}: CrossRightAngle,
	{4, 1}: CrossJuxtaposition,
	{5, 1}: CrossLeftAngle,
	{5, 2}: CrossLeftAngle,
	{6, 2}: CrossLeftAngle,
	{6, 3}: CrossLeftAngle,
}

// ProfileName returns the display name for a line pair
func ProfileName(key ProfileKey) (string, bool) {
	name, ok := profileNames[key]
	return name, ok
}

// ProfileCrossType returns the cross geometry for a line pair
func ProfileCrossType(key ProfileKey) (CrossType, bool) {
	t, ok := profileCrossTypes[key]
	return t, ok
}

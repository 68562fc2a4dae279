package valueobjects

// Center is one of the nine energy centers of the bodygraph
type Center string

const (
	CenterHead        Center = "Head"
	CenterAjna        Center = "Ajna"
	CenterThroat      Center = "Throat"
	CenterG           Center = "G"
	CenterHeart       Center = "Heart"
	CenterSacral      Center = "Sacral"
	CenterSolarPlexus Center = "Solar Plexus"
	CenterSpleen      Center = "Spleen"
	CenterRoot        Center = "Root"
)

// CenterCount is the number of centers
const CenterCount = 9

var centerOrder = map[Center]int{
	CenterHead:        0,
	CenterAjna:        1,
	CenterThroat:      2,
	CenterG:           3,
	CenterHeart:       4,
	CenterSacral:      5,
	CenterSolarPlexus: 6,
	CenterSpleen:      7,
	CenterRoot:        8,
}

// AllCenters returns the centers top to bottom
func AllCenters() []Center {
	return []Center{
		CenterHead,
		CenterAjna,
		CenterThroat,
		CenterG,
		CenterHeart,
		CenterSacral,
		CenterSolarPlexus,
		CenterSpleen,
		CenterRoot,
	}
}

// Valid reports whether c names one of the nine centers
func (c Center) Valid() bool {
	_, ok := centerOrder[c]
	return ok
}

// Index returns the canonical position of the center, or -1
func (c Center) Index() int {
	if i, ok := centerOrder[c]; ok {
		return i
	}
	return -1
}

// IsMotor reports whether the center is one of the four motors
func (c Center) IsMotor() bool {
	switch c {
	case CenterSacral, CenterHeart, CenterSolarPlexus, CenterRoot:
		return true
	default:
		return false
	}
}

// String returns the display name
func (c Center) String() string {
	return string(c)
}

// CenterSet is a set of centers with deterministic iteration via Sorted
type CenterSet map[Center]struct{}

// NewCenterSet builds a set from centers
func NewCenterSet(centers ...Center) CenterSet {
	s := make(CenterSet, len(centers))
	for _, c := range centers {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a center
func (s CenterSet) Add(c Center) {
	s[c] = struct{}{}
}

// Has reports membership
func (s CenterSet) Has(c Center) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of centers in the set
func (s CenterSet) Len() int {
	return len(s)
}

// Sorted returns the members in canonical order
func (s CenterSet) Sorted() []Center {
	out := make([]Center, 0, len(s))
	for _, c := range AllCenters() {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Complement returns the canonical centers not in the set
func (s CenterSet) Complement() []Center {
	out := make([]Center, 0, CenterCount-len(s))
	for _, c := range AllCenters() {
		if !s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

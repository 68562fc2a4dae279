package catalog

// CrossType is the geometry of an incarnation cross
type CrossType string

const (
	CrossRightAngle    CrossType = "Right Angle"
	CrossJuxtaposition CrossType = "Juxtaposition"
	CrossLeftAngle     CrossType = "Left Angle"
)

// CrossNames holds the three candidate cross names for a personality Sun gate
type CrossNames struct {
	RightAngle    string
	Juxtaposition string
	LeftAngle     string
}

// For returns the name for the given cross type
func (c CrossNames) For(t CrossType) (string, bool) {
	switch t {
	case CrossRightAngle:
		return c.RightAngle, c.RightAngle != ""
	case CrossJuxtaposition:
		return c.Juxtaposition, c.Juxtaposition != ""
	case CrossLeftAngle:
		return c.LeftAngle, c.LeftAngle != ""
	default:
		return "", false
	}
}

// incarnationCrosses is keyed by personality Sun gate
var incarnationCrosses = map[int]CrossNames{
	1: {
		RightAngle:    "Right Angle Cross of the Sphinx",
		Juxtaposition: "Juxtaposition Cross of Self-Expression",
		LeftAngle:     "Left Angle Cross of Defiance",
	},
	2: {
		RightAngle:    "Right Angle Cross of the Sphinx",
		Juxtaposition: "Juxtaposition Cross of the Driver",
		LeftAngle:     "Left Angle Cross of Defiance",
	},
	3: {
		RightAngle:    "Right Angle Cross of Laws",
		Juxtaposition: "Juxtaposition Cross of Mutation",
		LeftAngle:     "Left Angle Cross of Wishes",
	},
	4: {
		RightAngle:    "Right Angle Cross of Explanation",
		Juxtaposition: "Juxtaposition Cross of Formulization",
		LeftAngle:     "Left Angle Cross of Revolution",
	},
	5: {
		RightAngle:    "Right Angle Cross of Consciousness",
		Juxtaposition: "Juxtaposition Cross of Habits",
		LeftAngle:     "Left Angle Cross of Separation",
	},
	6: {
		RightAngle:    "Right Angle Cross of Eden",
		Juxtaposition: "Juxtaposition Cross of Conflict",
		LeftAngle:     "Left Angle Cross of the Plane",
	},
	7: {
		RightAngle:    "Right Angle Cross of the Sphinx",
		Juxtaposition: "Juxtaposition Cross of Interaction",
		LeftAngle:     "Left Angle Cross of Masks",
	},
	8: {
		RightAngle:    "Right Angle Cross of Contagion",
		Juxtaposition: "Juxtaposition Cross of Contribution",
		LeftAngle:     "Left Angle Cross of Uncertainty",
	},
	9: {
		RightAngle:    "Right Angle Cross of Planning",
		Juxtaposition: "Juxtaposition Cross of Focus",
		LeftAngle:     "Left Angle Cross of Identification",
	},
	10: {
		RightAngle:    "Right Angle Cross of the Vessel of Love",
		Juxtaposition: "Juxtaposition Cross of Behavior",
		LeftAngle:     "Left Angle Cross of Prevention",
	},
	11: {
		RightAngle:    "Right Angle Cross of Eden",
		Juxtaposition: "Juxtaposition Cross of Ideas",
		LeftAngle:     "Left Angle Cross of Education",
	},
	12: {
		RightAngle:    "Right Angle Cross of Eden",
		Juxtaposition: "Juxtaposition Cross of Articulation",
		LeftAngle:     "Left Angle Cross of Education",
	},
	13: {
		RightAngle:    "Right Angle Cross of the Sphinx",
		Juxtaposition: "Juxtaposition Cross of Listening",
		LeftAngle:     "Left Angle Cross of Masks",
	},
	14: {
		RightAngle:    "Right Angle Cross of Contagion",
		Juxtaposition: "Juxtaposition Cross of Empowering",
		LeftAngle:     "Left Angle Cross of Uncertainty",
	},
	15: {
		RightAngle:    "Right Angle Cross of the Vessel of Love",
		Juxtaposition: "Juxtaposition Cross of Extremes",
		LeftAngle:     "Left Angle Cross of Prevention",
	},
	16: {
		RightAngle:    "Right Angle Cross of Planning",
		Juxtaposition: "Juxtaposition Cross of Experimentation",
		LeftAngle:     "Left Angle Cross of Identification",
	},
	17: {
		RightAngle:    "Right Angle Cross of Service",
		Juxtaposition: "Juxtaposition Cross of Opinions",
		LeftAngle:     "Left Angle Cross of Upheaval",
	},
	18: {
		RightAngle:    "Right Angle Cross of Service",
		Juxtaposition: "Juxtaposition Cross of Correction",
		LeftAngle:     "Left Angle Cross of Upheaval",
	},
	19: {
		RightAngle:    "Right Angle Cross of the Four Ways",
		Juxtaposition: "Juxtaposition Cross of Need",
		LeftAngle:     "Left Angle Cross of Refinement",
	},
	20: {
		RightAngle:    "Right Angle Cross of the Sleeping Phoenix",
		Juxtaposition: "Juxtaposition Cross of the Now",
		LeftAngle:     "Left Angle Cross of Duality",
	},
	21: {
		RightAngle:    "Right Angle Cross of Tension",
		Juxtaposition: "Juxtaposition Cross of Control",
		LeftAngle:     "Left Angle Cross of Endeavour",
	},
	22: {
		RightAngle:    "Right Angle Cross of Rulership",
		Juxtaposition: "Juxtaposition Cross of Grace",
		LeftAngle:     "Left Angle Cross of Informing",
	},
	23: {
		RightAngle:    "Right Angle Cross of Explanation",
		Juxtaposition: "Juxtaposition Cross of Assimilation",
		LeftAngle:     "Left Angle Cross of Dedication",
	},
	24: {
		RightAngle:    "Right Angle Cross of the Four Ways",
		Juxtaposition: "Juxtaposition Cross of Rationalization",
		LeftAngle:     "Left Angle Cross of Incarnation",
	},
	25: {
		RightAngle:    "Right Angle Cross of the Vessel of Love",
		Juxtaposition: "Juxtaposition Cross of Innocence",
		LeftAngle:     "Left Angle Cross of Healing",
	},
	26: {
		RightAngle:    "Right Angle Cross of Rulership",
		Juxtaposition: "Juxtaposition Cross of the Trickster",
		LeftAngle:     "Left Angle Cross of Confrontation",
	},
	27: {
		RightAngle:    "Right Angle Cross of the Unexpected",
		Juxtaposition: "Juxtaposition Cross of Caring",
		LeftAngle:     "Left Angle Cross of Alignment",
	},
	28: {
		RightAngle:    "Right Angle Cross of the Unexpected",
		Juxtaposition: "Juxtaposition Cross of Risks",
		LeftAngle:     "Left Angle Cross of Alignment",
	},
	29: {
		RightAngle:    "Right Angle Cross of Contagion",
		Juxtaposition: "Juxtaposition Cross of Commitment",
		LeftAngle:     "Left Angle Cross of Industry",
	},
	30: {
		RightAngle:    "Right Angle Cross of Contagion",
		Juxtaposition: "Juxtaposition Cross of Fates",
		LeftAngle:     "Left Angle Cross of Industry",
	},
	31: {
		RightAngle:    "Right Angle Cross of the Unexpected",
		Juxtaposition: "Juxtaposition Cross of Influence",
		LeftAngle:     "Left Angle Cross of the Alpha",
	},
	32: {
		RightAngle:    "Right Angle Cross of Maya",
		Juxtaposition: "Juxtaposition Cross of Conservation",
		LeftAngle:     "Left Angle Cross of Limitation",
	},
	33: {
		RightAngle:    "Right Angle Cross of the Four Ways",
		Juxtaposition: "Juxtaposition Cross of Retreat",
		LeftAngle:     "Left Angle Cross of Refinement",
	},
	34: {
		RightAngle:    "Right Angle Cross of the Sleeping Phoenix",
		Juxtaposition: "Juxtaposition Cross of Power",
		LeftAngle:     "Left Angle Cross of Duality",
	},
	35: {
		RightAngle:    "Right Angle Cross of Consciousness",
		Juxtaposition: "Juxtaposition Cross of Experience",
		LeftAngle:     "Left Angle Cross of Separation",
	},
	36: {
		RightAngle:    "Right Angle Cross of Eden",
		Juxtaposition: "Juxtaposition Cross of Crisis",
		LeftAngle:     "Left Angle Cross of the Plane",
	},
	37: {
		RightAngle:    "Right Angle Cross of Planning",
		Juxtaposition: "Juxtaposition Cross of Bargains",
		LeftAngle:     "Left Angle Cross of Migration",
	},
	38: {
		RightAngle:    "Right Angle Cross of Tension",
		Juxtaposition: "Juxtaposition Cross of Opposition",
		LeftAngle:     "Left Angle Cross of Individualism",
	},
	39: {
		RightAngle:    "Right Angle Cross of Tension",
		Juxtaposition: "Juxtaposition Cross of Provocation",
		LeftAngle:     "Left Angle Cross of Individualism",
	},
	40: {
		RightAngle:    "Right Angle Cross of Planning",
		Juxtaposition: "Juxtaposition Cross of Denial",
		LeftAngle:     "Left Angle Cross of Migration",
	},
	41: {
		RightAngle:    "Right Angle Cross of the Unexpected",
		Juxtaposition: "Juxtaposition Cross of Fantasy",
		LeftAngle:     "Left Angle Cross of the Alpha",
	},
	42: {
		RightAngle:    "Right Angle Cross of Maya",
		Juxtaposition: "Juxtaposition Cross of Completion",
		LeftAngle:     "Left Angle Cross of Limitation",
	},
	43: {
		RightAngle:    "Right Angle Cross of Explanation",
		Juxtaposition: "Juxtaposition Cross of Insight",
		LeftAngle:     "Left Angle Cross of Dedication",
	},
	44: {
		RightAngle:    "Right Angle Cross of the Four Ways",
		Juxtaposition: "Juxtaposition Cross of Alertness",
		LeftAngle:     "Left Angle Cross of Incarnation",
	},
	45: {
		RightAngle:    "Right Angle Cross of Rulership",
		Juxtaposition: "Juxtaposition Cross of Possession",
		LeftAngle:     "Left Angle Cross of Confrontation",
	},
	46: {
		RightAngle:    "Right Angle Cross of the Vessel of Love",
		Juxtaposition: "Juxtaposition Cross of Serendipity",
		LeftAngle:     "Left Angle Cross of Healing",
	},
	47: {
		RightAngle:    "Right Angle Cross of Rulership",
		Juxtaposition: "Juxtaposition Cross of Oppression",
		LeftAngle:     "Left Angle Cross of Informing",
	},
	48: {
		RightAngle:    "Right Angle Cross of Tension",
		Juxtaposition: "Juxtaposition Cross of Depth",
		LeftAngle:     "Left Angle Cross of Endeavour",
	},
	49: {
		RightAngle:    "Right Angle Cross of Explanation",
		Juxtaposition: "Juxtaposition Cross of Principles",
		LeftAngle:     "Left Angle Cross of Revolution",
	},
	50: {
		RightAngle:    "Right Angle Cross of Laws",
		Juxtaposition: "Juxtaposition Cross of Values",
		LeftAngle:     "Left Angle Cross of Wishes",
	},
	51: {
		RightAngle:    "Right Angle Cross of Penetration",
		Juxtaposition: "Juxtaposition Cross of Shock",
		LeftAngle:     "Left Angle Cross of the Clarion",
	},
	52: {
		RightAngle:    "Right Angle Cross of Service",
		Juxtaposition: "Juxtaposition Cross of Stillness",
		LeftAngle:     "Left Angle Cross of Demands",
	},
	53: {
		RightAngle:    "Right Angle Cross of Penetration",
		Juxtaposition: "Juxtaposition Cross of Beginnings",
		LeftAngle:     "Left Angle Cross of Cycles",
	},
	54: {
		RightAngle:    "Right Angle Cross of Penetration",
		Juxtaposition: "Juxtaposition Cross of Ambition",
		LeftAngle:     "Left Angle Cross of Cycles",
	},
	55: {
		RightAngle:    "Right Angle Cross of the Sleeping Phoenix",
		Juxtaposition: "Juxtaposition Cross of Moods",
		LeftAngle:     "Left Angle Cross of Spirit",
	},
	56: {
		RightAngle:    "Right Angle Cross of Laws",
		Juxtaposition: "Juxtaposition Cross of Stimulation",
		LeftAngle:     "Left Angle Cross of Distraction",
	},
	57: {
		RightAngle:    "Right Angle Cross of Penetration",
		Juxtaposition: "Juxtaposition Cross of Intuition",
		LeftAngle:     "Left Angle Cross of the Clarion",
	},
	58: {
		RightAngle:    "Right Angle Cross of Service",
		Juxtaposition: "Juxtaposition Cross of Vitality",
		LeftAngle:     "Left Angle Cross of Demands",
	},
	59: {
		RightAngle:    "Right Angle Cross of the Sleeping Phoenix",
		Juxtaposition: "Juxtaposition Cross of Strategy",
		LeftAngle:     "Left Angle Cross of Spirit",
	},
	60: {
		RightAngle:    "Right Angle Cross of Laws",
		Juxtaposition: "Juxtaposition Cross of Limitation",
		LeftAngle:     "Left Angle Cross of Distraction",
	},
	61: {
		RightAngle:    "Right Angle Cross of Maya",
		Juxtaposition: "Juxtaposition Cross of Thinking",
		LeftAngle:     "Left Angle Cross of Obscuration",
	},
	62: {
		RightAngle:    "Right Angle Cross of Maya",
		Juxtaposition: "Juxtaposition Cross of Detail",
		LeftAngle:     "Left Angle Cross of Obscuration",
	},
	63: {
		RightAngle:    "Right Angle Cross of Consciousness",
		Juxtaposition: "Juxtaposition Cross of Doubts",
		LeftAngle:     "Left Angle Cross of Dominion",
	},
	64: {
		RightAngle:    "Right Angle Cross of Consciousness",
		Juxtaposition: "Juxtaposition Cross of Confusion",
		LeftAngle:     "Left Angle Cross of Dominion",
	},
}

// CrossesForGate returns the candidate crosses for a personality Sun gate
func CrossesForGate(gate int) (CrossNames, bool) {
	names, ok := incarnationCrosses[gate]
	return names, ok
}

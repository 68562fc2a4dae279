package catalog

import (
	"bodygraph/domain/core/entities"
	vo "bodygraph/domain/core/valueobjects"
)

// ChannelCount is the number of channels in the bodygraph
const ChannelCount = 36

// channelTable lists every channel with its center pair. Centers are
// written out rather than derived so Validate can cross-check them
// against the gate partition.
var channelTable = []entities.Channel{
	entities.NewChannel(1, 8, vo.CenterG, vo.CenterThroat, "Inspiration", "A design of a creative role model"),
	entities.NewChannel(2, 14, vo.CenterG, vo.CenterSacral, "The Beat", "A design of being a keeper of keys"),
	entities.NewChannel(3, 60, vo.CenterSacral, vo.CenterRoot, "Mutation", "A design of energy which fluctuates and initiates"),
	entities.NewChannel(4, 63, vo.CenterAjna, vo.CenterHead, "Logic", "A design of mental ease mixed with doubt"),
	entities.NewChannel(5, 15, vo.CenterSacral, vo.CenterG, "Rhythm", "A design of being in the flow"),
	entities.NewChannel(6, 59, vo.CenterSolarPlexus, vo.CenterSacral, "Mating", "A design focused on reproduction"),
	entities.NewChannel(7, 31, vo.CenterG, vo.CenterThroat, "The Alpha", "A design of leadership for good or bad"),
	entities.NewChannel(9, 52, vo.CenterSacral, vo.CenterRoot, "Concentration", "A design of determination"),
	entities.NewChannel(10, 20, vo.CenterG, vo.CenterThroat, "Awakening", "A design of commitment to higher principles"),
	entities.NewChannel(10, 34, vo.CenterG, vo.CenterSacral, "Exploration", "A design of following one's convictions"),
	entities.NewChannel(10, 57, vo.CenterG, vo.CenterSpleen, "Perfected Form", "A design of survival"),
	entities.NewChannel(11, 56, vo.CenterAjna, vo.CenterThroat, "Curiosity", "A design of a searcher"),
	entities.NewChannel(12, 22, vo.CenterThroat, vo.CenterSolarPlexus, "Openness", "A design of a social being"),
	entities.NewChannel(13, 33, vo.CenterG, vo.CenterThroat, "The Prodigal", "A design of a witness"),
	entities.NewChannel(16, 48, vo.CenterThroat, vo.CenterSpleen, "The Wavelength", "A design of talent"),
	entities.NewChannel(17, 62, vo.CenterAjna, vo.CenterThroat, "Acceptance", "A design of an organisational being"),
	entities.NewChannel(18, 58, vo.CenterSpleen, vo.CenterRoot, "Judgment", "A design of insatiability"),
	entities.NewChannel(19, 49, vo.CenterRoot, vo.CenterSolarPlexus, "Synthesis", "A design of being sensitive"),
	entities.NewChannel(20, 34, vo.CenterThroat, vo.CenterSacral, "Charisma", "A design where thoughts must become deeds"),
	entities.NewChannel(20, 57, vo.CenterThroat, vo.CenterSpleen, "The Brainwave", "A design of penetrating awareness"),
	entities.NewChannel(21, 45, vo.CenterHeart, vo.CenterThroat, "The Money Line", "A design of a materialist"),
	entities.NewChannel(23, 43, vo.CenterThroat, vo.CenterAjna, "Structuring", "A design of individuality, genius to freak"),
	entities.NewChannel(24, 61, vo.CenterAjna, vo.CenterHead, "Awareness", "A design of a thinker"),
	entities.NewChannel(25, 51, vo.CenterG, vo.CenterHeart, "Initiation", "A design of needing to be first"),
	entities.NewChannel(26, 44, vo.CenterHeart, vo.CenterSpleen, "Surrender", "A design of a transmitter"),
	entities.NewChannel(27, 50, vo.CenterSacral, vo.CenterSpleen, "Preservation", "A design of custodianship"),
	entities.NewChannel(28, 38, vo.CenterSpleen, vo.CenterRoot, "Struggle", "A design of stubbornness"),
	entities.NewChannel(29, 46, vo.CenterSacral, vo.CenterG, "Discovery", "A design of succeeding where others fail"),
	entities.NewChannel(30, 41, vo.CenterSolarPlexus, vo.CenterRoot, "Recognition", "A design of focused energy"),
	entities.NewChannel(32, 54, vo.CenterSpleen, vo.CenterRoot, "Transformation", "A design of being driven"),
	entities.NewChannel(34, 57, vo.CenterSacral, vo.CenterSpleen, "Power", "A design of an archetype"),
	entities.NewChannel(35, 36, vo.CenterThroat, vo.CenterSolarPlexus, "Transitoriness", "A design of a jack of all trades"),
	entities.NewChannel(37, 40, vo.CenterSolarPlexus, vo.CenterHeart, "Community", "A design of being a part seeking a whole"),
	entities.NewChannel(39, 55, vo.CenterRoot, vo.CenterSolarPlexus, "Emoting", "A design of moodiness"),
	entities.NewChannel(42, 53, vo.CenterSacral, vo.CenterRoot, "Maturation", "A design of balanced development"),
	entities.NewChannel(47, 64, vo.CenterAjna, vo.CenterHead, "Abstraction", "A design of mental activity and clarity"),
}

// Channels returns the channel table in table order
func Channels() []entities.Channel {
	out := make([]entities.Channel, len(channelTable))
	copy(out, channelTable)
	return out
}

// ChannelByGates finds the channel joining two gates in either order
func ChannelByGates(a, b int) (entities.Channel, bool) {
	for _, ch := range channelTable {
		if (ch.Gates[0] == a && ch.Gates[1] == b) || (ch.Gates[0] == b && ch.Gates[1] == a) {
			return ch, true
		}
	}
	return entities.Channel{}, false
}

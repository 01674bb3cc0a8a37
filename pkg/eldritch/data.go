package eldritch

// AssetPrefix is the namespace the client uses for asset files.
const AssetPrefix = "eldritch"

// Category names, as used by Registry.Category.
const (
	CategoryBoard        = "board"
	CategoryCharacters   = "characterNames"
	CategoryCommon       = "commonNames"
	CategoryUnique       = "uniqueNames"
	CategorySpells       = "spellNames"
	CategorySkills       = "skillNames"
	CategoryAllies       = "allyNames"
	CategoryAbilities    = "abilityNames"
	CategoryMonsters     = "monsterNames"
	CategoryOtherWorlds  = "otherWorlds"
	CategoryGates        = "gateNames"
	CategoryExtra        = "extraNames"
	CategoryNeighborhood = "neighborhoodNames"
	CategoryEncounters   = "encounterCardNames"
	CategoryGateCards    = "gateCards"
	CategoryMythosCards  = "mythosCards"
	CategoryLocations    = "locationNames"
	CategoryStories      = "storyNames"
)

// boardName is part of the asset list but never served by name.
const boardName = "board"

const (
	gatePrefix        = "Gate "
	gateCardPrefix    = "gate"
	gateCardCount     = 50
	mythosCardPrefix  = "mythos"
	mythosCardCount   = 67
	encounterPerPlace = 7
)

var characterNames = []string{"Nun", "Doctor", "Archaeologist", "Gangster"}

var commonNames = []string{
	".38 Revolver",
	"Bullwhip",
	"Cross",
	"Dynamite",
	"Food",
	"Tommy Gun",
	"Research Materials",
}

var uniqueNames = []string{
	"Enchanted Knife",
	"Holy Water",
	"Magic Lamp",
}

var spellNames = []string{
	"Dread Curse",
	"Find Gate",
	"Shrivelling",
	"Voice",
	"Wither",
}

var skillNames = []string{
	"Speed",
	"Sneak",
	"Fight",
	"Will",
	"Lore",
	"Luck",
	"Stealth",
	"Marksman",
	"Bravery",
	"Expert Occultist",
}

var allyNames = []string{
	"Fortune Teller",
	"Traveling Salesman",
	"Police Detective",
	"Thief",
	"Brave Guy",
	"Police Inspector",
	"Arm Wrestler",
	"Visiting Painter",
	"Tough Guy",
	"Old Professor",
	"Dog",
}

var abilityNames = []string{"Medicine"}

var monsterNames = []string{
	"Giant Insect",
	"Land Squid",
	"Cultist",
	"Tentacle Tree",
	"Dimensional Shambler",
	"Giant Worm",
	"Elder Thing",
	"Flame Matrix",
	"Subterranean Flier",
	"Formless Spawn",
	"Ghost",
	"Ghoul",
	"Furry Beast",
	"Haunter",
	"High Priest",
	"Hound",
	"Maniac",
	"Pinata",
	"Dream Flier",
	"Giant Amoeba",
	"Octopoid",
	"Vampire",
	"Warlock",
	"Witch",
	"Zombie",
}

var otherWorlds = []string{
	"Abyss",
	"Another Dimension",
	"City",
	"Great Hall",
	"Plateau",
	"Sunken City",
	"Dreamlands",
	"Pluto",
}

var extraNames = []string{"Clue"}

var neighborhoodNames = []string{
	"Northside",
	"Downtown",
	"Easttown",
	"Rivertown",
	"FrenchHill",
	"Southside",
	"Uptown",
	"University",
	"Merchant",
}

// neighborhoodLocation names the locations whose encounters are printed on a
// neighborhood's encounter cards.
type neighborhoodLocation struct {
	neighborhood string
	locations    []string
}

// neighborhoodLocations follows neighborhoodNames order. Neighborhoods whose
// cards carry a single location list only that one.
var neighborhoodLocations = []neighborhoodLocation{
	{"Northside", []string{"Train"}},
	{"Downtown", []string{"Asylum", "Bank", "Square"}},
	{"Easttown", []string{"Diner", "Roadhouse", "Police"}},
	{"Rivertown", []string{"Store"}},
	{"FrenchHill", []string{"Lodge", "Witch"}},
	{"Southside", []string{"Society"}},
	{"Uptown", []string{"Hospital", "Woods", "MagickShoppe"}},
	{"University", []string{"Administration"}},
	{"Merchant", []string{"Docks", "Unnamable", "Isle"}},
}

// Story is a character story card and the two result cards it can resolve to.
type Story struct {
	Name string `json:"name"`
	Pass string `json:"pass"`
	Fail string `json:"fail"`
}

var stories = []Story{
	{Name: "Powerful Nightmares", Pass: "Sweet Dreams", Fail: "Living Nightmare"},
	{Name: "He Is My Shepherd", Pass: "Fear No Evil", Fail: "I Shall Not Want"},
}

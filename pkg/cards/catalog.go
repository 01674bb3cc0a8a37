package cards

import (
	"fmt"
)

func weapon(name string, deck Deck, active map[string]int, hands, price int) Item {
	return Item{Name: name, Deck: deck, Kind: KindWeapon, ActiveBonuses: active, Hands: hands, Price: price}
}

func spell(name string, active map[string]int, hands, difficulty, sanity int, combat bool) Item {
	return Item{
		Name:          name,
		Deck:          DeckSpells,
		ActiveBonuses: active,
		Hands:         hands,
		Spell:         &SpellInfo{Difficulty: difficulty, SanityCost: sanity, Combat: combat},
	}
}

// catalog is every known item card, grouped by deck.
var catalog = []Item{
	{Name: "Food", Deck: DeckCommon, Price: 1},
	{Name: "Whiskey", Deck: DeckCommon, Price: 1},
	{Name: "Research Materials", Deck: DeckCommon, Price: 1},
	{Name: "Dark Cloak", Deck: DeckCommon, PassiveBonuses: map[string]int{"evade": 1}, Price: 2},
	weapon("Bullwhip", DeckCommon, map[string]int{"physical": 1}, 1, 2),
	{Name: "Cross", Deck: DeckCommon, Kind: KindWeapon, PassiveBonuses: map[string]int{"horror": 1}, Hands: 1, Price: 3},
	weapon(".38 Revolver", DeckCommon, map[string]int{"physical": 3}, 1, 4),
	weapon(".45 Automatic", DeckCommon, map[string]int{"physical": 4}, 1, 5),
	withOneShot(weapon("Dynamite", DeckCommon, map[string]int{"physical": 8}, 2, 4)),
	weapon("Tommy Gun", DeckCommon, map[string]int{"physical": 6}, 2, 7),

	withOneShot(weapon("Holy Water", DeckUnique, map[string]int{"magical": 6}, 2, 4)),
	weapon("Enchanted Knife", DeckUnique, map[string]int{"magical": 3}, 1, 5),
	weapon("Magic Lamp", DeckUnique, map[string]int{"magical": 5}, 2, 7),

	spell("Wither", map[string]int{"magical": 3}, 1, 0, 0, true),
	spell("Shrivelling", map[string]int{"magical": 6}, 1, -1, 1, true),
	spell("Dread Curse", map[string]int{"magical": 9}, 2, -2, 2, true),
	spell("Enchant Weapon", nil, 0, 0, 1, true),
	spell("Red Sign", nil, 1, -1, 1, true),
	spell("Voice", map[string]int{"speed": 1, "sneak": 1, "fight": 1, "will": 1, "lore": 1, "luck": 1}, 0, -1, 1, false),
	spell("Find Gate", nil, 0, -1, 1, false),
}

func withOneShot(it Item) Item {
	it.OneShot = true
	return it
}

type deckEntry struct {
	name   string
	copies int
}

// deckContents lists the cards shuffled into each deck at setup.
var deckContents = map[Deck][]deckEntry{
	DeckCommon: {
		{".45 Automatic", 2},
		{"Dark Cloak", 2},
		{".38 Revolver", 2},
		{"Dynamite", 2},
		{"Tommy Gun", 2},
		{"Food", 2},
		{"Research Materials", 2},
		{"Bullwhip", 2},
		{"Cross", 2},
	},
	DeckUnique: {
		{"Holy Water", 4},
		{"Enchanted Knife", 2},
		{"Magic Lamp", 1},
	},
	DeckSpells: {
		{"Dread Curse", 4},
		{"Enchant Weapon", 3},
		{"Find Gate", 4},
		{"Red Sign", 2},
		{"Shrivelling", 5},
		{"Voice", 3},
		{"Wither", 6},
	},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, it := range catalog {
		m[it.Name] = i
	}
	return m
}()

// Catalog returns a copy of every item definition.
func Catalog() []Item {
	out := make([]Item, 0, len(catalog))
	for _, it := range catalog {
		out = append(out, it.Clone())
	}
	return out
}

// Get returns the item with the given name.
func Get(name string) (Item, error) {
	idx, ok := byName[name]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	return catalog[idx].Clone(), nil
}

// ByDeck returns the items belonging to a deck, in catalog order.
func ByDeck(deck Deck) ([]Item, error) {
	if _, ok := deckContents[deck]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDeck, deck)
	}
	var out []Item
	for _, it := range catalog {
		if it.Deck == deck {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}

// Names returns the names of every catalog item in a deck.
func Names(deck Deck) ([]string, error) {
	items, err := ByDeck(deck)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out, nil
}

// BuildDeck returns the unshuffled card names of a deck, one entry per copy.
func BuildDeck(deck Deck) ([]string, error) {
	entries, ok := deckContents[deck]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDeck, deck)
	}
	var out []string
	for _, e := range entries {
		for range e.copies {
			out = append(out, e.name)
		}
	}
	return out, nil
}

// Copies returns how many copies of each card a deck holds.
func Copies(deck Deck) (map[string]int, error) {
	entries, ok := deckContents[deck]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDeck, deck)
	}
	out := make(map[string]int, len(entries))
	for _, e := range entries {
		out[e.name] += e.copies
	}
	return out, nil
}

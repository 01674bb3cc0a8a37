package cards

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Deck identifies which pile an item card is drawn from.
type Deck string

const (
	DeckCommon Deck = "common"
	DeckUnique Deck = "unique"
	DeckSpells Deck = "spells"
)

// Decks lists every deck in draw-pile order.
var Decks = []Deck{DeckCommon, DeckUnique, DeckSpells}

// Kind is the item subtype. The zero value means a plain item.
type Kind string

const (
	KindNone   Kind = ""
	KindWeapon Kind = "weapon"
)

var (
	ErrUnknownDeck = errors.New("unknown deck")
	ErrUnknownItem = errors.New("unknown item")
)

// ParseDeck accepts a deck name, case-insensitive.
func ParseDeck(s string) (Deck, error) {
	d := Deck(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Decks, d) {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeck, s)
	}
	return d, nil
}

// Item is the static definition of an item card.
type Item struct {
	Name string `json:"name"`
	Deck Deck   `json:"deck"`
	Kind Kind   `json:"kind,omitempty"`

	Hands int `json:"hands,omitempty"` // Hands needed while active; 0 for items that are never held
	Price int `json:"price,omitempty"` // Shop price in dollars; 0 for spells

	ActiveBonuses  map[string]int `json:"active_bonuses,omitempty"`  // Applied only while the item is active (e.g., "physical": 3)
	PassiveBonuses map[string]int `json:"passive_bonuses,omitempty"` // Always applied (e.g., "evade": 1)

	OneShot bool       `json:"one_shot,omitempty"` // Discarded after a single combat use
	Spell   *SpellInfo `json:"spell,omitempty"`
}

// SpellInfo holds the casting parameters of a spell card.
type SpellInfo struct {
	Difficulty int  `json:"difficulty"`  // Modifier to the lore check when casting
	SanityCost int  `json:"sanity_cost"` // Sanity spent per cast
	Combat     bool `json:"combat"`      // Cast during combat and held until combat ends
}

// HandsUsed returns the hands the item occupies. inUse means active for
// weapons and other items, and currently cast for spells; anything not in
// use occupies no hands.
func (it Item) HandsUsed(inUse bool) int {
	if !inUse {
		return 0
	}
	return it.Hands
}

// IsWeapon reports whether the item is a weapon.
func (it Item) IsWeapon() bool {
	return it.Kind == KindWeapon
}

// IsSpell reports whether the item is a spell.
func (it Item) IsSpell() bool {
	return it.Spell != nil
}

// Bonus returns the combined active (when active) and passive bonus for an attribute.
func (it Item) Bonus(attribute string, active bool) int {
	b := it.PassiveBonuses[attribute]
	if active {
		b += it.ActiveBonuses[attribute]
	}
	return b
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	c := it
	c.ActiveBonuses = maps.Clone(it.ActiveBonuses)
	c.PassiveBonuses = maps.Clone(it.PassiveBonuses)
	if it.Spell != nil {
		s := *it.Spell
		c.Spell = &s
	}
	return c
}

package eldritch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jwebster45206/eldritch-assets/pkg/names"
)

// ErrUnknownCategory is returned when a category name is not in the registry.
var ErrUnknownCategory = errors.New("unknown category")

// ErrUnknownNeighborhood is returned for a neighborhood outside neighborhoodNames.
var ErrUnknownNeighborhood = errors.New("unknown neighborhood")

// Options controls registry construction.
type Options struct {
	MythosLayout MythosLayout
}

// Registry holds every asset name enumeration, base and derived.
// A Registry is immutable once built; accessors return copies.
type Registry struct {
	layout     MythosLayout
	categories []names.Category
	byName     map[string]int
	baseAssets []string
	assets     []string
	lookup     *names.Lookup

	locations    map[string][]string
	neighborhood map[string]string
}

// baseOrder is the category order of the base aggregate that feeds the
// server lookup table.
var baseOrder = []string{
	CategoryBoard,
	CategoryCharacters,
	CategoryCommon,
	CategoryUnique,
	CategorySpells,
	CategorySkills,
	CategoryAllies,
	CategoryAbilities,
	CategoryMonsters,
	CategoryOtherWorlds,
	CategoryGates,
	CategoryExtra,
}

// cardOrder is appended to the base aggregate to form the full asset list.
var cardOrder = []string{
	CategoryEncounters,
	CategoryGateCards,
	CategoryMythosCards,
}

// Build constructs a registry from the literal base lists.
func Build(opts Options) (*Registry, error) {
	if opts.MythosLayout != MythosSeparate && opts.MythosLayout != MythosLegacy {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, int(opts.MythosLayout))
	}

	var encounters []string
	for _, n := range neighborhoodNames {
		cards, err := names.DeriveByIndexRange(n, 1, encounterPerPlace)
		if err != nil {
			return nil, fmt.Errorf("failed to build encounter cards for %s: %w", n, err)
		}
		encounters = append(encounters, cards...)
	}

	gateCards, err := names.DeriveByIndexRange(gateCardPrefix, 1, gateCardCount)
	if err != nil {
		return nil, fmt.Errorf("failed to build gate cards: %w", err)
	}
	mythosCards, err := names.DeriveByIndexRange(mythosCardPrefix, 1, mythosCardCount)
	if err != nil {
		return nil, fmt.Errorf("failed to build mythos cards: %w", err)
	}
	if opts.MythosLayout == MythosLegacy {
		gateCards = append(gateCards, mythosCards...)
		mythosCards = []string{}
	}

	byHood, err := indexLocations(neighborhoodLocations, neighborhoodNames)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		layout:       opts.MythosLayout,
		byName:       make(map[string]int),
		locations:    byHood,
		neighborhood: make(map[string]string),
	}
	var locations []string
	for _, n := range neighborhoodNames {
		for _, loc := range byHood[n] {
			locations = append(locations, loc)
			r.neighborhood[loc] = n
		}
	}
	storyNames := make([]string, 0, 3*len(stories))
	for _, s := range stories {
		storyNames = append(storyNames, s.Name, s.Pass, s.Fail)
	}

	r.add(CategoryBoard, []string{boardName})
	r.add(CategoryCharacters, characterNames)
	r.add(CategoryCommon, commonNames)
	r.add(CategoryUnique, uniqueNames)
	r.add(CategorySpells, spellNames)
	r.add(CategorySkills, skillNames)
	r.add(CategoryAllies, allyNames)
	r.add(CategoryAbilities, abilityNames)
	r.add(CategoryMonsters, monsterNames)
	r.add(CategoryOtherWorlds, otherWorlds)
	r.add(CategoryGates, names.DeriveByPrefix(gatePrefix, otherWorlds))
	r.add(CategoryExtra, extraNames)
	r.add(CategoryNeighborhood, neighborhoodNames)
	r.add(CategoryEncounters, encounters)
	r.add(CategoryGateCards, gateCards)
	r.add(CategoryMythosCards, mythosCards)
	r.add(CategoryLocations, locations)
	r.add(CategoryStories, storyNames)

	r.baseAssets = names.BuildAggregate(r.ordered(baseOrder)...)
	r.assets = slices.Concat(r.baseAssets, names.BuildAggregate(r.ordered(cardOrder)...))
	r.lookup = names.NewLookup(r.baseAssets, boardName)
	return r, nil
}

// indexLocations groups locations by neighborhood, rejecting any neighborhood
// not in known. A neighborhood listed twice keeps both sets of locations.
func indexLocations(table []neighborhoodLocation, known []string) (map[string][]string, error) {
	out := make(map[string][]string, len(known))
	for _, entry := range table {
		if !slices.Contains(known, entry.neighborhood) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNeighborhood, entry.neighborhood)
		}
		out[entry.neighborhood] = append(out[entry.neighborhood], entry.locations...)
	}
	return out, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(opts Options) *Registry {
	r, err := Build(opts)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) add(name string, items []string) {
	r.byName[name] = len(r.categories)
	r.categories = append(r.categories, names.NewCategory(name, items))
}

func (r *Registry) ordered(order []string) []names.Category {
	out := make([]names.Category, 0, len(order))
	for _, name := range order {
		out = append(out, r.categories[r.byName[name]])
	}
	return out
}

// Prefix returns the asset namespace.
func (r *Registry) Prefix() string {
	return AssetPrefix
}

// Layout returns the mythos layout the registry was built with.
func (r *Registry) Layout() MythosLayout {
	return r.layout
}

// Category returns a copy of the named category.
func (r *Registry) Category(name string) (names.Category, error) {
	idx, ok := r.byName[name]
	if !ok {
		return names.Category{}, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
	}
	return r.categories[idx].Clone(), nil
}

// Categories returns copies of every category in declaration order.
func (r *Registry) Categories() []names.Category {
	out := make([]names.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c.Clone())
	}
	return out
}

// CategoryNames returns category names in declaration order.
func (r *Registry) CategoryNames() []string {
	out := make([]string, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c.Name)
	}
	return out
}

// BaseAssetNames returns the aggregate that the server lookup table is built from.
func (r *Registry) BaseAssetNames() []string {
	return slices.Clone(r.baseAssets)
}

// AssetNames returns the full asset list: base names, encounter cards,
// gate cards and mythos cards.
func (r *Registry) AssetNames() []string {
	return slices.Clone(r.assets)
}

// ServerNames returns the name-to-name table of base assets, without the board.
func (r *Registry) ServerNames() map[string]string {
	return r.lookup.Table()
}

// Lookup returns the resolver over ServerNames.
func (r *Registry) Lookup() *names.Lookup {
	return r.lookup
}

// Locations returns the encounter locations of a neighborhood.
// A known neighborhood without locations yields an empty slice.
func (r *Registry) Locations(neighborhood string) ([]string, error) {
	if !slices.Contains(neighborhoodNames, neighborhood) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNeighborhood, neighborhood)
	}
	return append([]string{}, r.locations[neighborhood]...), nil
}

// NeighborhoodOf returns the neighborhood a location belongs to.
func (r *Registry) NeighborhoodOf(location string) (string, bool) {
	n, ok := r.neighborhood[location]
	return n, ok
}

// Stories returns the story cards with their pass and fail results.
func (r *Registry) Stories() []Story {
	return slices.Clone(stories)
}

var defaultRegistry = MustBuild(Options{})

// Default returns the registry built at package initialization.
func Default() *Registry {
	return defaultRegistry
}

// AssetNames returns the full asset list of the default registry.
func AssetNames() []string {
	return defaultRegistry.AssetNames()
}

// ServerNames returns the lookup table of the default registry.
func ServerNames() map[string]string {
	return defaultRegistry.ServerNames()
}

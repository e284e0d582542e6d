package attribute

import "errors"

// ErrTooManyAttributes indicates the closed enumeration has grown past
// what a single uint64 Mask can represent.
var ErrTooManyAttributes = errors.New("attribute: more than 64 tags defined, Mask can no longer represent them")

// TileAttribute is a closed enumeration of terrain/object tags a cell
// may carry. Values are ordinals used directly as Mask bit positions.
type TileAttribute int

// The full BGT-derived vocabulary. Grouping follows the source layers:
// water, road surfaces (by function), supporting road surfaces,
// unvegetated terrain, vegetated terrain, buildings, vegetation objects,
// and separations.
const (
	Waterdeel TileAttribute = iota
	OndersteunendWaterdeel_OeverSlootkant
	OndersteunendWaterdeel_Slik

	Wegdeel_Voetpad
	Wegdeel_Parkeervlak
	Wegdeel_Spoorbaan
	Wegdeel_Overweg
	Wegdeel_Voetgangersgebied
	Wegdeel_VoetpadOpTrap
	Wegdeel_Fietspad
	Wegdeel_RijbaanAutoweg
	Wegdeel_RijbaanLokaleWeg
	Wegdeel_RijbaanRegionaleWeg
	Wegdeel_RijbaanAutosnelweg
	Wegdeel_OvBaan
	Wegdeel_Ruiterpad
	Wegdeel_Woonerf
	Wegdeel_BaanVoorVliegverkeer
	Wegdeel_OpenVerharding
	Wegdeel_GeslotenVerharding
	Wegdeel_HalfVerhard
	Wegdeel_Onverhard

	OndersteunendWegdeel_Berm
	OndersteunendWegdeel_Verkeerseiland
	OndersteunendWegdeel_GeslotenVerharding
	OndersteunendWegdeel_OpenVerharding
	OndersteunendWegdeel_HalfVerhard
	OndersteunendWegdeel_Onverhard
	OndersteunendWegdeel_Groenvoorziening

	OnbegroeidTerreindeel_Erf
	OnbegroeidTerreindeel_Zand
	OnbegroeidTerreindeel_GeslotenVerharding
	OnbegroeidTerreindeel_OpenVerharding
	OnbegroeidTerreindeel_HalfVerhard
	OnbegroeidTerreindeel_Onverhard

	BegroeidTerreindeel_Boomteelt
	BegroeidTerreindeel_Bouwland
	BegroeidTerreindeel_Duin
	BegroeidTerreindeel_Fruitteelt
	BegroeidTerreindeel_GemengdBos
	BegroeidTerreindeel_GraslandAgrarisch
	BegroeidTerreindeel_GraslandOverig
	BegroeidTerreindeel_Groenvoorziening
	BegroeidTerreindeel_Heide
	BegroeidTerreindeel_Houtwal
	BegroeidTerreindeel_Kwelder
	BegroeidTerreindeel_Loofbos
	BegroeidTerreindeel_Moeras
	BegroeidTerreindeel_Naaldbos
	BegroeidTerreindeel_Rietland
	BegroeidTerreindeel_Struiken

	Pand

	Vegetatieobject_Boom
	Vegetatieobject_Haag
	Vegetatieobject_WaardeOnbekend

	Scheiding_Damwand
	Scheiding_Geluidsscherm
	Scheiding_Hek
	Scheiding_Kademuur
	Scheiding_Muur
	Scheiding_Walbescherming

	// numAttributes is not itself a tag; it marks the count for bounds
	// checking and must stay last in this block.
	numAttributes
)

// MaxAttributes is the largest number of distinct tags a Mask can hold.
const MaxAttributes = 64

func init() {
	if numAttributes > MaxAttributes {
		panic(ErrTooManyAttributes)
	}
}

// Mask is a bitset over TileAttribute: bit i set means the i-th tag is
// present. Zero value is the empty set.
type Mask uint64

// Has reports whether a is present in m. O(1).
func (m Mask) Has(a TileAttribute) bool {
	return m&(1<<uint(a)) != 0
}

// Set returns m with a added.
func (m Mask) Set(a TileAttribute) Mask {
	return m | (1 << uint(a))
}

// Clear returns m with a removed.
func (m Mask) Clear(a TileAttribute) Mask {
	return m &^ (1 << uint(a))
}

// MaskOf builds a Mask from a list of tags.
func MaskOf(tags ...TileAttribute) Mask {
	var m Mask
	for _, a := range tags {
		m = m.Set(a)
	}

	return m
}

// Weights maps each tag to its additive contribution to a cell's
// effective weight (§4.2). Tags absent from the map contribute 0.
type Weights map[TileAttribute]float64

// Sum returns the total additive contribution of every tag set in m
// according to w. Tags in m that have no entry in w contribute 0.
// Iterates over w rather than the full attribute range so the cost is
// proportional to the (typically small) configured weight table, not
// to the size of the closed enumeration.
func (w Weights) Sum(m Mask) float64 {
	var total float64
	for a, weight := range w {
		if m.Has(a) {
			total += weight
		}
	}

	return total
}

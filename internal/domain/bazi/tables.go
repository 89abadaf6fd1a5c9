// Package bazi maps calendar moments to the 60-term sexagenary cycle: four
// pillars (year, month, day, hour), each a heavenly-stem / earthly-branch
// pair with element, polarity and animal metadata. The stem and branch
// tables are immutable module data; all cycle arithmetic goes through a
// single 0..59 index so the stem-parity invariant can never be violated.
package bazi

// Element is one of the five phases.
type Element string

const (
	Wood  Element = "Wood"
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Metal Element = "Metal"
	Water Element = "Water"
)

// Polarity is the yin/yang quality of a stem or branch.
type Polarity string

const (
	Yang Polarity = "Yang"
	Yin  Polarity = "Yin"
)

// Stem is one of the ten heavenly stems.
type Stem struct {
	Name     string   `json:"name"`
	Element  Element  `json:"element"`
	Polarity Polarity `json:"polarity"`
}

// Branch is one of the twelve earthly branches.
type Branch struct {
	Name     string   `json:"name"`
	Element  Element  `json:"element"`
	Polarity Polarity `json:"polarity"`
	Animal   string   `json:"animal"`
}

// Stems in traditional order, Jia first.
var Stems = [10]Stem{
	{Name: "Jia", Element: Wood, Polarity: Yang},
	{Name: "Yi", Element: Wood, Polarity: Yin},
	{Name: "Bing", Element: Fire, Polarity: Yang},
	{Name: "Ding", Element: Fire, Polarity: Yin},
	{Name: "Wu", Element: Earth, Polarity: Yang},
	{Name: "Ji", Element: Earth, Polarity: Yin},
	{Name: "Geng", Element: Metal, Polarity: Yang},
	{Name: "Xin", Element: Metal, Polarity: Yin},
	{Name: "Ren", Element: Water, Polarity: Yang},
	{Name: "Gui", Element: Water, Polarity: Yin},
}

// Branches in traditional order, Zi first.
var Branches = [12]Branch{
	{Name: "Zi", Element: Water, Polarity: Yang, Animal: "Rat"},
	{Name: "Chou", Element: Earth, Polarity: Yin, Animal: "Ox"},
	{Name: "Yin", Element: Wood, Polarity: Yang, Animal: "Tiger"},
	{Name: "Mao", Element: Wood, Polarity: Yin, Animal: "Rabbit"},
	{Name: "Chen", Element: Earth, Polarity: Yang, Animal: "Dragon"},
	{Name: "Si", Element: Fire, Polarity: Yin, Animal: "Snake"},
	{Name: "Wu", Element: Fire, Polarity: Yang, Animal: "Horse"},
	{Name: "Wei", Element: Earth, Polarity: Yin, Animal: "Goat"},
	{Name: "Shen", Element: Metal, Polarity: Yang, Animal: "Monkey"},
	{Name: "You", Element: Metal, Polarity: Yin, Animal: "Rooster"},
	{Name: "Xu", Element: Earth, Polarity: Yang, Animal: "Dog"},
	{Name: "Hai", Element: Water, Polarity: Yin, Animal: "Pig"},
}

// CycleLength is lcm(10, 12): the full sexagenary period.
const CycleLength = 60

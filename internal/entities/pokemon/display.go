package pokemon

// ColorToken names a visual style independent of any styling system
type ColorToken string

// DefaultColor is used for any type or stat outside the known tables
const DefaultColor ColorToken = "bg-gray-400"

var typeColors = map[string]ColorToken{
	"normal":   "bg-gray-400",
	"fire":     "bg-orange-500",
	"water":    "bg-blue-500",
	"electric": "bg-yellow-400",
	"grass":    "bg-green-500",
	"ice":      "bg-cyan-300",
	"fighting": "bg-red-700",
	"poison":   "bg-purple-500",
	"ground":   "bg-amber-700",
	"flying":   "bg-indigo-400",
	"psychic":  "bg-pink-500",
	"bug":      "bg-lime-500",
	"rock":     "bg-stone-500",
	"ghost":    "bg-indigo-700",
	"dragon":   "bg-violet-600",
	"dark":     "bg-gray-800",
	"steel":    "bg-slate-500",
	"fairy":    "bg-pink-300",
}

var statColors = map[string]ColorToken{
	"hp":              "bg-green-500",
	"attack":          "bg-red-500",
	"defense":         "bg-blue-500",
	"special-attack":  "bg-red-400",
	"special-defense": "bg-blue-400",
	"speed":           "bg-yellow-500",
}

var statLabels = map[string]string{
	"hp":              "PS",
	"attack":          "Ataque",
	"defense":         "Defensa",
	"special-attack":  "Ataque Esp.",
	"special-defense": "Defensa Esp.",
	"speed":           "Velocidad",
}

// ColorForType maps a type name to its color, DefaultColor when unknown
func ColorForType(typeName string) ColorToken {
	if c, ok := typeColors[typeName]; ok {
		return c
	}
	return DefaultColor
}

// ColorForStat maps a stat id to its color, DefaultColor when unknown
func ColorForStat(statName string) ColorToken {
	if c, ok := statColors[statName]; ok {
		return c
	}
	return DefaultColor
}

// LabelForStat maps a stat id to its label, echoing unknown ids unchanged
func LabelForStat(statName string) string {
	if l, ok := statLabels[statName]; ok {
		return l
	}
	return statName
}

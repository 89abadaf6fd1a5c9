package dosha

// remedyCatalog maps pattern name to its categorized remedy set. The tables
// are read-only module data; remediesFor copies before returning so callers
// can never mutate the catalog.
var remedyCatalog = map[string]Remedies{
	NameKalaSarpa: {
		"ritual":    {"Kala Sarpa shanti puja at Trimbakeshwar", "Naga puja on Nag Panchami"},
		"gemstone":  {"Gomed (hessonite) after gem consultation"},
		"mantra":    {"Om Namah Shivaya, 108 repetitions daily", "Maha Mrityunjaya mantra on Saturdays"},
		"lifestyle": {"Feed birds and stray animals regularly", "Keep a peacock feather at home"},
	},
	NamePitra: {
		"ritual":    {"Pitra tarpan during Pitru Paksha", "Shraddha ceremony on new-moon days"},
		"gemstone":  {"Ruby for the Sun after gem consultation"},
		"mantra":    {"Gayatri mantra at sunrise", "Pitra Gayatri mantra, 11 repetitions"},
		"lifestyle": {"Serve food to elders and the needy", "Offer water to the Sun each morning"},
	},
	NameGajaKesari: {
		"ritual":    {"Guru puja on Thursdays to strengthen the yoga"},
		"gemstone":  {"Yellow sapphire to amplify Jupiter"},
		"mantra":    {"Om Graam Greem Graum Sah Gurave Namah"},
		"lifestyle": {"Teach or mentor to express the yoga's gifts"},
	},
	NameGrahan: {
		"ritual":    {"Grahan shanti puja during an eclipse window", "Chandra puja on Mondays"},
		"gemstone":  {"Pearl for the Moon after gem consultation"},
		"mantra":    {"Om Som Somaya Namah for the Moon", "Rahu beej mantra on Saturdays"},
		"lifestyle": {"Avoid major decisions during eclipse windows", "Donate white foods on Mondays"},
	},
	NameManglik: {
		"ritual":    {"Mangal shanti puja on Tuesdays", "Kumbh vivah before marriage where customary"},
		"gemstone":  {"Red coral for Mars after gem consultation"},
		"mantra":    {"Om Kraam Kreem Kraum Sah Bhaumaya Namah", "Hanuman Chalisa on Tuesdays"},
		"lifestyle": {"Fast on Tuesdays", "Donate red lentils and jaggery"},
	},
}

// escalations are the additional entries a pattern gains at high intensity.
var escalations = map[string]string{
	NameKalaSarpa:  "Consult a qualified astrologer for a full Kala Sarpa nivaran vidhi",
	NamePitra:      "Perform Narayan Nagbali at Trimbakeshwar under priestly guidance",
	NameGajaKesari: "Commission a full Guru strength ceremony to consolidate the yoga",
	NameGrahan:     "Arrange a dedicated graha shanti spanning both nodes",
	NameManglik:    "Seek a full Mangal dosha nivaran ceremony before major commitments",
}

// escalationIntensity is the score at which a remedy set gains its
// escalation entry.
const escalationIntensity = 8.0

// remediesFor returns a defensive copy of the catalog entry for the pattern,
// appending the escalation entry when intensity warrants it.
func remediesFor(name string, intensity float64) Remedies {
	base, ok := remedyCatalog[name]
	if !ok {
		return Remedies{}
	}
	out := make(Remedies, len(base)+1)
	for category, entries := range base {
		out[category] = append([]string(nil), entries...)
	}
	if intensity >= escalationIntensity {
		if entry, ok := escalations[name]; ok {
			out["escalation"] = []string{entry}
		}
	}
	return out
}

// Package catalogdata holds the built-in reference catalog: a fixed
// literal table of Hindustani raagas with their arohana and avarohana
// swara sequences. The engine treats this table as read-only input.
//
// Notation convention: uppercase initials are shuddha swaras, lowercase
// initials komal, and a trailing apostrophe marks teevra Ma. Sa and Pa
// are achal (unchangeable) and always spelled capitalized.
package catalogdata

import "github.com/raagdna/raagdna/pkg/models"

var ragas = []models.Raga{
	{
		Name:         "Yaman",
		Arohana:      "Sa Re Ga Ma' Pa Dha Ni Sa",
		Avarohana:    "Sa Ni Dha Pa Ma' Ga Re Sa",
		Description:  "An evening raga of the Kalyan thaat, serene and devotional, often the first raga taught to students.",
		SwaraSummary: "Teevra Ma, all other swaras Shuddha",
	},
	{
		Name:         "Bilawal",
		Arohana:      "Sa Re Ga Ma Pa Dha Ni Sa",
		Avarohana:    "Sa Ni Dha Pa Ma Ga Re Sa",
		Description:  "The natural scale of Hindustani music, sung in the late morning with a bright, open character.",
		SwaraSummary: "All swaras Shuddha",
	},
	{
		Name:         "Bhairav",
		Arohana:      "Sa re Ga Ma Pa dha Ni Sa",
		Avarohana:    "Sa Ni dha Pa Ma Ga re Sa",
		Description:  "A solemn early-morning raga with an austere, meditative mood.",
		SwaraSummary: "Komal Re and Dha, rest Shuddha",
	},
	{
		Name:         "Kafi",
		Arohana:      "Sa Re ga Ma Pa Dha ni Sa",
		Avarohana:    "Sa ni Dha Pa Ma ga Re Sa",
		Description:  "A late-evening raga with a sweet, romantic character, common in thumri and light-classical forms.",
		SwaraSummary: "Komal Ga and Ni, rest Shuddha",
	},
	{
		Name:         "Bhairavi",
		Arohana:      "Sa re ga Ma Pa dha ni Sa",
		Avarohana:    "Sa ni dha Pa Ma ga re Sa",
		Description:  "The traditional concluding raga of a concert, deeply emotive, with all four movable swaras komal.",
		SwaraSummary: "Komal Re, Ga, Dha and Ni",
	},
	{
		Name:         "Asavari",
		Arohana:      "Sa Re Ma Pa dha Sa",
		Avarohana:    "Sa ni dha Pa Ma ga Re Sa",
		Description:  "A late-morning raga of quiet renunciation; Ga and Ni are omitted in ascent.",
		SwaraSummary: "Komal Ga, Dha and Ni; Ga and Ni skipped ascending",
	},
	{
		Name:         "Todi",
		Arohana:      "Sa re ga Ma' Pa dha Ni Sa",
		Avarohana:    "Sa Ni dha Pa Ma' ga re Sa",
		Description:  "A profound late-morning raga combining komal swaras with teevra Ma, plaintive and intense.",
		SwaraSummary: "Komal Re, Ga and Dha with Teevra Ma",
	},
	{
		Name:         "Purvi",
		Arohana:      "Sa re Ga Ma' Pa dha Ni Sa",
		Avarohana:    "Sa Ni dha Pa Ma' Ga re Sa",
		Description:  "A sunset raga with a grave, mystical atmosphere.",
		SwaraSummary: "Komal Re and Dha with Teevra Ma",
	},
	{
		Name:         "Marwa",
		Arohana:      "Sa re Ga Ma' Dha Ni Sa",
		Avarohana:    "Sa Ni Dha Ma' Ga re Sa",
		Description:  "A sunset raga of restless anticipation; Pa is omitted entirely.",
		SwaraSummary: "Komal Re with Teevra Ma, Pa omitted",
	},
	{
		Name:         "Khamaj",
		Arohana:      "Sa Ga Ma Pa Dha Ni Sa",
		Avarohana:    "Sa ni Dha Pa Ma Ga Re Sa",
		Description:  "A light, lyrical evening raga favored in thumri; Re is skipped in ascent.",
		SwaraSummary: "Komal Ni descending, rest Shuddha; Re skipped ascending",
	},
}

// Ragas returns a fresh copy of the built-in catalog so callers can
// never mutate the seed table.
func Ragas() []models.Raga {
	out := make([]models.Raga, len(ragas))
	copy(out, ragas)
	return out
}

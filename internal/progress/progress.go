// Package progress berechnet aus Lehrplan und Übungseinträgen die
// abgeleiteten Fortschritts- und Zirkularitätsansichten. Alle Funktionen
// sind rein: keine Seiteneffekte, kein I/O, deterministische Reihenfolge
// gemäss Katalog.
package progress

import (
	"math"
	"sort"
	"time"

	"github.com/antrhizom/stud-i-agency-check/internal/curriculum"
)

// Eintragstypen. Bipla-Einträge sind Themen-Übungen mit Pflichtlisten-
// Schnappschuss, eba-Einträge referenzieren genau einen Knoten.
const (
	TypePractice        = "praxis"
	TypeKompetenz       = "kompetenz"
	TypeSchluesselskill = "schluesselkompetenz"
	TypeTransversal     = "transversal"
)

// Entry flacher Übungseintrag, entkoppelt von der Persistenzschicht
type Entry struct {
	ID      string
	Variant curriculum.Variant
	Type    string
	ThemeID string

	// Schnappschuss der Pflichtlisten zum Eintragszeitpunkt (bipla).
	// Schlüsselkompetenzen als zusammengesetzte Referenz "3.2.2-R1".
	MandatoryLanguageModes  []string
	MandatorySociety        []string
	MandatoryKeySkills      []string
	AdditionalLanguageModes []string
	AdditionalKeySkills     []string

	// Einzelknoten-Referenzen (eba)
	CompetencyID          string
	KeySkillID            string
	TransversalID         string
	OptionalLanguageModes []string

	HowMethod string
	HowCount  int
	Status    string
	Context   string
	Note      string

	CreatedAt *time.Time
}

// SkillProgressView Fortschritt einer Schlüsselkompetenz über alle Themen
type SkillProgressView struct {
	SkillID     string
	Total       int
	Completed   int
	Percent     int
	Occurrences []curriculum.Occurrence
}

// CategoryCompletion erledigte gegenüber geforderten Pflichtknoten
type CategoryCompletion struct {
	Done  int
	Total int
}

// ThemeCompletion Pflicht-Abdeckung eines Themas pro Kategorie
type ThemeCompletion struct {
	ThemeID      string
	Society      CategoryCompletion
	LanguageMode CategoryCompletion
	KeySkill     CategoryCompletion
}

// GridCell ein Themen-Vorkommen in einer Zirkularitätszeile
type GridCell struct {
	ThemeID string
	Round   curriculum.Round
	Count   int
}

// GridRow Zirkularitätszeile eines Knotens
type GridRow struct {
	NodeID string
	Cells  []GridCell
}

// Grid vollständiges Zirkularitätsraster pro Knotenkategorie
type Grid struct {
	Society       []GridRow
	LanguageModes []GridRow
	KeySkills     []GridRow
}

// RewardThreshold ab so vielen freiwilligen Übungen gibt es Groot
const RewardThreshold = 3

// skillRef zusammengesetzte Referenz für rundenqualifiziertes Matching
func skillRef(skillID string, round curriculum.Round) string {
	return skillID + "-" + string(round)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// occurrenceMatches entscheidet, ob ein Eintrag ein Vorkommen erfüllt.
// Bipla matcht rundenqualifiziert über die zusammengesetzte Referenz,
// eba nur über Thema und Kompetenz-ID (die Runde bleibt unberücksichtigt).
func occurrenceMatches(variant curriculum.Variant, e Entry, skillID string, occ curriculum.Occurrence) bool {
	if e.ThemeID != occ.ThemeID {
		return false
	}
	switch variant {
	case curriculum.VariantBipla:
		return contains(e.MandatoryKeySkills, skillRef(skillID, occ.Round))
	case curriculum.VariantEBA:
		return e.KeySkillID == skillID
	}
	return false
}

// OccurrenceCompleted meldet, ob mindestens ein Eintrag das Vorkommen erfüllt
func OccurrenceCompleted(cat *curriculum.Catalog, skillID string, occ curriculum.Occurrence, entries []Entry) bool {
	for _, e := range entries {
		if occurrenceMatches(cat.Variant, e, skillID, occ) {
			return true
		}
	}
	return false
}

// SkillProgress berechnet den Fortschritt einer Schlüsselkompetenz.
// Unbekannte IDs liefern ein leeres Ergebnis mit Total 0.
func SkillProgress(cat *curriculum.Catalog, skillID string, entries []Entry) SkillProgressView {
	occurrences := cat.Occurrences(skillID)
	completed := 0
	for _, occ := range occurrences {
		if OccurrenceCompleted(cat, skillID, occ, entries) {
			completed++
		}
	}

	percent := 0
	if len(occurrences) > 0 {
		percent = int(math.Round(100 * float64(completed) / float64(len(occurrences))))
	}

	return SkillProgressView{
		SkillID:     skillID,
		Total:       len(occurrences),
		Completed:   completed,
		Percent:     percent,
		Occurrences: occurrences,
	}
}

// AllSkillProgress berechnet den Fortschritt aller Schlüsselkompetenzen
// in Katalogreihenfolge
func AllSkillProgress(cat *curriculum.Catalog, entries []Entry) []SkillProgressView {
	out := make([]SkillProgressView, 0, len(cat.KeySkills))
	for _, sk := range cat.KeySkills {
		out = append(out, SkillProgress(cat, sk.ID, entries))
	}
	return out
}

// ThemeEntryCounts zählt Einträge pro Thema. Jedes Katalogthema erhält
// einen Schlüssel, auch mit Zählerstand null. Einträge mit unbekannter
// Themen-ID werden stillschweigend ausgelassen.
func ThemeEntryCounts(cat *curriculum.Catalog, entries []Entry) map[string]int {
	counts := make(map[string]int, len(cat.Themes))
	for _, t := range cat.Themes {
		counts[t.ID] = 0
	}
	for _, e := range entries {
		if _, ok := counts[e.ThemeID]; ok {
			counts[e.ThemeID]++
		}
	}
	return counts
}

// VoluntaryCount zählt freiwillige Übungen. Bipla summiert die zusätzlich
// gewählten Sprachmodi und Schlüsselkompetenzen pro Eintrag; eba zählt
// transversale Einträge und freiwillig gewählte Sprachmodi.
func VoluntaryCount(cat *curriculum.Catalog, entries []Entry) int {
	n := 0
	switch cat.Variant {
	case curriculum.VariantBipla:
		for _, e := range entries {
			n += len(e.AdditionalLanguageModes) + len(e.AdditionalKeySkills)
		}
	case curriculum.VariantEBA:
		for _, e := range entries {
			if e.Type == TypeTransversal {
				n++
			}
			n += len(e.OptionalLanguageModes)
		}
	}
	return n
}

// RewardEligible prüft die Groot-Schwelle
func RewardEligible(voluntaryCount int) bool {
	return voluntaryCount >= RewardThreshold
}

// entryCoversNode prüft, ob ein Eintrag einen Pflichtknoten eines Themas
// abdeckt. Der Eintrag muss zum Thema gehören.
func entryCoversNode(variant curriculum.Variant, e Entry, kind curriculum.NodeKind, ref curriculum.NodeRef) bool {
	switch variant {
	case curriculum.VariantBipla:
		switch kind {
		case curriculum.KindLanguageMode:
			return contains(e.MandatoryLanguageModes, ref.ID)
		case curriculum.KindSocietyTopic:
			return contains(e.MandatorySociety, ref.ID)
		case curriculum.KindKeySkill:
			return contains(e.MandatoryKeySkills, skillRef(ref.ID, ref.Round))
		}
	case curriculum.VariantEBA:
		switch kind {
		case curriculum.KindLanguageMode:
			return e.Type == TypeKompetenz || contains(e.OptionalLanguageModes, ref.ID)
		case curriculum.KindSocietyTopic:
			return e.Type == TypeKompetenz
		case curriculum.KindKeySkill:
			return e.KeySkillID == ref.ID
		}
	}
	return false
}

// ThemeCompletionSummary prüft pro Kategorie, wie viele Pflichtknoten des
// Themas durch mindestens einen Eintrag abgedeckt sind
func ThemeCompletionSummary(cat *curriculum.Catalog, themeID string, entries []Entry) ThemeCompletion {
	summary := ThemeCompletion{ThemeID: themeID}
	if _, ok := cat.Theme(themeID); !ok {
		return summary
	}

	var themeEntries []Entry
	for _, e := range entries {
		if e.ThemeID == themeID {
			themeEntries = append(themeEntries, e)
		}
	}

	complete := func(kind curriculum.NodeKind) CategoryCompletion {
		refs := cat.MandatoryNodes(themeID, kind)
		c := CategoryCompletion{Total: len(refs)}
		for _, ref := range refs {
			for _, e := range themeEntries {
				if entryCoversNode(cat.Variant, e, kind, ref) {
					c.Done++
					break
				}
			}
		}
		return c
	}

	summary.Society = complete(curriculum.KindSocietyTopic)
	summary.LanguageMode = complete(curriculum.KindLanguageMode)
	summary.KeySkill = complete(curriculum.KindKeySkill)
	return summary
}

// gridCellCount zählt Einträge eines Themas, die einen Zirkularitätsknoten
// berühren
func gridCellCount(variant curriculum.Variant, entries []Entry, themeID string, kind curriculum.NodeKind, nodeID string) int {
	n := 0
	for _, e := range entries {
		if e.ThemeID != themeID {
			continue
		}
		switch variant {
		case curriculum.VariantBipla:
			// Bipla führt nur Schlüsselkompetenzen in der Zirkularitätskarte
			if kind == curriculum.KindKeySkill && hasSkillAnyRound(e.MandatoryKeySkills, nodeID) {
				n++
			}
		case curriculum.VariantEBA:
			switch kind {
			case curriculum.KindSocietyTopic:
				if e.Type == TypeKompetenz {
					n++
				}
			case curriculum.KindLanguageMode:
				if e.Type == TypeKompetenz || contains(e.OptionalLanguageModes, nodeID) {
					n++
				}
			case curriculum.KindKeySkill:
				if e.KeySkillID == nodeID {
					n++
				}
			}
		}
	}
	return n
}

func hasSkillAnyRound(refs []string, skillID string) bool {
	for _, r := range refs {
		if r == skillRef(skillID, curriculum.Round1) ||
			r == skillRef(skillID, curriculum.Round2) ||
			r == skillRef(skillID, curriculum.Round3) {
			return true
		}
	}
	return false
}

// CircularityGrid baut das Zirkularitätsraster: pro Knoten eine Zeile mit
// allen Themen, deren Zirkularitätskarte ihn referenziert, in
// Themenreihenfolge.
func CircularityGrid(cat *curriculum.Catalog, entries []Entry) Grid {
	var grid Grid

	row := func(nodeID string, kind curriculum.NodeKind, pick func(curriculum.CircularityMap) map[string]curriculum.Round) (GridRow, bool) {
		r := GridRow{NodeID: nodeID}
		for _, t := range cat.Themes {
			if round, ok := pick(t.Circularity)[nodeID]; ok {
				r.Cells = append(r.Cells, GridCell{
					ThemeID: t.ID,
					Round:   round,
					Count:   gridCellCount(cat.Variant, entries, t.ID, kind, nodeID),
				})
			}
		}
		return r, len(r.Cells) > 0
	}

	for _, s := range cat.SocietyTopics {
		if r, ok := row(s.ID, curriculum.KindSocietyTopic, func(m curriculum.CircularityMap) map[string]curriculum.Round { return m.Society }); ok {
			grid.Society = append(grid.Society, r)
		}
	}
	for _, m := range cat.LanguageModes {
		if r, ok := row(m.ID, curriculum.KindLanguageMode, func(cm curriculum.CircularityMap) map[string]curriculum.Round { return cm.LanguageModes }); ok {
			grid.LanguageModes = append(grid.LanguageModes, r)
		}
	}
	for _, s := range cat.KeySkills {
		if r, ok := row(s.ID, curriculum.KindKeySkill, func(m curriculum.CircularityMap) map[string]curriculum.Round { return m.KeySkills }); ok {
			grid.KeySkills = append(grid.KeySkills, r)
		}
	}

	return grid
}

// SortChronological sortiert Einträge absteigend nach Erstellzeit.
// Einträge ohne Zeitstempel landen am Ende; die Sortierung ist stabil.
func SortChronological(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}

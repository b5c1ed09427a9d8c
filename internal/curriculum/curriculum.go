// Package curriculum hält die statischen Lehrplandaten (ABU Kanton Zürich)
// für beide Varianten: bipla (themenbasiert) und eba (2-jährige Grundbildung).
// Die Daten werden einmal beim Start geladen und sind danach unveränderlich.
package curriculum

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Variant kennzeichnet die Lehrplan-Variante
type Variant string

const (
	VariantBipla Variant = "bipla"
	VariantEBA   Variant = "eba"
)

// Valid prüft ob die Variante bekannt ist
func (v Variant) Valid() bool {
	return v == VariantBipla || v == VariantEBA
}

// NodeKind Kategorie eines Lehrplan-Knotens
type NodeKind string

const (
	KindLanguageMode NodeKind = "languageMode"
	KindSocietyTopic NodeKind = "societyTopic"
	KindKeySkill     NodeKind = "keySkill"
)

// Round Zirkularitäts-Runde (R1 Ersterwerb, R2/R3 Vertiefung)
type Round string

const (
	Round1 Round = "R1"
	Round2 Round = "R2"
	Round3 Round = "R3"
)

// ── Knotentypen ──

// LanguageMode Sprachmodus gemäss BiPla (9 Stück)
type LanguageMode struct {
	ID          string
	Code        string
	Label       string
	Short       string
	Description string
}

// KeySkill Schlüsselkompetenz gemäss BiPla (12 Stück)
type KeySkill struct {
	ID    string
	Code  string
	Label string
	Short string
}

// SocietyTopic Gesellschaftsinhalt
type SocietyTopic struct {
	ID          string
	Label       string
	Description string
}

// TransversalTopic transversales Thema (nur eba)
type TransversalTopic struct {
	ID    string
	Label string
}

// SkillRef referenziert eine Schlüsselkompetenz mit ihrer Runde im Thema
type SkillRef struct {
	ID    string
	Round Round
}

// NodeRef generische Knotenreferenz; Round nur bei Schlüsselkompetenzen gesetzt
type NodeRef struct {
	ID    string
	Round Round
}

// Occurrence Vorkommen einer Schlüsselkompetenz in einem Thema
type Occurrence struct {
	ThemeID    string
	ThemeTitle string
	Round      Round
}

// SocietyContentItem konkreter Gesellschaftsinhalt einer Kompetenz (eba)
type SocietyContentItem struct {
	TopicID string
	Content string
}

// LanguageModeItem Pflicht-Sprachmodus einer Kompetenz mit Inhalt (eba)
type LanguageModeItem struct {
	ModeID  string
	Content string
}

// Competency einzelne Kompetenz innerhalb eines Lebensbezugs (eba)
type Competency struct {
	ID             string
	Text           string
	Society        []SocietyContentItem
	MandatoryModes []LanguageModeItem
	OptionalModes  []string
}

// LifeContext Lebensbezug mit seinen Kompetenzen (eba)
type LifeContext struct {
	ID           string
	Title        string
	Competencies []Competency
}

// CircularityMap ordnet Knoten innerhalb eines Themas ihrer Runde zu
type CircularityMap struct {
	Society       map[string]Round
	LanguageModes map[string]Round
	KeySkills     map[string]Round
}

// Theme Lehrplan-Thema. Bipla-Themen tragen die flachen Pflichtlisten,
// eba-Themen zusätzlich Lebensbezüge und die volle Zirkularitätskarte.
type Theme struct {
	ID       string
	Order    int
	Year     int
	Title    string
	Subtitle string
	Lessons  int

	MandatoryLanguageModes []string
	MandatorySociety       []string
	MandatoryKeySkills     []SkillRef

	LifeContexts []LifeContext
	Circularity  CircularityMap
}

// ── Katalog ──

// Catalog gebündelter, unveränderlicher Lehrplan einer Variante
type Catalog struct {
	Variant           Variant
	Themes            []Theme
	LanguageModes     []LanguageMode
	KeySkills         []KeySkill
	SocietyTopics     []SocietyTopic
	TransversalTopics []TransversalTopic

	themeByID map[string]int
	modeByID  map[string]int
	skillByID map[string]int
	topicByID map[string]int
}

func newCatalog(v Variant, themes []Theme, modes []LanguageMode, skills []KeySkill, topics []SocietyTopic, transversal []TransversalTopic) *Catalog {
	c := &Catalog{
		Variant:           v,
		Themes:            themes,
		LanguageModes:     modes,
		KeySkills:         skills,
		SocietyTopics:     topics,
		TransversalTopics: transversal,
		themeByID:         make(map[string]int, len(themes)),
		modeByID:          make(map[string]int, len(modes)),
		skillByID:         make(map[string]int, len(skills)),
		topicByID:         make(map[string]int, len(topics)),
	}
	for i, t := range themes {
		c.themeByID[t.ID] = i
	}
	for i, m := range modes {
		c.modeByID[m.ID] = i
	}
	for i, s := range skills {
		c.skillByID[s.ID] = i
	}
	for i, s := range topics {
		c.topicByID[s.ID] = i
	}
	return c
}

// ByVariant liefert den Katalog der gewünschten Variante
func ByVariant(v Variant) (*Catalog, bool) {
	switch v {
	case VariantBipla:
		return Bipla(), true
	case VariantEBA:
		return EBA(), true
	}
	return nil, false
}

// Theme sucht ein Thema per ID
func (c *Catalog) Theme(id string) (Theme, bool) {
	i, ok := c.themeByID[id]
	if !ok {
		return Theme{}, false
	}
	return c.Themes[i], true
}

// LanguageMode sucht einen Sprachmodus per ID
func (c *Catalog) LanguageMode(id string) (LanguageMode, bool) {
	i, ok := c.modeByID[id]
	if !ok {
		return LanguageMode{}, false
	}
	return c.LanguageModes[i], true
}

// KeySkill sucht eine Schlüsselkompetenz per ID
func (c *Catalog) KeySkill(id string) (KeySkill, bool) {
	i, ok := c.skillByID[id]
	if !ok {
		return KeySkill{}, false
	}
	return c.KeySkills[i], true
}

// SocietyTopic sucht einen Gesellschaftsinhalt per ID
func (c *Catalog) SocietyTopic(id string) (SocietyTopic, bool) {
	i, ok := c.topicByID[id]
	if !ok {
		return SocietyTopic{}, false
	}
	return c.SocietyTopics[i], true
}

// Competency sucht eine Kompetenz über alle Themen und Lebensbezüge (eba)
func (c *Catalog) Competency(id string) (Competency, bool) {
	for _, t := range c.Themes {
		for _, lb := range t.LifeContexts {
			for _, k := range lb.Competencies {
				if k.ID == id {
					return k, true
				}
			}
		}
	}
	return Competency{}, false
}

// TransversalTopic sucht ein transversales Thema per ID
func (c *Catalog) TransversalTopic(id string) (TransversalTopic, bool) {
	for _, tt := range c.TransversalTopics {
		if tt.ID == id {
			return tt, true
		}
	}
	return TransversalTopic{}, false
}

// ThemesByYear liefert die Themen eines Lehrjahres, aufsteigend nach Order.
// Die Sortierung ist stabil und unabhängig von Eingabedaten.
func (c *Catalog) ThemesByYear(year int) []Theme {
	var out []Theme
	for _, t := range c.Themes {
		if t.Year == year {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// MandatoryNodes liefert die Pflichtknoten eines Themas für eine Kategorie.
// Unbekannte Themen-IDs ergeben ein leeres Ergebnis.
func (c *Catalog) MandatoryNodes(themeID string, kind NodeKind) []NodeRef {
	t, ok := c.Theme(themeID)
	if !ok {
		return nil
	}
	switch kind {
	case KindLanguageMode:
		out := make([]NodeRef, 0, len(t.MandatoryLanguageModes))
		for _, id := range t.MandatoryLanguageModes {
			out = append(out, NodeRef{ID: id})
		}
		return out
	case KindSocietyTopic:
		out := make([]NodeRef, 0, len(t.MandatorySociety))
		for _, id := range t.MandatorySociety {
			out = append(out, NodeRef{ID: id})
		}
		return out
	case KindKeySkill:
		out := make([]NodeRef, 0, len(t.MandatoryKeySkills))
		for _, ref := range t.MandatoryKeySkills {
			out = append(out, NodeRef{ID: ref.ID, Round: ref.Round})
		}
		return out
	}
	return nil
}

// OptionalNodes liefert die freiwilligen Knoten eines Themas: Gesamtkatalog
// minus Pflichtmenge. Die Differenz wird immer frisch berechnet, nie gecacht.
func (c *Catalog) OptionalNodes(themeID string, kind NodeKind) []NodeRef {
	if _, ok := c.Theme(themeID); !ok {
		return nil
	}
	mandatory := make(map[string]struct{})
	for _, ref := range c.MandatoryNodes(themeID, kind) {
		mandatory[ref.ID] = struct{}{}
	}

	var out []NodeRef
	switch kind {
	case KindLanguageMode:
		for _, m := range c.LanguageModes {
			if _, ok := mandatory[m.ID]; !ok {
				out = append(out, NodeRef{ID: m.ID})
			}
		}
	case KindSocietyTopic:
		for _, s := range c.SocietyTopics {
			if _, ok := mandatory[s.ID]; !ok {
				out = append(out, NodeRef{ID: s.ID})
			}
		}
	case KindKeySkill:
		for _, s := range c.KeySkills {
			if _, ok := mandatory[s.ID]; !ok {
				out = append(out, NodeRef{ID: s.ID})
			}
		}
	}
	return out
}

// Occurrences liefert alle Themen, deren Zirkularitätskarte die
// Schlüsselkompetenz referenziert, in Themen-Reihenfolge
func (c *Catalog) Occurrences(skillID string) []Occurrence {
	var out []Occurrence
	for _, t := range c.Themes {
		if round, ok := t.Circularity.KeySkills[skillID]; ok {
			out = append(out, Occurrence{ThemeID: t.ID, ThemeTitle: t.Title, Round: round})
		}
	}
	return out
}

// Validate prüft die Referenzintegrität des Katalogs beim Laden.
// Jede nicht auflösbare Referenz wird als Warnung geloggt und gesammelt;
// der Katalog bleibt benutzbar.
func (c *Catalog) Validate(log *zap.Logger) []string {
	var warnings []string
	warn := func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		warnings = append(warnings, msg)
		log.Warn("lehrplan-integritätsfehler",
			zap.String("variant", string(c.Variant)),
			zap.String("detail", msg))
	}

	for _, t := range c.Themes {
		for _, id := range t.MandatoryLanguageModes {
			if _, ok := c.modeByID[id]; !ok {
				warn("thema %s: unbekannter sprachmodus %s", t.ID, id)
			}
		}
		for _, id := range t.MandatorySociety {
			if _, ok := c.topicByID[id]; !ok {
				warn("thema %s: unbekannter gesellschaftsinhalt %s", t.ID, id)
			}
		}
		for _, ref := range t.MandatoryKeySkills {
			if _, ok := c.skillByID[ref.ID]; !ok {
				warn("thema %s: unbekannte schlüsselkompetenz %s", t.ID, ref.ID)
			}
		}
		for id := range t.Circularity.Society {
			if _, ok := c.topicByID[id]; !ok {
				warn("thema %s: zirkularität referenziert unbekannten gesellschaftsinhalt %s", t.ID, id)
			}
		}
		for id := range t.Circularity.LanguageModes {
			if _, ok := c.modeByID[id]; !ok {
				warn("thema %s: zirkularität referenziert unbekannten sprachmodus %s", t.ID, id)
			}
		}
		for id := range t.Circularity.KeySkills {
			if _, ok := c.skillByID[id]; !ok {
				warn("thema %s: zirkularität referenziert unbekannte schlüsselkompetenz %s", t.ID, id)
			}
		}
		for _, lb := range t.LifeContexts {
			for _, k := range lb.Competencies {
				for _, g := range k.Society {
					if _, ok := c.topicByID[g.TopicID]; !ok {
						warn("kompetenz %s: unbekannter gesellschaftsinhalt %s", k.ID, g.TopicID)
					}
				}
				for _, m := range k.MandatoryModes {
					if _, ok := c.modeByID[m.ModeID]; !ok {
						warn("kompetenz %s: unbekannter pflicht-sprachmodus %s", k.ID, m.ModeID)
					}
				}
				for _, id := range k.OptionalModes {
					if _, ok := c.modeByID[id]; !ok {
						warn("kompetenz %s: unbekannter optionaler sprachmodus %s", k.ID, id)
					}
				}
			}
		}
	}

	return warnings
}

package curriculum

import (
	"testing"

	"go.uber.org/zap"
)

func TestBiplaIntegrity(t *testing.T) {
	warnings := Bipla().Validate(zap.NewNop())
	if len(warnings) != 0 {
		t.Errorf("bipla-katalog hat %d integritätsfehler: %v", len(warnings), warnings)
	}
}

func TestEBAIntegrity(t *testing.T) {
	warnings := EBA().Validate(zap.NewNop())
	if len(warnings) != 0 {
		t.Errorf("eba-katalog hat %d integritätsfehler: %v", len(warnings), warnings)
	}
}

func TestByVariant(t *testing.T) {
	if c, ok := ByVariant(VariantBipla); !ok || c.Variant != VariantBipla {
		t.Error("bipla-katalog nicht gefunden")
	}
	if c, ok := ByVariant(VariantEBA); !ok || c.Variant != VariantEBA {
		t.Error("eba-katalog nicht gefunden")
	}
	if _, ok := ByVariant("unbekannt"); ok {
		t.Error("unbekannte variante darf keinen katalog liefern")
	}
}

func TestThemesByYearOrdered(t *testing.T) {
	for _, c := range []*Catalog{Bipla(), EBA()} {
		for _, year := range []int{1, 2} {
			themes := c.ThemesByYear(year)
			if len(themes) != 4 {
				t.Fatalf("%s jahr %d: %d themen, erwartet 4", c.Variant, year, len(themes))
			}
			for i := 1; i < len(themes); i++ {
				if themes[i-1].Order >= themes[i].Order {
					t.Errorf("%s jahr %d: themen nicht aufsteigend sortiert", c.Variant, year)
				}
			}
		}
	}
}

func TestThemeLookup(t *testing.T) {
	theme, ok := Bipla().Theme("t1")
	if !ok {
		t.Fatal("t1 nicht gefunden")
	}
	if theme.Title != "Berufseinstieg" {
		t.Errorf("Title = %q", theme.Title)
	}

	if _, ok := Bipla().Theme("t99"); ok {
		t.Error("t99 darf nicht existieren")
	}
}

func TestMandatoryNodes(t *testing.T) {
	refs := Bipla().MandatoryNodes("t1", KindKeySkill)
	if len(refs) != 3 {
		t.Fatalf("t1 schlüsselkompetenzen: %d, erwartet 3", len(refs))
	}
	if refs[0].ID != "3.2.2" || refs[0].Round != Round1 {
		t.Errorf("refs[0] = %+v", refs[0])
	}

	if got := Bipla().MandatoryNodes("t99", KindKeySkill); got != nil {
		t.Errorf("unbekanntes thema: %v, erwartet nil", got)
	}
}

func TestOptionalNodesSetDifference(t *testing.T) {
	c := Bipla()
	theme, _ := c.Theme("t1")

	optional := c.OptionalNodes("t1", KindLanguageMode)
	if len(optional) != len(c.LanguageModes)-len(theme.MandatoryLanguageModes) {
		t.Fatalf("optional = %d, erwartet %d",
			len(optional), len(c.LanguageModes)-len(theme.MandatoryLanguageModes))
	}
	mandatory := make(map[string]bool)
	for _, id := range theme.MandatoryLanguageModes {
		mandatory[id] = true
	}
	for _, ref := range optional {
		if mandatory[ref.ID] {
			t.Errorf("pflichtmodus %s in optionaler menge", ref.ID)
		}
	}
}

func TestOccurrences(t *testing.T) {
	// 3.2.2 kommt in t1 (R1) und t7 (R2) vor
	occ := Bipla().Occurrences("3.2.2")
	if len(occ) != 2 {
		t.Fatalf("occurrences = %d, erwartet 2", len(occ))
	}
	if occ[0].ThemeID != "t1" || occ[0].Round != Round1 {
		t.Errorf("occ[0] = %+v", occ[0])
	}
	if occ[1].ThemeID != "t7" || occ[1].Round != Round2 {
		t.Errorf("occ[1] = %+v", occ[1])
	}

	if got := Bipla().Occurrences("9.9.9"); got != nil {
		t.Errorf("unbekannte kompetenz: %v, erwartet nil", got)
	}
}

func TestEveryKeySkillRecursAcrossThemes(t *testing.T) {
	// Zirkularitätsprinzip: jede Schlüsselkompetenz in mindestens zwei Themen
	for _, c := range []*Catalog{Bipla(), EBA()} {
		for _, sk := range c.KeySkills {
			if occ := c.Occurrences(sk.ID); len(occ) < 2 {
				t.Errorf("%s: %s kommt nur in %d themen vor", c.Variant, sk.ID, len(occ))
			}
		}
	}
}

func TestEBACompetencyLookup(t *testing.T) {
	k, ok := EBA().Competency("k1-1-2")
	if !ok {
		t.Fatal("k1-1-2 nicht gefunden")
	}
	if len(k.MandatoryModes) != 1 || k.MandatoryModes[0].ModeID != "rezSchriftlich" {
		t.Errorf("MandatoryModes = %+v", k.MandatoryModes)
	}

	if _, ok := EBA().Competency("k9-9-9"); ok {
		t.Error("k9-9-9 darf nicht existieren")
	}
}

func TestVocabularies(t *testing.T) {
	if len(AnimalSymbols) != 30 {
		t.Errorf("tierpool = %d, erwartet 30", len(AnimalSymbols))
	}
	seen := make(map[string]bool)
	for _, a := range AnimalSymbols {
		if seen[a.ID] {
			t.Errorf("doppeltes tierpseudonym %s", a.ID)
		}
		seen[a.ID] = true
	}

	if !ValidHowMethod("Rollenspiel") || ValidHowMethod("Tanzen") {
		t.Error("ValidHowMethod fehlerhaft")
	}
	if !ValidStatus("geuebt") || ValidStatus("perfekt") {
		t.Error("ValidStatus fehlerhaft")
	}
	if !ValidContext("betrieb") || ValidContext("mond") {
		t.Error("ValidContext fehlerhaft")
	}
}

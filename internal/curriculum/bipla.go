package curriculum

import "sync"

var (
	biplaOnce    sync.Once
	biplaCatalog *Catalog
)

// Bipla liefert den themenbasierten Lehrplan (BiPla EBA Kanton Zürich).
// Einträge referenzieren hier ganze Themen und schneiden die Pflichtlisten mit.
func Bipla() *Catalog {
	biplaOnce.Do(func() {
		biplaCatalog = newCatalog(VariantBipla,
			biplaThemes(), biplaLanguageModes(), biplaKeySkills(), biplaSocietyTopics(), nil)
	})
	return biplaCatalog
}

func biplaLanguageModes() []LanguageMode {
	return []LanguageMode{
		{ID: "4.2.1.1", Code: "4.2.1.1", Label: "Rezeption mündlich", Short: "Rez. mündl.", Description: "Zuhören, verstehen"},
		{ID: "4.2.1.2", Code: "4.2.1.2", Label: "Rezeption audiovisuell", Short: "Rez. AV", Description: "Videos, Medien verstehen"},
		{ID: "4.2.1.3", Code: "4.2.1.3", Label: "Rezeption schriftlich/bildlich", Short: "Rez. schr.", Description: "Texte, Bilder lesen"},
		{ID: "4.2.2.1", Code: "4.2.2.1", Label: "Produktion mündlich", Short: "Prod. mündl.", Description: "Sprechen, präsentieren"},
		{ID: "4.2.2.2", Code: "4.2.2.2", Label: "Produktion schriftlich/bildlich", Short: "Prod. schr.", Description: "Schreiben, gestalten"},
		{ID: "4.2.2.3", Code: "4.2.2.3", Label: "Produktion multimedial", Short: "Prod. MM", Description: "Videos, Podcasts erstellen"},
		{ID: "4.2.3.1", Code: "4.2.3.1", Label: "Interaktion mündlich", Short: "Inter. mündl.", Description: "Gespräche, Diskussionen"},
		{ID: "4.2.3.2", Code: "4.2.3.2", Label: "Interaktion schriftlich", Short: "Inter. schr.", Description: "Chat, E-Mail, Zusammenarbeit"},
		{ID: "4.2.3.3", Code: "4.2.3.3", Label: "Interaktion digital", Short: "Inter. dig.", Description: "Digitale Kollaboration"},
	}
}

func biplaKeySkills() []KeySkill {
	return []KeySkill{
		{ID: "3.2.1", Code: "3.2.1", Label: "Zwischen relevanten und irrelevanten Quellen und Inhalten unterscheiden", Short: "Quellen unterscheiden"},
		{ID: "3.2.2", Code: "3.2.2", Label: "Sich Ziele setzen, überprüfen und anpassen", Short: "Ziele setzen"},
		{ID: "3.2.3", Code: "3.2.3", Label: "Antizipative, unternehmerische und innovative Wege der Problemlösung", Short: "Innovativ lösen"},
		{ID: "3.2.4", Code: "3.2.4", Label: "In unterschiedlichen Teams zielgerichtet und effizient arbeiten", Short: "Teamarbeit"},
		{ID: "3.2.5", Code: "3.2.5", Label: "Die eigenen Werthaltungen und Überzeugungen erkennen, verstehen, kritisch reflektieren und weiterentwickeln", Short: "Werte reflektieren"},
		{ID: "3.2.6", Code: "3.2.6", Label: "Eigene Standpunkte begründen und andere davon überzeugen", Short: "Standpunkte begründen"},
		{ID: "3.2.7", Code: "3.2.7", Label: "Unterschiedliche Standpunkte nachvollziehen und das gegenseitige Verständnis fördern", Short: "Verständnis fördern"},
		{ID: "3.2.8", Code: "3.2.8", Label: "Ihre Lebensphasen planen und mit Unwägbarkeiten umgehen", Short: "Lebensphasen planen"},
		{ID: "3.2.9", Code: "3.2.9", Label: "Vernetzt und systemisch denken, um sozial, ökologisch und ökonomisch nachhaltig zu handeln", Short: "Nachhaltig handeln"},
		{ID: "3.2.10", Code: "3.2.10", Label: "Sich in einem sich ständig verändernden Umfeld zurechtfinden und sich an dieses anpassen", Short: "Anpassungsfähigkeit"},
		{ID: "3.2.11", Code: "3.2.11", Label: "Mit Mehrdeutigkeiten umgehen", Short: "Ambiguität"},
		{ID: "3.2.12", Code: "3.2.12", Label: "An gesellschaftlichen Prozessen partizipieren und Handlungsspielräume nutzen", Short: "Partizipation"},
	}
}

func biplaSocietyTopics() []SocietyTopic {
	return []SocietyTopic{
		{ID: "recht", Label: "Recht", Description: "Verträge, Gesetze, rechtliche Orientierung"},
		{ID: "wirtschaft", Label: "Wirtschaft", Description: "Budget, Konsum, Arbeitswelt"},
		{ID: "politik", Label: "Politik", Description: "Demokratie, Abstimmungen, Behörden"},
		{ID: "oekologie", Label: "Ökologie", Description: "Nachhaltigkeit, Klimawandel, Umwelt"},
		{ID: "digital", Label: "Technologie & Digital", Description: "Digitale Transformation, KI, Tools"},
		{ID: "ethik", Label: "Ethik", Description: "Moralische Konflikte, Werte"},
		{ID: "identitaet", Label: "Identität & Sozialisation", Description: "Gesundheit, Kommunikation, Kultur"},
		{ID: "kultur", Label: "Kultur", Description: "Kulturelle Ausdrucksformen, Kunst"},
	}
}

// skillRounds baut die Zirkularitätskarte eines Themas aus seiner Pflichtliste
func skillRounds(refs []SkillRef) map[string]Round {
	m := make(map[string]Round, len(refs))
	for _, r := range refs {
		m[r.ID] = r.Round
	}
	return m
}

func biplaThemes() []Theme {
	mk := func(id string, order, year int, title, subtitle string, modes, society []string, skills []SkillRef) Theme {
		return Theme{
			ID: id, Order: order, Year: year, Title: title, Subtitle: subtitle,
			MandatoryLanguageModes: modes,
			MandatorySociety:       society,
			MandatoryKeySkills:     skills,
			Circularity:            CircularityMap{KeySkills: skillRounds(skills)},
		}
	}

	return []Theme{
		mk("t1", 1, 1, "Berufseinstieg", "Ins Berufsleben einsteigen",
			[]string{"4.2.1.3", "4.2.1.1", "4.2.3.3"},
			[]string{"recht", "digital", "identitaet"},
			[]SkillRef{{"3.2.2", Round1}, {"3.2.7", Round1}, {"3.2.10", Round1}}),
		mk("t2", 2, 1, "Geld und Konsum", "Verantwortungsvoll mit Geld umgehen",
			[]string{"4.2.1.2", "4.2.2.1"},
			[]string{"wirtschaft", "oekologie"},
			[]SkillRef{{"3.2.1", Round1}, {"3.2.3", Round1}, {"3.2.9", Round1}}),
		mk("t3", 3, 1, "Sicherheit und Wohlbefinden", "Risiko und Sicherheit verstehen",
			[]string{"4.2.2.2", "4.2.3.1"},
			[]string{"identitaet", "recht"},
			[]SkillRef{{"3.2.4", Round1}, {"3.2.5", Round1}, {"3.2.11", Round1}}),
		mk("t4", 4, 1, "Medien und Digitales", "Medien und digitale Welt",
			[]string{"4.2.3.3", "4.2.3.2", "4.2.3.1"},
			[]string{"digital", "kultur"},
			[]SkillRef{{"3.2.1", Round2}, {"3.2.10", Round2}, {"3.2.12", Round1}}),
		mk("t5", 5, 2, "Politik und Demokratie", "Politisch teilnehmen",
			[]string{"4.2.1.1", "4.2.2.3"},
			[]string{"politik", "oekologie"},
			[]SkillRef{{"3.2.5", Round2}, {"3.2.6", Round1}, {"3.2.9", Round2}}),
		mk("t6", 6, 2, "Recht und Ethik", "Rechtlich und ethisch handeln",
			[]string{"4.2.2.1", "4.2.2.2"},
			[]string{"recht", "ethik"},
			[]SkillRef{{"3.2.4", Round2}, {"3.2.6", Round2}, {"3.2.7", Round2}}),
		mk("t7", 7, 2, "Arbeit und Zukunft", "Arbeit und Steuern verstehen",
			[]string{"4.2.3.1", "4.2.1.3", "4.2.3.2"},
			[]string{"identitaet", "wirtschaft", "politik"},
			[]SkillRef{{"3.2.2", Round2}, {"3.2.3", Round2}, {"3.2.8", Round1}}),
		mk("t8", 8, 2, "Kultur und Identität", "Kultur und Kunst erleben",
			[]string{"4.2.1.2", "4.2.2.3", "4.2.1.1"},
			[]string{"kultur", "ethik"},
			[]SkillRef{{"3.2.8", Round2}, {"3.2.11", Round2}, {"3.2.12", Round2}}),
	}
}

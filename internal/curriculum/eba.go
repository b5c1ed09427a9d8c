package curriculum

import "sync"

var (
	ebaOnce    sync.Once
	ebaCatalog *Catalog
)

// EBA liefert den Lehrplan der 2-jährigen Grundbildung (Schullehrplan ABU EBA
// Kanton Zürich). Einträge referenzieren hier einzelne Knoten (Kompetenz,
// Schlüsselkompetenz oder transversales Thema).
func EBA() *Catalog {
	ebaOnce.Do(func() {
		ebaCatalog = newCatalog(VariantEBA,
			ebaThemes(), ebaLanguageModes(), ebaKeySkills(), ebaSocietyTopics(), ebaTransversalTopics())
	})
	return ebaCatalog
}

func ebaLanguageModes() []LanguageMode {
	return []LanguageMode{
		{ID: "rezMuendlich", Code: "4.2.1.1", Label: "Rezeption mündlich"},
		{ID: "rezAudiovisuell", Code: "4.2.1.2", Label: "Rezeption audiovisuell"},
		{ID: "rezSchriftlich", Code: "4.2.1.3", Label: "Rezeption schriftlich/bildlich"},
		{ID: "prodMuendlich", Code: "4.2.2.1", Label: "Produktion mündlich"},
		{ID: "prodSchriftlich", Code: "4.2.2.2", Label: "Produktion schriftlich/bildlich"},
		{ID: "prodMultimedial", Code: "4.2.2.3", Label: "Produktion multimedial"},
		{ID: "ikMuendlich", Code: "4.2.3.1", Label: "Interaktion u. Kollab. mündlich"},
		{ID: "ikSchriftlich", Code: "4.2.3.2", Label: "Interaktion u. Kollab. schriftlich"},
		{ID: "ikDigital", Code: "4.2.3.3", Label: "Interaktion u. Kollab. digital"},
	}
}

func ebaKeySkills() []KeySkill {
	return []KeySkill{
		{ID: "sk321", Code: "3.2.1", Label: "Zwischen relevanten und irrelevanten Quellen und Inhalten unterscheiden"},
		{ID: "sk322", Code: "3.2.2", Label: "Sich Ziele setzen, überprüfen und anpassen"},
		{ID: "sk323", Code: "3.2.3", Label: "Antizipative, unternehmerische und innovative Wege der Problemlösung"},
		{ID: "sk324", Code: "3.2.4", Label: "In unterschiedlichen Teams zielgerichtet und effizient arbeiten"},
		{ID: "sk325", Code: "3.2.5", Label: "Die eigenen Werthaltungen und Überzeugungen erkennen, verstehen, kritisch reflektieren und weiterentwickeln"},
		{ID: "sk326", Code: "3.2.6", Label: "Eigene Standpunkte begründen und andere davon überzeugen"},
		{ID: "sk327", Code: "3.2.7", Label: "Unterschiedliche Standpunkte nachvollziehen und das gegenseitige Verständnis fördern"},
		{ID: "sk328", Code: "3.2.8", Label: "Ihre Lebensphasen planen und mit Unwägbarkeiten umgehen"},
		{ID: "sk329", Code: "3.2.9", Label: "Vernetzt und systemisch denken, um sozial, ökologisch und ökonomisch nachhaltig zu handeln"},
		{ID: "sk3210", Code: "3.2.10", Label: "Sich in einem sich ständig verändernden Umfeld zurechtfinden und sich an dieses anpassen"},
		{ID: "sk3211", Code: "3.2.11", Label: "Mit Mehrdeutigkeiten umgehen"},
		{ID: "sk3212", Code: "3.2.12", Label: "An gesellschaftlichen Prozessen partizipieren und Handlungsspielräume nutzen"},
	}
}

func ebaSocietyTopics() []SocietyTopic {
	return []SocietyTopic{
		{ID: "ethik", Label: "Ethik"},
		{ID: "identitaet", Label: "Identität & Sozialisation"},
		{ID: "kultur", Label: "Kultur"},
		{ID: "oekologie", Label: "Ökologie"},
		{ID: "politik", Label: "Politik"},
		{ID: "recht", Label: "Recht"},
		{ID: "techDigital", Label: "Techn. & dig. Transformation"},
		{ID: "wirtschaft", Label: "Wirtschaft"},
	}
}

func ebaTransversalTopics() []TransversalTopic {
	return []TransversalTopic{
		{ID: "digitalisierung", Label: "Digitalisierung"},
		{ID: "nachhaltigkeit", Label: "Nachhaltige Entwicklung"},
		{ID: "chancengerechtigkeit", Label: "Chancengerechtigkeit"},
	}
}

func ebaThemes() []Theme {
	return []Theme{
		{
			ID: "t1", Order: 1, Year: 1, Title: "Ins Berufsleben einsteigen", Lessons: 22,
			MandatoryLanguageModes: []string{"rezSchriftlich", "rezMuendlich", "ikDigital"},
			MandatorySociety:       []string{"identitaet", "recht", "techDigital"},
			MandatoryKeySkills:     []SkillRef{{"sk322", Round1}, {"sk327", Round1}, {"sk3210", Round1}},
			LifeContexts: []LifeContext{
				{
					ID: "lb1-1", Title: "Ich kenne meine Rechte beim Berufseinstieg und organisiere mich digital.",
					Competencies: []Competency{
						{
							ID:   "k1-1-1",
							Text: "Ich kann mich in der Arbeits- und Ausbildungswelt anhand von vielfältigen Informationen zum Lehrvertrag orientieren und bei Fragen oder Konflikten bei dafür vorgesehenen Kontaktstellen Unterstützung holen.",
							Society: []SocietyContentItem{
								{TopicID: "recht", Content: "Grundlagen zum Aufbau und zu den wichtigsten Elementen eines Lehrvertrags"},
								{TopicID: "recht", Content: "Ablauf eines einfachen Konfliktmanagements und Zuständigkeiten der Kontaktstellen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikDigital", Content: "An digitalen Austauschsituationen aktiv teilnehmen (z.B. in einer Videokonferenz zuhören, Rückfragen stellen, Rückmeldungen geben); mit KI-basierten Tools interagieren und deren Beiträge reflektieren."},
							},
							OptionalModes: []string{"rezMuendlich", "rezSchriftlich"},
						},
						{
							ID:   "k1-1-2",
							Text: "Ich kann digitale Ordnungsstrukturen nutzen und meinen digitalen Lern- und Arbeitsplatz zweckmässig einrichten.",
							Society: []SocietyContentItem{
								{TopicID: "techDigital", Content: "Funktionen Ordnerstrukturen, Vorgehen Einrichten Kommunikationsmittel, Kalender- und Notizfunktionen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezSchriftlich", Content: "Zentrale Aussagen aus Texten oder bildlichen Anleitungen entnehmen mithilfe von Markierhilfe und Lesestrategien"},
							},
							OptionalModes: []string{"ikDigital"},
						},
					},
				},
				{
					ID: "lb1-2", Title: "Ich gehe im Alltag und im Beruf sorgsam mit mir um und kommuniziere klar und respektvoll.",
					Competencies: []Competency{
						{
							ID:   "k1-2-1",
							Text: "Ich kann zentrale Aussagen zu Regeln und Zuständigkeiten in Schule und Betrieb verstehen und beschreiben, wie ich mich in typischen Situationen respektvoll und verständlich verhalte.",
							Society: []SocietyContentItem{
								{TopicID: "recht", Content: "Umgangsregeln in Schule und Betrieb, Meldewege und Zuständigkeiten bei Problemen oder Unsicherheiten"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezSchriftlich", Content: "Zentrale Aussagen aus Texten entnehmen mithilfe von Markierhilfe und Lesestrategien"},
							},
							OptionalModes: []string{"rezMuendlich", "prodMuendlich"},
						},
						{
							ID:   "k1-2-2",
							Text: "Ich kann erkennen, wann mir etwas zu viel wird, und zentrale Aussagen aus Gesprächen oder Texten zu Entlastungsstrategien und Regeln verstehen, um passende Verhaltensweisen für mich abzuleiten.",
							Society: []SocietyContentItem{
								{TopicID: "identitaet", Content: "Grundwissen über Erfassung Belastungszeichen und über einfache Gesundheits- und Verhaltensregeln"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezMuendlich", Content: "Zentrale Aussagen aus Gesprächen oder Audioquellen verstehen/erkennen; vorgegebene Sachverhalte nachfragen/erheben"},
							},
							OptionalModes: []string{"rezSchriftlich"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"identitaet": Round1, "recht": Round1, "techDigital": Round1},
				LanguageModes: map[string]Round{"rezMuendlich": Round1, "rezSchriftlich": Round1, "ikDigital": Round1},
				KeySkills:     map[string]Round{"sk322": Round1, "sk327": Round1, "sk3210": Round1},
			},
		},
		{
			ID: "t2", Order: 2, Year: 1, Title: "Bewusst konsumieren und handeln", Lessons: 22,
			MandatoryLanguageModes: []string{"rezAudiovisuell", "prodMuendlich"},
			MandatorySociety:       []string{"oekologie", "wirtschaft"},
			MandatoryKeySkills:     []SkillRef{{"sk321", Round1}, {"sk323", Round1}, {"sk329", Round1}},
			LifeContexts: []LifeContext{
				{
					ID: "lb2-1", Title: "Ich gehe bewusst mit meinem Geld um.",
					Competencies: []Competency{
						{
							ID:   "k2-1-1",
							Text: "Ich kann ein Budget erstellen, reflektiere darin aufgeführte Konsumentscheidungen und identifiziere Risiken für meine Schulden.",
							Society: []SocietyContentItem{
								{TopicID: "wirtschaft", Content: "Grundwissen zu Budget und Schuldenfallen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezAudiovisuell", Content: "Hauptaussagen aus audiovisuellen Medien entnehmen (z.B. verstehen kurze Videos oder Clips zu Budget, Ausgaben und Schuldenfallen)"},
							},
							OptionalModes: []string{"prodSchriftlich"},
						},
						{
							ID:   "k2-1-2",
							Text: "Ich kann Strategien für einen nachhaltigen Konsum umsetzen.",
							Society: []SocietyContentItem{
								{TopicID: "oekologie", Content: "Grundlagen der Produktbewertung: Herkunft, Energieverbrauch, Materialien, Entsorgung"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMuendlich", Content: "Meinung äussern, Gespräch führen, Argumente verwenden (z.B. mündlich erklären, wie ihr Konsum die Umwelt beeinflusst)"},
							},
							OptionalModes: []string{"rezAudiovisuell"},
						},
					},
				},
				{
					ID: "lb2-2", Title: "Ich befasse mich mit wirtschaftlichem Handeln im Betrieb und im Alltag und dessen Auswirkungen.",
					Competencies: []Competency{
						{
							ID:   "k2-2-1",
							Text: "Ich kann beschreiben, was die Grundlagen für die Produktion der Dienstleistung/der Ware in meinem Betrieb sind, wie dafür Werbung gemacht wird und wer die Kunden sind.",
							Society: []SocietyContentItem{
								{TopicID: "wirtschaft", Content: "Grundlegendes Wissen darüber, wie ein Betrieb mit seinen Kundinnen und Kunden kommuniziert"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMuendlich", Content: "Meinung äussern, Gespräch führen, Argumente verwenden"},
							},
							OptionalModes: []string{"prodSchriftlich"},
						},
						{
							ID:   "k2-2-2",
							Text: "Ich kann die Folgen des Massenkonsums aufzeigen.",
							Society: []SocietyContentItem{
								{TopicID: "oekologie", Content: "Übersicht, wie Massenkonsum Umwelt und Ressourcen belastet: Rohstoffverbrauch, Energiebedarf, Transportwege, Abfallmengen, CO₂-Fussabdruck"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezAudiovisuell", Content: "Hauptaussagen aus audiovisuellen Medien entnehmen (z.B. aus Videos über die Umweltfolgen des Massenkonsums)"},
							},
							OptionalModes: []string{"prodMuendlich"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"oekologie": Round1, "wirtschaft": Round1},
				LanguageModes: map[string]Round{"rezAudiovisuell": Round1, "prodMuendlich": Round1},
				KeySkills:     map[string]Round{"sk321": Round1, "sk323": Round1, "sk329": Round1},
			},
		},
		{
			ID: "t3", Order: 3, Year: 1, Title: "Sicherheit und Gesundheit", Lessons: 22,
			MandatoryLanguageModes: []string{"ikMuendlich", "prodSchriftlich"},
			MandatorySociety:       []string{"identitaet", "recht"},
			MandatoryKeySkills:     []SkillRef{{"sk324", Round1}, {"sk325", Round1}, {"sk3211", Round1}},
			LifeContexts: []LifeContext{
				{
					ID: "lb3-1", Title: "Ich schätze Risiken im Alltag und im Berufsleben ein und erkläre, wie ich mich dagegen absichern kann.",
					Competencies: []Competency{
						{
							ID:   "k3-1-1",
							Text: "Ich kann aufzeigen, welchen Risiken ich im Alltag und im Betrieb ausgesetzt bin.",
							Society: []SocietyContentItem{
								{TopicID: "recht", Content: "Regeln und Zuständigkeiten, um Risiken im Alltag und am Arbeitsplatz zu minimieren"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikMuendlich", Content: "An Gesprächen, z.B. einem Austausch über Risiken im Alltag und im Betrieb, aktiv teilnehmen"},
							},
							OptionalModes: []string{"prodSchriftlich"},
						},
						{
							ID:   "k3-1-2",
							Text: "Ich kann prüfen, wie ich geschützt bin und mich selbst absichern.",
							Society: []SocietyContentItem{
								{TopicID: "recht", Content: "Gesetzliche Grundlagen und Zuständigkeiten für Schutz bei Unfällen, Schäden oder Risiken"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodSchriftlich", Content: "Nachricht/Text schreiben, Präsentation/Protokoll, Tagebuch, Prompt formulieren"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
					},
				},
				{
					ID: "lb3-2", Title: "Ich reflektiere, wie gesellschaftliche Normen mein Wohlbefinden prägen, und wie ich gesund lebe.",
					Competencies: []Competency{
						{
							ID:   "k3-2-1",
							Text: "Ich kann gesellschaftliche Erwartungen und Normen zu Körper, Geschlecht und Identität erkennen und reflektieren.",
							Society: []SocietyContentItem{
								{TopicID: "identitaet", Content: "Darstellungsweisen in Medien und von beruflichen Rollenbildern, die Erwartungen zu Aussehen, Verhalten und Geschlecht prägen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikMuendlich", Content: "Zuhören, an Gesprächen teilnehmen, Rückmeldung geben, Argumentstruktur erkennen"},
							},
							OptionalModes: []string{"prodSchriftlich"},
						},
						{
							ID:   "k3-2-2",
							Text: "Ich kann Möglichkeiten für einen gesundheitsfördernden Lebensstil beruflich und privat aufzeigen und bewerten.",
							Society: []SocietyContentItem{
								{TopicID: "identitaet", Content: "Hinweise, wie die Lernenden ihre eigenen Bedürfnisse im Alltag besser wahrnehmen können"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodSchriftlich", Content: "Nachricht/Text schreiben, Präsentation/Protokoll, Tagebuch, Prompt formulieren, Bild erzeugen"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"identitaet": Round2, "recht": Round2},
				LanguageModes: map[string]Round{"prodSchriftlich": Round1, "ikMuendlich": Round1},
				KeySkills:     map[string]Round{"sk324": Round1, "sk325": Round1, "sk3211": Round1},
			},
		},
		{
			ID: "t4", Order: 4, Year: 1, Title: "Medien und digitale Welt", Lessons: 22,
			MandatoryLanguageModes: []string{"ikDigital", "ikSchriftlich", "ikMuendlich"},
			MandatorySociety:       []string{"kultur", "techDigital"},
			MandatoryKeySkills:     []SkillRef{{"sk321", Round2}, {"sk3210", Round2}, {"sk3212", Round1}},
			LifeContexts: []LifeContext{
				{
					ID: "lb4-1", Title: "Ich nutze KI und digitale Werkzeuge gezielt, reflektiert und eigenständig.",
					Competencies: []Competency{
						{
							ID:   "k4-1-1",
							Text: "Ich kann digitale Werkzeuge und deren Funktionen situationsgerecht nutzen.",
							Society: []SocietyContentItem{
								{TopicID: "techDigital", Content: "Werkzeugkasten Smartphone, Funktionen Kommunikationstools, Funktionen Officeprogramme"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikDigital", Content: "Digitale Dokumente an verschiedenen Orten (hybrid) und zu unterschiedlichen Zeiten (asynchron) in gemeinsamer Absprache erstellen und gestalten"},
							},
							OptionalModes: []string{"ikSchriftlich"},
						},
						{
							ID:   "k4-1-2",
							Text: "Ich kann Funktionen von KI anwenden und ein eigenes Ausgangsprodukt (Text, Foto, etc.) mit KI überarbeiten.",
							Society: []SocietyContentItem{
								{TopicID: "kultur", Content: "KI-Funktionen für die Gestaltung von Medieninhalten"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikDigital", Content: "Digitale Lernjournale gemeinsam führen und reflektieren, in Online-Diskussionen aktiv mitwirken"},
							},
							OptionalModes: []string{"prodMultimedial"},
						},
					},
				},
				{
					ID: "lb4-2", Title: "Ich suche und prüfe Infos, gehe verantwortungsvoll mit Social Media um und erkenne künstliche und kulturell geprägte KI-Inhalte.",
					Competencies: []Competency{
						{
							ID:   "k4-2-1",
							Text: "Ich kann verlässliche Informationen des Alltags, der Schule und des Berufs finden und prüfen.",
							Society: []SocietyContentItem{
								{TopicID: "techDigital", Content: "Rechercheleitfaden, Recherchefunktionen (inklusive KI), Quellenarchive, Quellendokumentation"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikSchriftlich", Content: "Schriftliche Rückmeldung verfassen, in gemeinsamen Dokumenten Quellen sammeln und nach Kriterien ordnen"},
							},
							OptionalModes: []string{"ikDigital"},
						},
						{
							ID:   "k4-2-2",
							Text: "Ich kann verantwortungsvoll mit Social Media umgehen, KI-Inhalte erkennen und sie in ihren kulturellen Kontext einordnen.",
							Society: []SocietyContentItem{
								{TopicID: "kultur", Content: "Überblick darüber, wie kulturelle und soziale Hintergründe die Darstellung in Social Media prägen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikMuendlich", Content: "Gespräche führen, Rückmeldungen differenzieren, Rollen übernehmen, Gruppenentscheidungen mitentwickeln"},
							},
							OptionalModes: []string{"ikSchriftlich", "ikDigital"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"kultur": Round1, "techDigital": Round2},
				LanguageModes: map[string]Round{"ikMuendlich": Round2, "ikSchriftlich": Round1, "ikDigital": Round2},
				KeySkills:     map[string]Round{"sk321": Round2, "sk3210": Round2, "sk3212": Round1},
			},
		},
		{
			ID: "t5", Order: 5, Year: 2, Title: "Meinung bilden und mitgestalten", Lessons: 22,
			MandatoryLanguageModes: []string{"rezMuendlich", "prodMultimedial"},
			MandatorySociety:       []string{"oekologie", "politik"},
			MandatoryKeySkills:     []SkillRef{{"sk325", Round2}, {"sk326", Round1}, {"sk329", Round2}},
			LifeContexts: []LifeContext{
				{
					ID: "lb5-1", Title: "Ich bilde mir eine Meinung zu politischen Zusammenhängen, vertrete sie und rege andere zum Nachdenken an.",
					Competencies: []Competency{
						{
							ID:   "k5-1-1",
							Text: "Ich kann politische Beiträge aus Informationsquellen verstehen und die Folgen von politischen Entscheidungen einordnen.",
							Society: []SocietyContentItem{
								{TopicID: "oekologie", Content: "Modelle zum Klimawandel, ökologischer Fussabdruck"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezMuendlich", Content: "Absichten erkennen, politische Aussagen verstehen, politischen Diskussionen folgen, Werte hinter Positionen erkennen"},
							},
							OptionalModes: []string{"prodMultimedial"},
						},
						{
							ID:   "k5-1-2",
							Text: "Ich kann eigene Standpunkte zur Meinungsbildung entwickeln und diese in Gesprächen argumentativ vertreten.",
							Society: []SocietyContentItem{
								{TopicID: "politik", Content: "Abstimmungsunterlagen, Medienbeiträge"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMultimedial", Content: "Content erstellen (z.B. Social-Media), Argumente (mit Hilfe eines KI-Assistenten) aufbauen"},
							},
							OptionalModes: []string{"rezMuendlich"},
						},
					},
				},
				{
					ID: "lb5-2", Title: "Ich kenne meine politischen Rechte und weiss, wie ich mich an politischen Prozessen beteiligen kann.",
					Competencies: []Competency{
						{
							ID:   "k5-2-1",
							Text: "Ich kann das politische System der Schweiz darstellen und Möglichkeiten der politischen Teilnahme aufzeigen.",
							Society: []SocietyContentItem{
								{TopicID: "politik", Content: "(Halb)direkte Demokratie, Föderalismus"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMultimedial", Content: "Content erstellen (z.B. Social-Media), politische Inhalte aufbereiten"},
							},
							OptionalModes: []string{"rezMuendlich"},
						},
						{
							ID:   "k5-2-2",
							Text: "Ich kann einen Beitrag gestalten, der politische Mitwirkungsmöglichkeiten für Jugendliche sichtbar macht und zur aktiven Teilhabe motiviert.",
							Society: []SocietyContentItem{
								{TopicID: "politik", Content: "Gemeindeorganisation"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMultimedial", Content: "Content erstellen (z.B. Social-Media), mit einem Video- oder Bildgenerator ein Mitwirkungsprojekt produzieren"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"oekologie": Round2, "politik": Round1},
				LanguageModes: map[string]Round{"rezMuendlich": Round2, "prodMultimedial": Round1},
				KeySkills:     map[string]Round{"sk325": Round2, "sk326": Round1, "sk329": Round2},
			},
		},
		{
			ID: "t6", Order: 6, Year: 2, Title: "Verträge verstehen – fair handeln", Lessons: 22,
			MandatoryLanguageModes: []string{"prodSchriftlich", "prodMuendlich"},
			MandatorySociety:       []string{"ethik", "recht"},
			MandatoryKeySkills:     []SkillRef{{"sk324", Round2}, {"sk326", Round2}, {"sk327", Round2}},
			LifeContexts: []LifeContext{
				{
					ID: "lb6-1", Title: "Ich setze mich mit rechtlichen Fragen des Alltags auseinander.",
					Competencies: []Competency{
						{
							ID:   "k6-1-1",
							Text: "Ich kann Alltagsverträge beurteilen (z.B. Kauf) und meine Rechte und Pflichten daraus ableiten.",
							Society: []SocietyContentItem{
								{TopicID: "recht", Content: "Grundwissen über das Vertragsrecht"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodSchriftlich", Content: "Nachricht/Text/Bild/Präsentation mit KI-Chat erstellen/überarbeiten, strukturierte Nachricht mit Begründung verfassen"},
							},
							OptionalModes: []string{"prodMuendlich"},
						},
						{
							ID:   "k6-1-2",
							Text: "Ich kann beurteilen, wann eine rechtliche Abklärung notwendig ist und aufzeigen, wo ich Unterstützung finde.",
							Society: []SocietyContentItem{
								{TopicID: "recht", Content: "Grundwissen über das Vertragsrecht"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMuendlich", Content: "Aussagen und Argumente strukturieren, Redemittel nutzen, Argumentationsaufbau"},
							},
							OptionalModes: []string{"prodSchriftlich"},
						},
					},
				},
				{
					ID: "lb6-2", Title: "Ich handle in schwierigen Situationen fair und bespreche mit anderen, was dabei herausfordernd sein kann.",
					Competencies: []Competency{
						{
							ID:   "k6-2-1",
							Text: "Ich kann ethische Regelungen beschreiben und sie von rechtlichen Bestimmungen unterscheiden.",
							Society: []SocietyContentItem{
								{TopicID: "ethik", Content: "Methode für Perspektivenübernahme, Ethische Grundsätze"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMuendlich", Content: "Aussagen und Argumente strukturieren, Redemittel nutzen"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
						{
							ID:   "k6-2-2",
							Text: "Ich kann Verhaltensweisen beschreiben, um moralische Konfliktsituationen zu lösen und in der Gruppe mögliche Herausforderungen diskutieren.",
							Society: []SocietyContentItem{
								{TopicID: "ethik", Content: "Moralische Prinzipien kennen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMuendlich", Content: "Aussagen und Argumente strukturieren, Redemittel nutzen"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"ethik": Round1, "recht": Round3},
				LanguageModes: map[string]Round{"prodSchriftlich": Round2, "prodMuendlich": Round2},
				KeySkills:     map[string]Round{"sk324": Round2, "sk326": Round2, "sk327": Round2},
			},
		},
		{
			ID: "t7", Order: 7, Year: 2, Title: "Arbeit und Zukunft", Lessons: 22,
			MandatoryLanguageModes: []string{"rezSchriftlich", "ikMuendlich", "ikSchriftlich"},
			MandatorySociety:       []string{"identitaet", "politik", "wirtschaft"},
			MandatoryKeySkills:     []SkillRef{{"sk322", Round2}, {"sk323", Round2}, {"sk328", Round1}},
			LifeContexts: []LifeContext{
				{
					ID: "lb7-1", Title: "Ich finde heraus, was mir privat und beruflich wichtig ist und entwickle Zukunftsszenarien.",
					Competencies: []Competency{
						{
							ID:   "k7-1-1",
							Text: "Ich kann mich mit meinen Fähigkeiten, Interessen, Werten und Zielen auseinandersetzen.",
							Society: []SocietyContentItem{
								{TopicID: "identitaet", Content: "Persönlichkeitsentwicklung, Weiterbildungsmöglichkeiten und Zukunftschancen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezSchriftlich", Content: "Absicht von Texten erkennen (digital/analog), Grafiken/Umfragen interpretieren"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
						{
							ID:   "k7-1-2",
							Text: "Ich kann meine berufliche Laufbahn planen, mein Bewerbungsdossier aktualisieren und die Bedeutung von lebenslangem Lernen erkennen.",
							Society: []SocietyContentItem{
								{TopicID: "wirtschaft", Content: "Grundwissen zu verschiedenen wirtschaftlichen Situationen"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikMuendlich", Content: "An zielgerichteten Gesprächen aktiv teilnehmen, gemeinsam Lösungen entwickeln, Rückmeldungen geben"},
							},
							OptionalModes: []string{"rezSchriftlich", "ikSchriftlich"},
						},
					},
				},
				{
					ID: "lb7-2", Title: "Ich weiss, welche Pflichten gegenüber Staat und Gesellschaft bestehen, welche Unterlagen dafür erforderlich sind und welche Stellen dafür zuständig sind.",
					Competencies: []Competency{
						{
							ID:   "k7-2-1",
							Text: "Ich kann eine Übersicht erstellen, welche Aufgaben ich gegenüber dem Staat/der Gesellschaft habe und wie ich diese ausüben kann.",
							Society: []SocietyContentItem{
								{TopicID: "politik", Content: "Politische Pflichten und Rechte"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikSchriftlich", Content: "Mehrmalige schriftliche Kommunikation (Dialog asynchron), Bezug erläutern, schriftliche Rückmeldung verfassen"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
						{
							ID:   "k7-2-2",
							Text: "Ich kann die Unterlagen für einen Austausch mit den Behörden oder mit einer anderen Akteurin/einem anderen Akteur zusammenstellen und diese einreichen.",
							Society: []SocietyContentItem{
								{TopicID: "wirtschaft", Content: "Erwartungen verschiedener Anspruchsgruppen und Zielkonflikte"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "ikSchriftlich", Content: "Mehrmalige schriftliche Kommunikation (Dialog asynchron), schriftlicher Austausch mit Behörden"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"identitaet": Round3, "politik": Round2, "wirtschaft": Round2},
				LanguageModes: map[string]Round{"rezSchriftlich": Round2, "ikMuendlich": Round3, "ikSchriftlich": Round2},
				KeySkills:     map[string]Round{"sk322": Round2, "sk323": Round2, "sk328": Round1},
			},
		},
		{
			ID: "t8", Order: 8, Year: 2, Title: "Kultur und Kunst", Lessons: 22,
			MandatoryLanguageModes: []string{"rezAudiovisuell", "rezMuendlich", "prodMultimedial"},
			MandatorySociety:       []string{"ethik", "kultur"},
			MandatoryKeySkills:     []SkillRef{{"sk328", Round2}, {"sk3211", Round2}, {"sk3212", Round2}},
			LifeContexts: []LifeContext{
				{
					ID: "lb8-1", Title: "Ich erlebe, wie Kultur Zugehörigkeit schafft und warum Ausdrucksfreiheit wichtig ist.",
					Competencies: []Competency{
						{
							ID:   "k8-1-1",
							Text: "Ich kann kulturelle Ausdrucksformen wie Sprache, Bilder oder Werke aus meinem Umfeld beschreiben, ihre Bedeutung beurteilen und die Wichtigkeit der Ausdrucksfreiheit aufzeigen.",
							Society: []SocietyContentItem{
								{TopicID: "kultur", Content: "Ausdrucksformen von Kunst (Auseinandersetzung mit Werken der Kunst)"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezAudiovisuell", Content: "Bildsprache/Tonalität deuten, Nonverbalität interpretieren, audiovisuelle Medienformate unterscheiden"},
							},
							OptionalModes: []string{"rezMuendlich"},
						},
						{
							ID:   "k8-1-2",
							Text: "Ich kann kulturelle Phänomene in meinem Umfeld reflektieren und begründen, wie sie Zugehörigkeit und Machtverhältnisse beeinflussen.",
							Society: []SocietyContentItem{
								{TopicID: "ethik", Content: "Perspektivenübernahme, Ethische Grundsätze"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "rezMuendlich", Content: "Beitrag im Podcast/Rollenspiel, publikumsgerecht präsentieren"},
							},
							OptionalModes: []string{"rezAudiovisuell"},
						},
					},
				},
				{
					ID: "lb8-2", Title: "Ich bearbeite kulturelle Themen gestalterisch und bewerte mit anderen die Wirkung.",
					Competencies: []Competency{
						{
							ID:   "k8-2-1",
							Text: "Ich kann kreative Ausdrucksformen nutzen, um auf gesellschaftliche Entwicklungen zu reagieren und Denkanstösse zu geben.",
							Society: []SocietyContentItem{
								{TopicID: "kultur", Content: "Kultur als Ausdrucksmittel"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMultimedial", Content: "Neue audiovisuelle Programme recherchieren und damit Storys erstellen"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
						{
							ID:   "k8-2-2",
							Text: "Ich kann verschiedene Lesarten eines Kunstwerks begründet diskutieren.",
							Society: []SocietyContentItem{
								{TopicID: "ethik", Content: "Perspektivenübernahme, Ethische Grundsätze"},
							},
							MandatoryModes: []LanguageModeItem{
								{ModeID: "prodMultimedial", Content: "Neue audiovisuelle Programme recherchieren und damit Storys erstellen"},
							},
							OptionalModes: []string{"ikMuendlich"},
						},
					},
				},
			},
			Circularity: CircularityMap{
				Society:       map[string]Round{"ethik": Round2, "kultur": Round2},
				LanguageModes: map[string]Round{"rezMuendlich": Round3, "rezAudiovisuell": Round2, "prodMultimedial": Round2},
				KeySkills:     map[string]Round{"sk328": Round2, "sk3211": Round2, "sk3212": Round2},
			},
		},
	}
}

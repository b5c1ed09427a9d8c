package curriculum

// AnimalSymbol anonymes Tierpseudonym für Lernende
type AnimalSymbol struct {
	ID    string
	Emoji string
	Name  string
}

// AnimalSymbols der feste Pool von 30 Pseudonymen. Die Poolgrösse begrenzt
// die maximale Klassengrösse.
var AnimalSymbols = []AnimalSymbol{
	{ID: "fox", Emoji: "🦊", Name: "Fuchs"},
	{ID: "owl", Emoji: "🦉", Name: "Eule"},
	{ID: "dolphin", Emoji: "🐬", Name: "Delfin"},
	{ID: "lion", Emoji: "🦁", Name: "Löwe"},
	{ID: "wolf", Emoji: "🐺", Name: "Wolf"},
	{ID: "bear", Emoji: "🐻", Name: "Bär"},
	{ID: "rabbit", Emoji: "🐰", Name: "Hase"},
	{ID: "cat", Emoji: "🐱", Name: "Katze"},
	{ID: "dog", Emoji: "🐶", Name: "Hund"},
	{ID: "tiger", Emoji: "🐯", Name: "Tiger"},
	{ID: "panda", Emoji: "🐼", Name: "Panda"},
	{ID: "koala", Emoji: "🐨", Name: "Koala"},
	{ID: "monkey", Emoji: "🐵", Name: "Affe"},
	{ID: "penguin", Emoji: "🐧", Name: "Pinguin"},
	{ID: "chicken", Emoji: "🐔", Name: "Huhn"},
	{ID: "frog", Emoji: "🐸", Name: "Frosch"},
	{ID: "turtle", Emoji: "🐢", Name: "Schildkröte"},
	{ID: "snail", Emoji: "🐌", Name: "Schnecke"},
	{ID: "bee", Emoji: "🐝", Name: "Biene"},
	{ID: "butterfly", Emoji: "🦋", Name: "Schmetterling"},
	{ID: "unicorn", Emoji: "🦄", Name: "Einhorn"},
	{ID: "dragon", Emoji: "🐉", Name: "Drache"},
	{ID: "whale", Emoji: "🐳", Name: "Wal"},
	{ID: "octopus", Emoji: "🐙", Name: "Oktopus"},
	{ID: "shark", Emoji: "🦈", Name: "Hai"},
	{ID: "eagle", Emoji: "🦅", Name: "Adler"},
	{ID: "peacock", Emoji: "🦚", Name: "Pfau"},
	{ID: "flamingo", Emoji: "🦩", Name: "Flamingo"},
	{ID: "hedgehog", Emoji: "🦔", Name: "Igel"},
	{ID: "squirrel", Emoji: "🐿️", Name: "Eichhörnchen"},
}

// GrootReward Belohnung ab 3 freiwilligen Übungen
var GrootReward = struct {
	ID          string
	Emoji       string
	Name        string
	Description string
}{
	ID:          "groot",
	Emoji:       "🌳",
	Name:        "Groot",
	Description: "Baumwesen - Belohnung für 3+ freiwillige Übungen",
}

// ContextOption wo geübt wurde
type ContextOption struct {
	ID    string
	Label string
	Emoji string
}

var ContextOptions = []ContextOption{
	{ID: "betrieb", Label: "Im Betrieb", Emoji: "🏢"},
	{ID: "schule", Label: "In der Schule", Emoji: "🏫"},
	{ID: "zuhause", Label: "Zuhause", Emoji: "🏠"},
	{ID: "anderer", Label: "Anderer Ort", Emoji: "📍"},
}

// HowMethods feste Auswahl, wie geübt wurde
var HowMethods = []string{
	"Fallbeispiel",
	"Gespräch/Diskussion",
	"Recherche",
	"Rollenspiel",
	"Reflexion",
	"Präsentation",
	"Schriftliche Arbeit",
	"Gruppenarbeit",
	"KI-gestützt",
	"Projekt",
	"Praxis/Betrieb",
	"Anderes",
}

// StatusOption Selbsteinschätzung beim Eintrag (nur eba)
type StatusOption struct {
	ID    string
	Label string
}

var StatusOptions = []StatusOption{
	{ID: "geuebt", Label: "geübt"},
	{ID: "verbessert", Label: "verbessert"},
	{ID: "erreicht", Label: "erreicht"},
}

// ValidHowMethod prüft ob die Methode im Vokabular vorkommt
func ValidHowMethod(m string) bool {
	for _, h := range HowMethods {
		if h == m {
			return true
		}
	}
	return false
}

// ValidStatus prüft ob der Status im Vokabular vorkommt
func ValidStatus(s string) bool {
	for _, o := range StatusOptions {
		if o.ID == s {
			return true
		}
	}
	return false
}

// ValidContext prüft ob der Kontext im Vokabular vorkommt
func ValidContext(c string) bool {
	for _, o := range ContextOptions {
		if o.ID == c {
			return true
		}
	}
	return false
}

// AnimalSymbolByID sucht ein Tierpseudonym per ID
func AnimalSymbolByID(id string) (AnimalSymbol, bool) {
	for _, a := range AnimalSymbols {
		if a.ID == id {
			return a, true
		}
	}
	return AnimalSymbol{}, false
}

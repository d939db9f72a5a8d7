package spot

// Motiv is a selectable photography subject category.
type Motiv struct {
	ID    string
	Label string
}

// Motivs is the catalog of selectable motifs for the quick-search wizard.
var Motivs = []Motiv{
	{ID: "landschaft", Label: "Landschaft"},
	{ID: "architektur", Label: "Architektur"},
	{ID: "portrait", Label: "Portrait / Menschen"},
	{ID: "street", Label: "Street"},
	{ID: "astro", Label: "Astrofotografie"},
	{ID: "tiere", Label: "Tiere"},
	{ID: "langzeitbelichtung", Label: "Langzeitbelichtung"},
	{ID: "makro", Label: "Makro"},
	{ID: "lost-place", Label: "Lost Place"},
	{ID: "natur", Label: "Natur"},
	{ID: "wasser", Label: "Wasser"},
	{ID: "muster", Label: "Muster & Texturen"},
	{ID: "drohne", Label: "Drohne"},
}

// DynamicStyles maps a motif id to the styles offered for it. The "default"
// entry is used for motifs without a dedicated list.
var DynamicStyles = map[string][]string{
	"landschaft":         {"Malerisch", "Dramatisch", "Minimalistisch", "Natürlich", "Mystisch", "Weitläufig", "Für Drohnenflüge geeignet"},
	"architektur":        {"Modern", "Urban", "Industriell", "Minimalistisch", "Futuristisch", "Vintage", "Symmetrisch", "Brutalismus", "Vogelperspektive"},
	"portrait":           {"Romantisch", "Natürlich", "Urban", "Dramatisch", "Vintage", "Lifestyle", "Fashion", "Sinnlich"},
	"street":             {"Urban", "Kontrastreich", "Vintage", "Nachtfotografie", "Minimalistisch", "Dokumentarisch", "Abstrakt"},
	"astro":              {"Mystisch", "Dramatisch", "Ruhig / Abgelegen", "Weitläufig", "Futuristisch", "Minimalistisch"},
	"tiere":              {"Natürlich", "Actionreich", "Geduldig", "Nahaufnahme", "Wildnis", "Ländlich"},
	"langzeitbelichtung": {"Dynamisch", "Mystisch", "Urban", "Minimalistisch", "Abstrakt", "Fließend"},
	"makro":              {"Detailreich", "Abstrakt", "Natürlich", "Minimalistisch", "Texturiert", "Geometrisch", "Organisch"},
	"lost-place":         {"Mystisch", "Industriell", "Vintage", "Verfallen", "Dramatisch", "Unheimlich"},
	"natur":              {"Unberührt", "Wild", "Ruhig", "Idyllisch", "Episch", "Minimalistisch", "Malerisch", "Natürlich"},
	"wasser":             {"Spiegelungen", "Fließend", "Klar", "Küstennah", "Maritim", "Mystisch", "Ruhig"},
	"muster":             {"Abstrakt", "Geometrisch", "Organisch", "Rau", "Detailreich", "Grafisch", "Minimalistisch"},
	"drohne":             {"Vogelperspektive", "Weitläufig", "Symmetrisch", "Grafisch", "Episch", "Industriell", "Urban", "Landschaftlich"},
	"default": {
		"Modern", "Minimalistisch", "Urban", "Industriell",
		"Natürlich", "Ländlich", "Romantisch", "Mystisch",
		"Futuristisch", "Vintage", "Malerisch", "Dramatisch",
		"Für Drohnenflüge geeignet", "Vogelperspektive",
	},
}

// PhotoSubjects is the catalog of planner subjects.
var PhotoSubjects = []string{
	"Landschaft", "Portrait / Menschen", "Architektur", "Streetfotografie",
	"Astrofotografie", "Tierfotografie", "Auto / Fahrzeug", "Produkt", "Event",
}

// DesiredWeather lists selectable weather preferences for the planner.
var DesiredWeather = []string{
	"Klarer Himmel", "Leicht bewölkt", "Dramatische Wolken", "Nebel",
	"Regen / Nasse Strassen", "Schnee",
}

// DesiredLight lists selectable light preferences for the planner.
var DesiredLight = []string{
	"Goldene Stunde (Sonnenaufgang)", "Goldene Stunde (Sonnenuntergang)",
	"Blaue Stunde", "Helles Tageslicht", "Weiches / Bewölktes Licht",
	"Nacht / Sterne",
}

// TimesOfDay lists selectable times of day for the quick search.
var TimesOfDay = []string{
	"Morgen", "Vormittag", "Mittag", "Nachmittag", "Abend", "Nacht",
}

// MaxRadius is the upper bound of the search radius slider in km.
const MaxRadius = 100

// QuickSearchLoadingMessages rotate while a quick search is in flight.
var QuickSearchLoadingMessages = []string{
	"Analysiere deine Kriterien...",
	"Durchsuche Karten nach passenden Orten...",
	"Prüfe die Top-Kandidaten...",
	"Stelle die Ergebnisse für dich zusammen...",
	"Fast fertig...",
}

// PlannerLoadingMessages rotate while a plan is being generated.
var PlannerLoadingMessages = []string{
	"Verstehe deine kreative Vision...",
	"Analysiere Wetter- & Lichtdaten für deinen Zeitraum...",
	"Scanne die Region nach dem perfekten Spot...",
	"Identifiziere den optimalen Moment...",
	"Erstelle ein detailliertes Kreativ-Briefing...",
	"Stelle deine individuelle Packliste zusammen...",
	"Formuliere exklusive Profi-Tipps...",
	"Finalisiere deinen Shooting-Plan...",
}

// SuggestionLoadingMessages rotate while time-slot suggestions are fetched.
var SuggestionLoadingMessages = []string{
	"Analysiere Wetter- & Lichtdaten...",
	"Vergleiche mögliche Zeitfenster...",
	"Wähle die besten Momente aus...",
}

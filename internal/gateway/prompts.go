package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"spotfinder-ai/internal/shared"
	"spotfinder-ai/internal/spot"
)

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func findSpotsPrompt(criteria spot.SearchCriteria, location shared.Coordinates) string {
	return fmt.Sprintf(`
Finde 5-7 Foto-Spots in einem Umkreis von %d km um den Standort (%f, %f).
Die Spots sollten zu folgenden Kriterien passen:
- Medientyp: %s
- Motive: %s
- Stile/Stimmungen: %s
- Tageszeit: %s

Gib für jeden Spot einen Namen, eine kurze Beschreibung (30-50 Wörter), die genaue Adresse, die exakten GPS-Koordinaten, passende Stichwörter, eine plausible Wettervorhersage, 3 fotografische Highlights ('keyAspects'), die beste Besuchszeit ('bestTimeToVisit'), 2-3 konkrete Fototipps ('photoTips') und einen einzigartigen Profi-Tipp ('proTip') an.
Die Wettervorhersage muss für die angegebene Tageszeit (%s) gelten und sollte eine Anmerkung ('notes') enthalten, wie das Wetter die Fotografie an diesem Ort beeinflusst.
Die Beschreibung sollte kreativ und inspirierend für Fotografen/Videografen sein.
Die Fototipps und der Profi-Tipp müssen besonders detailliert, nützlich und umsetzbar sein. Sie sollen die Frage "Was soll ich fotografieren?" beantworten, nicht nur "Wo?".
Stelle sicher, dass die Spots thematisch zu den angegebenen Motiven und Stilen passen.
`,
		criteria.Radius, location.Lat, location.Lon,
		criteria.MediaType,
		joinOr(criteria.Motivs, "Keine"),
		joinOr(criteria.Styles, "Flexibel"),
		criteria.TimeOfDay,
		criteria.TimeOfDay,
	)
}

func planPrompt(criteria spot.PlannerCriteria, dateTime string) string {
	var timing string
	if dateTime != "" {
		timing = fmt.Sprintf("- **Gewählter Zeitpunkt:** %s (der Plan MUSS für genau diesen Zeitpunkt erstellt werden)", dateTime)
	} else if criteria.DateRange != nil {
		timing = fmt.Sprintf("- **Verfügbarer Zeitraum:** Von %s bis %s", criteria.DateRange.Start, criteria.DateRange.End)
	} else {
		timing = "- **Verfügbarer Zeitraum:** Flexibel innerhalb der nächsten 14 Tage"
	}

	var location string
	if criteria.UserLocation != nil {
		location = fmt.Sprintf("%f, %f", criteria.UserLocation.Lat, criteria.UserLocation.Lon)
	}

	motivs := criteria.Motivs
	if len(motivs) == 0 && criteria.Subject != "" {
		motivs = []string{criteria.Subject}
	}

	return fmt.Sprintf(`
Du bist ein Experte für Fotografie-Planung und ein Creative Director. Deine Aufgabe ist es, einen hyper-detaillierten und umsetzbaren Shooting-Plan zu erstellen. Finde nicht nur irgendeinen Ort, sondern finde den **perfekten Moment** an dem **perfekten Ort**.

**Nutzer-Kriterien:**
- **Kreatives Konzept:**
    - **Motive:** %s
    - **Stile/Stimmungen:** %s
    - **Wichtige Elemente:** %s
- **Zeitliche & Umgebungs-Anforderungen:**
%s
    - **Bevorzugtes Wetter:** %s
    - **Bevorzugtes Licht:** %s
- **Logistische Anforderungen:**
    - **Standort des Nutzers:** %s
    - **Maximaler Umkreis:** %d km

**Deine Denk- und Arbeitsschritte (strikt befolgen!):**

1.  **Saisonale Analyse:** Bestimme die exakte Jahreszeit des Zeitraums und die typischen Gegebenheiten dieser Zeit in der Region. Alle Vorschläge MÜSSEN zu dieser Jahreszeit passen.
2.  **Kandidaten-Suche:** Finde basierend auf allen Kriterien mental 2-3 potenzielle Orte.
3.  **Moment-Optimierung:** Simuliere für jeden Kandidaten die Wetter- und Lichtbedingungen und wähle den EINEN Spot und den EINEN Zeitpunkt mit der höchsten Übereinstimmung zwischen Realität und Vision des Nutzers.
4.  **Plan-Erstellung:** Begründe deine Wahl im "creativeVision"-Feld, sei hyper-spezifisch in Tipps und Shot-Liste und fülle ALLE Felder des JSON-Schemas.

Gib das Ergebnis ausschließlich im geforderten JSON-Format zurück.
`,
		joinOr(motivs, "Keine"),
		joinOr(criteria.Styles, "Flexibel"),
		orDefault(criteria.KeyElements, "Keine spezifischen"),
		timing,
		joinOr(criteria.DesiredWeather, "Flexibel"),
		joinOr(criteria.DesiredLight, "Flexibel"),
		location,
		criteria.Radius,
	)
}

func suggestionsPrompt(criteria spot.PlannerCriteria) string {
	var window string
	if criteria.DateRange != nil {
		window = fmt.Sprintf("von %s bis %s", criteria.DateRange.Start, criteria.DateRange.End)
	} else {
		window = "innerhalb der nächsten 14 Tage"
	}

	var location string
	if criteria.UserLocation != nil {
		location = fmt.Sprintf("%f, %f", criteria.UserLocation.Lat, criteria.UserLocation.Lon)
	}

	return fmt.Sprintf(`
Ein Fotograf plant ein Shooting %s in der Region um den Standort (%s).
Gewünschtes Wetter: %s. Gewünschtes Licht: %s.
Schlage 2-4 konkrete Zeitfenster (Datum und Uhrzeit, ISO 8601) vor, an denen die realistischen Wetter- und Lichtbedingungen in dieser Region und Jahreszeit den Wünschen am nächsten kommen.
Begründe jedes Zeitfenster kurz. Gib eine leere Liste zurück, wenn keine Bedingung plausibel erfüllbar ist.
`,
		window,
		location,
		joinOr(criteria.DesiredWeather, "Flexibel"),
		joinOr(criteria.DesiredLight, "Flexibel"),
	)
}

func geocodePrompt(address string) string {
	return fmt.Sprintf(`Geocodiere die folgende Adresse und gib den verifizierten Namen und die genauen GPS-Koordinaten (lat, lon) zurück: "%s"`, address)
}

func reverseGeocodePrompt(coords shared.Coordinates) string {
	return fmt.Sprintf(`Finde den nächstgelegenen Ort oder die Stadt für die GPS-Koordinaten: Breitengrad %f, Längengrad %f. Gib nur den Namen zurück (z.B. "München, Bayern").`, coords.Lat, coords.Lon)
}

func spotImagePrompt(name, description string) string {
	return fmt.Sprintf(`Generate a highly realistic, photorealistic image that looks like a high-quality photograph taken by a professional photographer of the location known as "%s". The scene must accurately reflect the description: "%s". Avoid any artistic, drawn, or stylized elements. The goal is to show what the place actually looks like in a beautiful, well-composed shot.`, name, description)
}

const analyzeImagePrompt = `Analysiere dieses Foto. Liste die wichtigsten fotografischen Elemente (Komposition, Licht, Perspektive, Bildinhalt) und die dominante Farbpalette als Hex-Codes auf.`

func followUpPrompt(plan *spot.PhotoshootPlan, question string) (string, error) {
	context, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan context: %w", err)
	}
	return fmt.Sprintf(`
Du bist ein virtueller Foto-Assistent. Ein Nutzer hat bereits einen detaillierten Shooting-Plan erhalten.
**Hier ist der Kontext des Plans:**
%s

**Der Nutzer hat nun folgende Folgefrage:**
"%s"

Beantworte die Frage kurz, präzise und hilfreich im Kontext des Plans. Gib nur die Antwort aus, ohne einleitende Sätze wie "Als virtueller Assistent...".
`, context, question), nil
}

func ideasPrompt(motivs []string) string {
	return fmt.Sprintf(`
Erstelle 3 verschiedene, kreative und spezifische Fotoshooting-Ideen basierend auf den folgenden Motiven: %s.
Die Ideen sollten einzigartiger sein als einfache Konzepte wie "Landschaft bei Sonnenuntergang".
Gib für jede Idee einen einprägsamen Titel, eine kurze Beschreibung, 2-3 passende Stile/Stimmungen und ein Beispiel für Schlüsselelemente an.
`, joinOr(motivs, "Freie Wahl"))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

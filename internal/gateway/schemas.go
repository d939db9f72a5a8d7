package gateway

import (
	"github.com/google/generative-ai-go/genai"
)

// Response schemas mirror the JSON shapes the rest of the application
// deserializes into. Descriptions steer the model and are part of the
// contract.

var coordinatesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"lat": {Type: genai.TypeNumber, Description: "Der Breitengrad."},
		"lon": {Type: genai.TypeNumber, Description: "Der Längengrad."},
	},
	Required: []string{"lat", "lon"},
}

var weatherSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"condition":           {Type: genai.TypeString, Description: "Die Wetterbedingung (z.B. Sonnig, Leicht bewölkt, Regen)."},
		"temperature":         {Type: genai.TypeNumber, Description: "Die Temperatur in Grad Celsius."},
		"precipitationChance": {Type: genai.TypeNumber, Description: "Die Regenwahrscheinlichkeit in Prozent."},
		"windSpeed":           {Type: genai.TypeNumber, Description: "Die Windgeschwindigkeit in km/h."},
		"notes":               {Type: genai.TypeString, Description: "Eine kurze Anmerkung, wie das Wetter die Fotografie an diesem Ort beeinflusst."},
	},
	Required: []string{"condition", "temperature", "precipitationChance", "windSpeed"},
}

var photoSpotSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"spots": {
			Type:        genai.TypeArray,
			Description: "Eine Liste von Foto-Spots.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":          {Type: genai.TypeString, Description: "Eine eindeutige ID für den Spot, z.B. 'brandenburger-tor-berlin'."},
					"name":        {Type: genai.TypeString, Description: "Der Name des Foto-Spots."},
					"address":     {Type: genai.TypeString, Description: "Die vollständige, genaue Adresse des Spots (Straße, Hausnummer, PLZ, Stadt)."},
					"description": {Type: genai.TypeString, Description: "Eine kurze, ansprechende Beschreibung des Spots (ca. 30-50 Wörter)."},
					"coordinates": coordinatesSchema,
					"matchingCriteria": {
						Type:        genai.TypeArray,
						Description: "Eine Liste von 3-5 Stichwörtern, die beschreiben, warum dieser Spot zu den Suchkriterien passt.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"weather": weatherSchema,
					"keyAspects": {
						Type:        genai.TypeArray,
						Description: "Eine Liste von 3 stichpunktartigen, fotografischen Highlights oder Besonderheiten des Ortes.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"bestTimeToVisit": {Type: genai.TypeString, Description: "Die beste Tages- oder Jahreszeit für einen Besuch, mit kurzer Begründung."},
					"photoTips": {
						Type:        genai.TypeArray,
						Description: "Eine Liste von 2-3 spezifischen, umsetzbaren Fotografie-Tipps für diesen Ort (Komposition, Technik usw.).",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"proTip": {Type: genai.TypeString, Description: "Ein einzigartiger, sehr spezifischer 'Profi-Tipp' über diesen Ort, den die meisten Leute nicht kennen."},
				},
				Required: []string{"id", "name", "address", "description", "coordinates", "matchingCriteria", "weather", "keyAspects", "bestTimeToVisit", "photoTips", "proTip"},
			},
		},
	},
	Required: []string{"spots"},
}

var photoshootPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":    {Type: genai.TypeString, Description: "Ein kreativer, packender Titel für den Shooting-Plan."},
		"dateTime": {Type: genai.TypeString, Description: "Der gewählte, optimale Zeitpunkt für das Shooting im ISO 8601 Format (YYYY-MM-DDTHH:MM:SS)."},
		"spot": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name":        {Type: genai.TypeString, Description: "Name des vorgeschlagenen Foto-Spots."},
				"description": {Type: genai.TypeString, Description: "Kurze Beschreibung, warum dieser Spot perfekt zur Idee passt."},
				"coordinates": coordinatesSchema,
			},
			Required: []string{"name", "description", "coordinates"},
		},
		"travelPlan": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"departureTime": {Type: genai.TypeString, Description: "Empfohlene Abfahrtszeit (z.B. '16:45 Uhr')."},
				"notes":         {Type: genai.TypeString, Description: "Hinweise zur Anreise, Parken oder dem Weg zum Spot."},
			},
			Required: []string{"departureTime", "notes"},
		},
		"weatherForecast": weatherSchema,
		"lightingAnalysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"condition":      {Type: genai.TypeString, Description: "Beschreibung der zu erwartenden Lichtverhältnisse (z.B. 'Weiches Abendlicht der Goldenen Stunde')."},
				"lightPollution": {Type: genai.TypeString, Description: "Einschätzung der Lichtverschmutzung für Nachtaufnahmen (z.B. 'Gering', 'Moderat', 'Hoch')."},
			},
			Required: []string{"condition", "lightPollution"},
		},
		"equipmentList": {
			Type:        genai.TypeArray,
			Description: "Eine Liste empfohlener Ausrüstung (Kamera, Objektive, Stativ, Filter, etc.).",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"notesAndTips": {
			Type:        genai.TypeArray,
			Description: "3-5 konkrete, kreative Profi-Tipps für das Shooting, z.B. zu Kameraeinstellungen oder Komposition.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"creativeVision": {
			Type:        genai.TypeString,
			Description: "Ein kurzer, inspirierender Text (2-3 Sätze), der die kreative Vision des Shootings zusammenfasst und den Zeitpunkt begründet.",
		},
		"shotList": {
			Type:        genai.TypeArray,
			Description: "Eine Liste von 3-4 konkreten, umsetzbaren Foto-Ideen. Jeder Punkt beschreibt eine spezifische Szene oder Komposition.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"moodImagePrompts": {
			Type:        genai.TypeArray,
			Description: "Eine Liste von genau ZWEI detaillierten, englischen Prompts für ein KI-Bildgenerierungsmodell.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"title", "dateTime", "spot", "travelPlan", "weatherForecast", "lightingAnalysis", "equipmentList", "notesAndTips", "creativeVision", "shotList", "moodImagePrompts"},
}

var suggestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestions": {
			Type:        genai.TypeArray,
			Description: "Eine Liste von 2-4 vorgeschlagenen Zeitfenstern.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"dateTime": {Type: genai.TypeString, Description: "Der vorgeschlagene Zeitpunkt im ISO 8601 Format."},
					"reason":   {Type: genai.TypeString, Description: "Warum dieses Zeitfenster zu Wetter- und Lichtwünschen passt."},
				},
				Required: []string{"dateTime", "reason"},
			},
		},
	},
	Required: []string{"suggestions"},
}

var geocodeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name": {Type: genai.TypeString, Description: "Der verifizierte Name des Ortes (z.B. 'Berlin, Deutschland')."},
		"lat":  {Type: genai.TypeNumber, Description: "Der Breitengrad."},
		"lon":  {Type: genai.TypeNumber, Description: "Der Längengrad."},
	},
	Required: []string{"name", "lat", "lon"},
}

var creativeIdeaSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"ideas": {
			Type:        genai.TypeArray,
			Description: "Eine Liste von 3 kreativen Foto-Ideen.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString, Description: "Ein kurzer, packender Titel für die Idee."},
					"description": {Type: genai.TypeString, Description: "Eine kurze, inspirierende Beschreibung (1-2 Sätze)."},
					"styles": {
						Type:        genai.TypeArray,
						Description: "Eine Liste von 2-3 passenden Stilen oder Stimmungen.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"keyElements": {Type: genai.TypeString, Description: "Ein kurzes Beispiel für wichtige Elemente im Bild."},
				},
				Required: []string{"title", "description", "styles", "keyElements"},
			},
		},
	},
	Required: []string{"ideas"},
}

var imageAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"photographicElements": {
			Type:        genai.TypeArray,
			Description: "Die wichtigsten fotografischen Elemente und Kompositionsmerkmale des Bildes.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
		"colorPalette": {
			Type:        genai.TypeArray,
			Description: "Die dominanten Farben des Bildes als Hex-Codes.",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"photographicElements", "colorPalette"},
}

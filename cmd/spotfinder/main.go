package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"

	"spotfinder-ai/internal/config"
	"spotfinder-ai/internal/connectivity"
	"spotfinder-ai/internal/controller"
	"spotfinder-ai/internal/database"
	"spotfinder-ai/internal/gateway"
	"spotfinder-ai/internal/metrics"
	"spotfinder-ai/internal/profile"
	"spotfinder-ai/internal/progress"
	"spotfinder-ai/internal/shared"
	"spotfinder-ai/internal/spot"
	"spotfinder-ai/internal/storage"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		stdlog.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	metricsStore := metrics.NewStore(db.SQL)

	gw, err := gateway.NewGeminiClient(ctx, cfg, metricsStore)
	if err != nil {
		stdlog.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer gw.Close()

	monitor := connectivity.NewMonitor(connectivity.DialProbe(cfg.ProbeAddress, 3*time.Second))
	defer monitor.Close()

	kv := storage.NewSQLiteKV(db.SQL)
	profileStore := profile.NewStore(kv, gw, monitor.Online)
	if profileStore.CurrentUser() == nil {
		if _, err := profileStore.Login(cfg.DefaultUserID); err != nil {
			stdlog.Fatalf("Failed to open profile: %v", err)
		}
	}

	ctrl := controller.New(gw, monitor, cfg.LoadingMessageInterval)
	defer ctrl.Close()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "search":
		runSearch(ctx, ctrl, os.Args[2:])
	case "suggest":
		runSuggest(ctx, ctrl, os.Args[2:])
	case "plan":
		runPlan(ctx, ctrl, gw, profileStore, cfg, os.Args[2:])
	case "followup":
		runFollowUp(ctx, gw, profileStore, os.Args[2:])
	case "ideas":
		runIdeas(ctx, gw, os.Args[2:])
	case "locate":
		runLocate(ctx, gw, os.Args[2:])
	case "analyze":
		runAnalyze(ctx, gw, os.Args[2:])
	case "spot-image":
		runSpotImage(ctx, gw, cfg, os.Args[2:])
	case "add-visited":
		runAddVisited(ctx, profileStore, os.Args[2:])
	case "profile":
		printProfile(profileStore)
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := metricsStore.Cleanup(*days)
		if err != nil {
			stdlog.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old metric records.\n", affected)
	case "usage":
		usageCmd := flag.NewFlagSet("usage", flag.ExitOnError)
		days := usageCmd.Int("days", 7, "Aggregate the last N days")
		usageCmd.Parse(os.Args[2:])

		usage, err := metricsStore.GetDailyUsage(*days)
		if err != nil {
			stdlog.Fatalf("Failed to read usage: %v", err)
		}
		for _, day := range usage {
			fmt.Printf("%s  calls=%d  prompt=%d  completion=%d\n",
				day.Date, day.TotalCalls, day.TotalPrompt, day.TotalCompletion)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runSearch(ctx context.Context, ctrl *controller.Controller, args []string) {
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	motivs := searchCmd.String("motivs", "", "Comma-separated motif ids (e.g. landschaft,astro)")
	lat := searchCmd.Float64("lat", 0, "Latitude of the search center")
	lon := searchCmd.Float64("lon", 0, "Longitude of the search center")
	radius := searchCmd.Int("radius", 20, "Search radius in km")
	timeOfDay := searchCmd.String("time", "Nachmittag", "Time of day")
	styles := searchCmd.String("styles", "", "Comma-separated styles")
	searchCmd.Parse(args)

	criteria := spot.DefaultSearchCriteria()
	criteria.Motivs = splitList(*motivs)
	criteria.Styles = splitList(*styles)
	criteria.Radius = *radius
	criteria.TimeOfDay = *timeOfDay
	ctrl.SetCriteria(criteria)
	ctrl.SetUserLocation(shared.Coordinates{Lat: *lat, Lon: *lon})

	ctrl.Search(ctx)
	state := ctrl.Snapshot()
	if state.Error != "" {
		stdlog.Fatalf("%s", state.Error)
	}
	for _, sp := range state.Spots {
		fmt.Printf("%-40s %6.1f km  %s\n", sp.Name, sp.Distance, sp.Address)
		fmt.Printf("    %s\n", sp.Description)
	}
}

func runSuggest(ctx context.Context, ctrl *controller.Controller, args []string) {
	suggestCmd := flag.NewFlagSet("suggest", flag.ExitOnError)
	criteria := plannerFlags(suggestCmd)
	suggestCmd.Parse(args)

	ctrl.SetPlannerCriteria(criteria())
	ctrl.GetSuggestions(ctx)
	state := ctrl.Snapshot()
	if state.Error != "" {
		stdlog.Fatalf("%s", state.Error)
	}
	for _, s := range state.Suggestions {
		fmt.Printf("%s  %s\n", s.DateTime, s.Reason)
	}
}

func runPlan(ctx context.Context, ctrl *controller.Controller, gw gateway.Client, profileStore *profile.Store, cfg *config.Config, args []string) {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	criteria := plannerFlags(planCmd)
	dateTime := planCmd.String("datetime", "", "Shooting moment (empty lets the model choose)")
	save := planCmd.Bool("save", false, "Save the plan to the profile")
	mood := planCmd.Bool("mood", false, "Render the plan's moodboard images")
	planCmd.Parse(args)

	ctrl.SetPlannerCriteria(criteria())
	ctrl.GeneratePlan(ctx, *dateTime)
	state := ctrl.Snapshot()
	if state.Error != "" || state.Plan == nil {
		stdlog.Fatalf("%s", state.Error)
	}

	plan := state.Plan
	fmt.Printf("%s\n%s, %s\n\n", plan.Title, plan.Spot.Name, plan.DateTime)
	fmt.Printf("Abfahrt: %s (%s)\n", plan.TravelPlan.DepartureTime, plan.TravelPlan.Notes)
	fmt.Printf("Licht: %s, Lichtverschmutzung: %s\n\n", plan.LightingAnalysis.Condition, plan.LightingAnalysis.LightPollution)
	fmt.Printf("Vision: %s\n\nShotlist:\n", plan.CreativeVision)
	for _, shot := range plan.ShotList {
		fmt.Printf("  - %s\n", shot)
	}
	fmt.Println("\nPackliste:")
	for _, item := range plan.EquipmentList {
		fmt.Printf("  - %s\n", item)
	}

	if *mood {
		renderMoodImages(ctx, gw, cfg, plan.MoodImagePrompts)
	}

	if *save {
		if err := profileStore.SavePlan(*plan); err != nil {
			stdlog.Fatalf("Failed to save plan: %v", err)
		}
		fmt.Println("\nPlan erfolgreich in deinem Profil gespeichert!")
	}
}

// renderMoodImages loads the plan's moodboard through the lazy loader, one
// key per prompt. A failed slot is reported and skipped, like the original
// moodboard does.
func renderMoodImages(ctx context.Context, gw gateway.Client, cfg *config.Config, prompts []string) {
	if len(prompts) == 0 {
		return
	}
	fmt.Println("\nMoodboard:")

	loader := progress.NewLoader(cfg.ProgressTickInterval)
	defer loader.Close()

	for i, prompt := range prompts {
		key := fmt.Sprintf("mood-%d", i)
		loader.Load(ctx, key, func(ctx context.Context) (string, error) {
			images, err := gw.GenerateMoodImages(ctx, []string{prompt})
			if err != nil {
				return "", err
			}
			if len(images) == 0 || images[0] == nil {
				return "", errors.New("Das Moodboard-Bild konnte nicht erstellt werden.")
			}
			return *images[0], nil
		})
	}

	for i := range prompts {
		key := fmt.Sprintf("mood-%d", i)
		<-loader.Done(key)
		state, _ := loader.State(key)
		if state.Err != "" {
			fmt.Printf("  %s: %s\n", key, state.Err)
			continue
		}
		out := key + ".b64"
		if err := os.WriteFile(out, []byte(state.Image), 0o644); err != nil {
			stdlog.Fatalf("Failed to write mood image: %v", err)
		}
		fmt.Printf("  %s -> %s\n", key, out)
	}
}

func runFollowUp(ctx context.Context, gw gateway.Client, profileStore *profile.Store, args []string) {
	followUpCmd := flag.NewFlagSet("followup", flag.ExitOnError)
	planID := followUpCmd.String("plan", "", "ID of a saved plan")
	question := followUpCmd.String("question", "", "Question about the plan")
	followUpCmd.Parse(args)

	data := profileStore.Data()
	var plan *spot.PhotoshootPlan
	for i := range data.SavedPlans {
		if data.SavedPlans[i].ID == *planID {
			plan = &data.SavedPlans[i]
			break
		}
	}
	if plan == nil {
		stdlog.Fatalf("Kein gespeicherter Plan mit der ID %q gefunden.", *planID)
	}

	answer, err := gw.GetFollowUpAnswer(ctx, plan, *question)
	if err != nil {
		stdlog.Fatalf("%s", err)
	}
	fmt.Println(answer)
}

func runLocate(ctx context.Context, gw gateway.Client, args []string) {
	locateCmd := flag.NewFlagSet("locate", flag.ExitOnError)
	lat := locateCmd.Float64("lat", 0, "Latitude")
	lon := locateCmd.Float64("lon", 0, "Longitude")
	locateCmd.Parse(args)

	name, err := gw.ReverseGeocode(ctx, shared.Coordinates{Lat: *lat, Lon: *lon})
	if err != nil {
		stdlog.Fatalf("%s", err)
	}
	fmt.Println(name)
}

func runAnalyze(ctx context.Context, gw gateway.Client, args []string) {
	analyzeCmd := flag.NewFlagSet("analyze", flag.ExitOnError)
	file := analyzeCmd.String("file", "", "Path to a JPEG image")
	analyzeCmd.Parse(args)

	raw, err := os.ReadFile(*file)
	if err != nil {
		stdlog.Fatalf("Failed to read image: %v", err)
	}

	analysis, err := gw.AnalyzeImage(ctx, base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		stdlog.Fatalf("%s", err)
	}
	fmt.Println("Fotografische Elemente:")
	for _, el := range analysis.PhotographicElements {
		fmt.Printf("  - %s\n", el)
	}
	fmt.Println("Farbpalette:")
	for _, color := range analysis.ColorPalette {
		fmt.Printf("  - %s\n", color)
	}
}

func runIdeas(ctx context.Context, gw gateway.Client, args []string) {
	ideasCmd := flag.NewFlagSet("ideas", flag.ExitOnError)
	motivs := ideasCmd.String("motivs", "", "Comma-separated motif ids")
	ideasCmd.Parse(args)

	ideas, err := gw.GenerateCreativeIdeas(ctx, splitList(*motivs))
	if err != nil {
		stdlog.Fatalf("%s", err)
	}
	for _, idea := range ideas {
		fmt.Printf("%s\n  %s\n  Stile: %s\n", idea.Title, idea.Description, strings.Join(idea.Styles, ", "))
	}
}

// runSpotImage renders a preview image through the lazy loader so the user
// sees the simulated progress while the model works.
func runSpotImage(ctx context.Context, gw gateway.Client, cfg *config.Config, args []string) {
	imageCmd := flag.NewFlagSet("spot-image", flag.ExitOnError)
	name := imageCmd.String("name", "", "Spot name")
	description := imageCmd.String("description", "", "Spot description")
	out := imageCmd.String("out", "spot.b64", "Output file for the base64 payload")
	imageCmd.Parse(args)

	loader := progress.NewLoader(cfg.ProgressTickInterval)
	defer loader.Close()

	loader.Load(ctx, *name, func(ctx context.Context) (string, error) {
		return gw.GenerateSpotImage(ctx, *name, *description)
	})

	done := loader.Done(*name)
	for {
		select {
		case <-done:
			state, _ := loader.State(*name)
			if state.Err != "" {
				stdlog.Fatalf("%s", state.Err)
			}
			fmt.Printf("\r100%%\n")
			if err := os.WriteFile(*out, []byte(state.Image), 0o644); err != nil {
				stdlog.Fatalf("Failed to write image: %v", err)
			}
			fmt.Printf("Written to %s\n", *out)
			return
		case <-time.After(cfg.ProgressTickInterval):
			if state, ok := loader.State(*name); ok {
				fmt.Printf("\r%3d%%", state.Progress)
			}
		}
	}
}

func runAddVisited(ctx context.Context, profileStore *profile.Store, args []string) {
	addCmd := flag.NewFlagSet("add-visited", flag.ExitOnError)
	name := addCmd.String("name", "", "Spot name")
	address := addCmd.String("address", "", "Spot address (geocoded)")
	description := addCmd.String("description", "", "Optional description")
	addCmd.Parse(args)

	sp, err := profileStore.AddVisitedSpot(ctx, *name, *address, *description)
	if err != nil {
		stdlog.Fatalf("%s", err)
	}
	fmt.Printf("Besucht: %s (%.4f, %.4f)\n", sp.Name, sp.Coordinates.Lat, sp.Coordinates.Lon)
}

func printProfile(profileStore *profile.Store) {
	user := profileStore.CurrentUser()
	data := profileStore.Data()
	fmt.Printf("Profil: %s\n\n", user.Username)
	fmt.Printf("Favoriten (%d):\n", len(data.Favorites))
	for _, sp := range data.Favorites {
		fmt.Printf("  - %s (%s)\n", sp.Name, sp.Address)
	}
	fmt.Printf("\nBesucht (%d):\n", len(data.Visited))
	for _, sp := range data.Visited {
		fmt.Printf("  - %s (%s)\n", sp.Name, sp.Address)
	}
	fmt.Printf("\nGespeicherte Pläne (%d):\n", len(data.SavedPlans))
	for _, plan := range data.SavedPlans {
		fmt.Printf("  - %s (%s)\n", plan.Title, plan.DateTime)
	}
}

// plannerFlags registers the shared planner flags and returns a constructor
// reading them after Parse.
func plannerFlags(fs *flag.FlagSet) func() spot.PlannerCriteria {
	subject := fs.String("subject", "", "Shoot subject (e.g. Landschaft)")
	styles := fs.String("styles", "", "Comma-separated styles")
	keyElements := fs.String("elements", "", "Key elements of the shot")
	weather := fs.String("weather", "", "Comma-separated desired weather")
	light := fs.String("light", "", "Comma-separated desired light")
	lat := fs.Float64("lat", 0, "Latitude")
	lon := fs.Float64("lon", 0, "Longitude")
	radius := fs.Int("radius", 25, "Search radius in km")
	from := fs.String("from", "", "Start of the date range (YYYY-MM-DD)")
	to := fs.String("to", "", "End of the date range (YYYY-MM-DD)")

	return func() spot.PlannerCriteria {
		criteria := spot.DefaultPlannerCriteria()
		criteria.Subject = *subject
		criteria.Styles = splitList(*styles)
		criteria.KeyElements = *keyElements
		criteria.DesiredWeather = splitList(*weather)
		criteria.DesiredLight = splitList(*light)
		criteria.Radius = *radius
		criteria.UserLocation = &shared.Coordinates{Lat: *lat, Lon: *lon}
		if *from != "" && *to != "" {
			criteria.DateRange = &spot.DateRange{Start: *from, End: *to}
		}
		return criteria
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printUsage() {
	fmt.Println("Usage: spotfinder <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  search           Find photo spots around a location")
	fmt.Println("  suggest          Suggest shooting time slots for the planner criteria")
	fmt.Println("  plan             Generate a full photoshoot plan (-mood renders the moodboard)")
	fmt.Println("  followup         Ask a question about a saved plan")
	fmt.Println("  ideas            Generate creative shoot ideas for motifs")
	fmt.Println("  locate           Name the nearest town for coordinates")
	fmt.Println("  analyze          Extract photographic elements from an image")
	fmt.Println("  spot-image       Render a preview image for a spot")
	fmt.Println("  add-visited      Record a spot visited outside the app")
	fmt.Println("  profile          Show favorites, visited spots and saved plans")
	fmt.Println("  usage            Show aggregated token usage per day")
	fmt.Println("  metrics-cleanup  Remove old metric records")
}

package controller

import (
	"context"
	"sync"
	"time"

	"spotfinder-ai/internal/connectivity"
	"spotfinder-ai/internal/geo"
	"spotfinder-ai/internal/shared"
	"spotfinder-ai/internal/spot"

	"github.com/rs/zerolog/log"
)

// Mode selects between the two discovery flows.
type Mode string

const (
	ModeQuick   Mode = "quick"
	ModePlanner Mode = "planner"
)

// View is the screen currently shown.
type View string

const (
	ViewSearch  View = "search"
	ViewResults View = "results"
	ViewDetail  View = "detail"
	ViewProfile View = "profile"
)

// PlannerPhase tracks where the planner flow currently is.
type PlannerPhase string

const (
	PhaseInput       PlannerPhase = "input"
	PhaseSuggestions PlannerPhase = "suggestions"
	PhasePlan        PlannerPhase = "plan"
)

const (
	quickTotalSteps   = 4
	plannerInputSteps = 3

	defaultMessageInterval = 2500 * time.Millisecond
)

// User-facing German messages. The gateway already humanizes its own errors;
// these cover local validation and gating.
const (
	msgSelectMotiv       = "Bitte wähle mindestens ein Motiv."
	msgProvideLocation   = "Bitte gib deinen Standort an."
	msgLocationFirst     = "Bitte gib zuerst deinen Standort an."
	msgConceptIncomplete = "Bitte wähle ein Thema und mindestens einen Stil."
	msgConditionsMissing = "Bitte wähle Wetter- und Lichtbedingungen aus."
	msgNoTimeSlots       = "Leider konnten keine passenden Zeitfenster gefunden werden. Versuche, die Kriterien anzupassen (z.B. anderes Wetter oder Licht)."
	msgNoPlanYet         = "Bitte erstelle zuerst einen Shooting-Plan."
	msgOffline           = "Du bist offline. Diese Funktion ist ohne Internetverbindung nicht verfügbar."
	msgUnexpected        = "Ein unerwarteter Fehler ist aufgetreten."
)

// Gateway is the slice of the AI gateway the controller drives.
type Gateway interface {
	FindPhotoSpots(ctx context.Context, criteria spot.SearchCriteria, location shared.Coordinates) ([]spot.PhotoSpot, error)
	GetTimeSlotSuggestions(ctx context.Context, criteria spot.PlannerCriteria) ([]spot.TimeSlotSuggestion, error)
	GeneratePhotoshootPlan(ctx context.Context, criteria spot.PlannerCriteria, dateTime string) (*spot.PhotoshootPlan, error)
	GetFollowUpAnswer(ctx context.Context, plan *spot.PhotoshootPlan, question string) (string, error)
}

// State is the full observable application state. Snapshot returns a copy;
// callers must treat slices and pointers as read-only.
type State struct {
	Mode            Mode
	View            View
	PlannerPhase    PlannerPhase
	Step            int
	PlannerStep     int
	Criteria        spot.SearchCriteria
	PlannerCriteria spot.PlannerCriteria
	Spots           []spot.PhotoSpot
	SelectedSpot    *spot.PhotoSpot
	Plan            *spot.PhotoshootPlan
	FollowUpAnswer  string
	Suggestions     []spot.TimeSlotSuggestion
	UserLocation    *shared.Coordinates
	IsLoading       bool
	LoadingMessage  string
	Error           string
	Online          bool
}

// Controller owns the wizard state machine for both flows. All state lives
// behind a single mutex; the submit operations block the calling goroutine
// and a generation counter discards results that a reset or mode switch
// overtook mid-flight.
type Controller struct {
	mu              sync.Mutex
	gw              Gateway
	now             func() time.Time
	messageInterval time.Duration

	generation uint64
	state      State
	msgCancel  chan struct{}
	done       chan struct{}
}

// New creates a Controller in the quick-search flow's initial state. The
// monitor may be nil, in which case the controller assumes connectivity.
func New(gw Gateway, monitor *connectivity.Monitor, messageInterval time.Duration) *Controller {
	if messageInterval <= 0 {
		messageInterval = defaultMessageInterval
	}
	c := &Controller{
		gw:              gw,
		now:             time.Now,
		messageInterval: messageInterval,
		done:            make(chan struct{}),
		state: State{
			Mode:            ModeQuick,
			View:            ViewSearch,
			PlannerPhase:    PhaseInput,
			Step:            1,
			PlannerStep:     1,
			Criteria:        spot.DefaultSearchCriteria(),
			PlannerCriteria: spot.DefaultPlannerCriteria(),
			Spots:           []spot.PhotoSpot{},
			Suggestions:     []spot.TimeSlotSuggestion{},
			Online:          true,
		},
	}
	if monitor != nil {
		c.state.Online = monitor.Online()
		go c.watchConnectivity(monitor.Subscribe())
	}
	return c
}

// Close stops the loading ticker and the connectivity watcher.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.done:
	default:
		close(c.done)
	}
	c.stopLoadingLocked()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetCriteria replaces the quick-search criteria.
func (c *Controller) SetCriteria(criteria spot.SearchCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Criteria = criteria
}

// SetPlannerCriteria replaces the planner criteria.
func (c *Controller) SetPlannerCriteria(criteria spot.PlannerCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PlannerCriteria = criteria
}

// SetUserLocation stores the resolved location for the quick search.
func (c *Controller) SetUserLocation(coords shared.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.UserLocation = &coords
}

// NextStep advances the quick-search wizard. Each step validates its input
// before advancing; the last step submits the search.
func (c *Controller) NextStep(ctx context.Context) {
	c.mu.Lock()
	switch c.state.Step {
	case 1:
		if len(c.state.Criteria.Motivs) == 0 {
			c.state.Error = msgSelectMotiv
			c.mu.Unlock()
			return
		}
	case 2:
		if c.state.UserLocation == nil {
			c.state.Error = msgProvideLocation
			c.mu.Unlock()
			return
		}
	}
	if c.state.Step < quickTotalSteps {
		c.state.Step++
		c.state.Error = ""
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.Search(ctx)
}

// PrevStep moves the quick-search wizard one step back, flooring at 1.
func (c *Controller) PrevStep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Step > 1 {
		c.state.Step--
	}
}

// NextPlannerStep advances the planner wizard. The last input step submits
// the time-slot suggestion request.
func (c *Controller) NextPlannerStep(ctx context.Context) {
	c.mu.Lock()
	switch c.state.PlannerStep {
	case 1:
		if c.state.PlannerCriteria.Subject == "" || len(c.state.PlannerCriteria.Styles) == 0 {
			c.state.Error = msgConceptIncomplete
			c.mu.Unlock()
			return
		}
	case 2:
		if len(c.state.PlannerCriteria.DesiredWeather) == 0 || len(c.state.PlannerCriteria.DesiredLight) == 0 {
			c.state.Error = msgConditionsMissing
			c.mu.Unlock()
			return
		}
	}
	if c.state.PlannerStep < plannerInputSteps {
		c.state.PlannerStep++
		c.state.Error = ""
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.GetSuggestions(ctx)
}

// PrevPlannerStep moves the planner wizard one step back, flooring at 1.
func (c *Controller) PrevPlannerStep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.PlannerStep > 1 {
		c.state.PlannerStep--
	}
}

// Search runs the quick search. Preconditions are checked locally first; a
// violation sets the error, jumps to the offending step and never reaches
// the gateway.
func (c *Controller) Search(ctx context.Context) {
	c.mu.Lock()
	if !c.state.Online {
		c.state.Error = msgOffline
		c.mu.Unlock()
		return
	}
	if c.state.UserLocation == nil {
		c.state.Error = msgProvideLocation
		c.state.Step = 2
		c.mu.Unlock()
		return
	}
	if len(c.state.Criteria.Motivs) == 0 {
		c.state.Error = msgSelectMotiv
		c.state.Step = 1
		c.mu.Unlock()
		return
	}
	gen := c.generation
	criteria := c.state.Criteria
	location := *c.state.UserLocation
	c.state.Error = ""
	c.state.View = ViewSearch
	c.startLoadingLocked(spot.QuickSearchLoadingMessages)
	c.mu.Unlock()

	spots, err := c.gw.FindPhotoSpots(ctx, criteria, location)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		log.Debug().Msg("discarding search result from superseded generation")
		return
	}
	c.stopLoadingLocked()
	if err != nil {
		c.state.Error = errorMessage(err)
		return
	}
	for i := range spots {
		spots[i].Distance = geo.DisplayDistance(geo.Distance(location, spots[i].Coordinates))
	}
	c.state.Spots = spots
	c.state.View = ViewResults
}

// GetSuggestions asks for shooting windows matching the planner criteria.
func (c *Controller) GetSuggestions(ctx context.Context) {
	c.mu.Lock()
	if !c.state.Online {
		c.state.Error = msgOffline
		c.mu.Unlock()
		return
	}
	if c.state.PlannerCriteria.UserLocation == nil {
		c.state.Error = msgLocationFirst
		c.mu.Unlock()
		return
	}
	gen := c.generation
	criteria := c.state.PlannerCriteria
	c.state.Error = ""
	c.state.PlannerPhase = PhaseSuggestions
	c.startLoadingLocked(spot.SuggestionLoadingMessages)
	c.mu.Unlock()

	suggestions, err := c.gw.GetTimeSlotSuggestions(ctx, criteria)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		log.Debug().Msg("discarding suggestions from superseded generation")
		return
	}
	c.stopLoadingLocked()
	if err != nil {
		c.state.Error = errorMessage(err)
		return
	}
	if len(suggestions) == 0 {
		c.state.Error = msgNoTimeSlots
		return
	}
	c.state.Suggestions = suggestions
	c.state.PlannerStep = plannerInputSteps + 1
}

// GeneratePlan creates a full shoot plan for the chosen moment. An empty
// dateTime lets the model pick the optimal one within the date range.
func (c *Controller) GeneratePlan(ctx context.Context, dateTime string) {
	c.mu.Lock()
	if !c.state.Online {
		c.state.Error = msgOffline
		c.mu.Unlock()
		return
	}
	gen := c.generation
	criteria := c.state.PlannerCriteria
	c.state.Error = ""
	c.state.PlannerPhase = PhasePlan
	c.startLoadingLocked(spot.PlannerLoadingMessages)
	c.mu.Unlock()

	plan, err := c.gw.GeneratePhotoshootPlan(ctx, criteria, dateTime)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		log.Debug().Msg("discarding plan from superseded generation")
		return
	}
	c.stopLoadingLocked()
	if err != nil {
		c.state.Error = errorMessage(err)
		c.state.Plan = nil
		return
	}
	plan.ID = spot.NewID(plan.Title, c.now())
	c.state.Plan = plan
}

// AskFollowUp answers a question in the context of the generated plan.
func (c *Controller) AskFollowUp(ctx context.Context, question string) {
	c.mu.Lock()
	if !c.state.Online {
		c.state.Error = msgOffline
		c.mu.Unlock()
		return
	}
	if c.state.Plan == nil {
		c.state.Error = msgNoPlanYet
		c.mu.Unlock()
		return
	}
	gen := c.generation
	plan := c.state.Plan
	c.state.Error = ""
	c.mu.Unlock()

	answer, err := c.gw.GetFollowUpAnswer(ctx, plan, question)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		log.Debug().Msg("discarding follow-up answer from superseded generation")
		return
	}
	if err != nil {
		c.state.Error = errorMessage(err)
		return
	}
	c.state.FollowUpAnswer = answer
}

// SelectSpot opens the detail view for a result.
func (c *Controller) SelectSpot(sp spot.PhotoSpot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SelectedSpot = &sp
	c.state.View = ViewDetail
}

// BackToResults leaves the detail view.
func (c *Controller) BackToResults() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SelectedSpot = nil
	c.state.View = ViewResults
}

// GoToProfile opens the profile view. The mode is forced back to quick so
// no planner state shows through behind it.
func (c *Controller) GoToProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.View = ViewProfile
	c.state.Mode = ModeQuick
}

// SwitchMode changes the active flow. Both flows are reset first, so no
// state leaks across the switch.
func (c *Controller) SwitchMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Online {
		c.state.Error = msgOffline
		return
	}
	if mode != ModeQuick && mode != ModePlanner {
		return
	}
	c.hardResetLocked()
	c.state.Mode = mode
}

// ResetQuickSearch returns the quick-search flow to its initial state.
func (c *Controller) ResetQuickSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetQuickLocked()
}

// ResetPlanner returns the planner flow to its initial state.
func (c *Controller) ResetPlanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetPlannerLocked()
}

// HardReset resets both flows and returns to the quick-search mode.
func (c *Controller) HardReset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hardResetLocked()
}

func (c *Controller) resetQuickLocked() {
	c.generation++
	c.stopLoadingLocked()
	c.state.Step = 1
	c.state.Criteria = spot.DefaultSearchCriteria()
	c.state.Spots = []spot.PhotoSpot{}
	c.state.SelectedSpot = nil
	c.state.Error = ""
	c.state.View = ViewSearch
}

func (c *Controller) resetPlannerLocked() {
	c.generation++
	c.stopLoadingLocked()
	c.state.Plan = nil
	c.state.FollowUpAnswer = ""
	c.state.PlannerPhase = PhaseInput
	c.state.PlannerStep = 1
	c.state.PlannerCriteria = spot.DefaultPlannerCriteria()
	c.state.Suggestions = []spot.TimeSlotSuggestion{}
}

func (c *Controller) hardResetLocked() {
	c.resetQuickLocked()
	c.resetPlannerLocked()
	c.state.Mode = ModeQuick
}

// watchConnectivity applies the offline policy on every transition.
func (c *Controller) watchConnectivity(sub <-chan bool) {
	for {
		select {
		case <-c.done:
			return
		case online, ok := <-sub:
			if !ok {
				return
			}
			c.mu.Lock()
			c.applyOfflinePolicyLocked(online)
			c.mu.Unlock()
		}
	}
}

// applyOfflinePolicyLocked forces the profile view while offline and cancels
// in-flight work. Coming back online only clears the gate; nothing retries.
func (c *Controller) applyOfflinePolicyLocked(online bool) {
	c.state.Online = online
	if online {
		if c.state.Error == msgOffline {
			c.state.Error = ""
		}
		return
	}
	c.generation++
	c.stopLoadingLocked()
	c.state.View = ViewProfile
	c.state.Error = msgOffline
}

// startLoadingLocked begins the loading state and rotates the given message
// list from the top.
func (c *Controller) startLoadingLocked(messages []string) {
	c.stopLoadingLocked()
	c.state.IsLoading = true
	c.state.LoadingMessage = messages[0]

	cancel := make(chan struct{})
	c.msgCancel = cancel
	go func() {
		ticker := time.NewTicker(c.messageInterval)
		defer ticker.Stop()
		i := 1
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				c.mu.Lock()
				select {
				case <-cancel:
					c.mu.Unlock()
					return
				default:
				}
				c.state.LoadingMessage = messages[i%len(messages)]
				i++
				c.mu.Unlock()
			}
		}
	}()
}

func (c *Controller) stopLoadingLocked() {
	if c.msgCancel != nil {
		close(c.msgCancel)
		c.msgCancel = nil
	}
	c.state.IsLoading = false
	c.state.LoadingMessage = ""
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return msgUnexpected
}

package service

import (
	"context"
	"sort"
	"time"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// recentWindow is the reporting week: a strict wall-clock cutoff of
// now - 7d. A session dated exactly on the cutoff does not count.
const recentWindow = 7 * 24 * time.Hour

// HistoryEntry is one logged exercise occurrence surfaced by the
// per-exercise history view.
type HistoryEntry struct {
	Date       time.Time          `json:"date"`
	ClientID   primitive.ObjectID `json:"clientId"`
	ClientName string             `json:"clientName"`
	Sets       *int               `json:"sets,omitempty"`
	Reps       *int               `json:"reps,omitempty"`
	Weight     *float64           `json:"weight,omitempty"`
	Duration   *float64           `json:"duration,omitempty"`
	SetDetails []domain.SetDetail `json:"setDetails,omitempty"`
}

// ExerciseClientStats aggregates one client's history for one exercise.
type ExerciseClientStats struct {
	ClientID    primitive.ObjectID `json:"clientId"`
	Name        string             `json:"name"`
	Sessions    int                `json:"sessions"`
	MaxWeight   float64            `json:"maxWeight"`
	TotalVolume float64            `json:"totalVolume"`
}

// StrengthTrend is the first-to-last progression of one weight exercise.
type StrengthTrend struct {
	Exercise string    `json:"exercise"`
	First    float64   `json:"first"`
	Last     float64   `json:"last"`
	Change   float64   `json:"change"`
	Sessions int       `json:"sessions"`
	FirstAt  time.Time `json:"firstAt"`
	LastAt   time.Time `json:"lastAt"`
}

// MeasurementTrend is the oldest-to-newest change of one tracked body
// metric. Fields with fewer than two readings are omitted, not zeroed.
type MeasurementTrend struct {
	Field  string  `json:"field"`
	First  float64 `json:"first"`
	Last   float64 `json:"last"`
	Change float64 `json:"change"`
}

// ClientReport is the per-client progress roll-up.
type ClientReport struct {
	ClientID     primitive.ObjectID `json:"clientId"`
	Sessions     int                `json:"sessions"`
	TotalMinutes int                `json:"totalMinutes"`
	Programs     int                `json:"programs"`
	ThisWeek     int                `json:"thisWeek"`
	Strength     []StrengthTrend    `json:"strength"`
}

// ClientActivity classifies a client's trailing-week activity for the
// fleet report: >=3 recent sessions is "high", any is "some", none "none".
type ClientActivity struct {
	ClientID     primitive.ObjectID `json:"clientId"`
	Name         string             `json:"name"`
	Sessions     int                `json:"sessions"`
	Recent       int                `json:"recent"`
	TotalMinutes int                `json:"totalMinutes"`
	Activity     string             `json:"activity"`
}

// OverviewReport is the fleet-wide roll-up.
type OverviewReport struct {
	ActiveClients int              `json:"activeClients"`
	TotalSessions int              `json:"totalSessions"`
	TotalMinutes  int              `json:"totalMinutes"`
	ThisWeek      int              `json:"thisWeek"`
	Clients       []ClientActivity `json:"clients"`
}

// ProgressService derives read-only progress views over assignments,
// session logs and measurements. It never mutates anything and never fails
// on missing numeric fields: absent values count as zero in sums and are
// excluded from max computations.
type ProgressService interface {
	// ExerciseHistory returns every logged occurrence tied to the exercise
	// (matched by denormalized id, falling back to exact name), newest
	// first and unbounded, plus per-client stats. Display windowing is the
	// caller's concern.
	ExerciseHistory(ctx context.Context, exerciseID primitive.ObjectID) ([]HistoryEntry, []ExerciseClientStats, error)
	ClientReport(ctx context.Context, clientID primitive.ObjectID) (*ClientReport, error)
	MeasurementProgress(ctx context.Context, clientID primitive.ObjectID) ([]MeasurementTrend, error)
	Overview(ctx context.Context) (*OverviewReport, error)
}

type progressService struct {
	exerciseRepo    repository.ExerciseRepository
	assignmentRepo  repository.AssignmentRepository
	sessionRepo     repository.SessionLogRepository
	clientRepo      repository.ClientRepository
	measurementRepo repository.MeasurementRepository
	now             func() time.Time
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(
	exerciseRepo repository.ExerciseRepository,
	assignmentRepo repository.AssignmentRepository,
	sessionRepo repository.SessionLogRepository,
	clientRepo repository.ClientRepository,
	measurementRepo repository.MeasurementRepository,
) ProgressService {
	return newProgressService(exerciseRepo, assignmentRepo, sessionRepo, clientRepo, measurementRepo, time.Now)
}

func newProgressService(
	exerciseRepo repository.ExerciseRepository,
	assignmentRepo repository.AssignmentRepository,
	sessionRepo repository.SessionLogRepository,
	clientRepo repository.ClientRepository,
	measurementRepo repository.MeasurementRepository,
	now func() time.Time,
) *progressService {
	return &progressService{
		exerciseRepo:    exerciseRepo,
		assignmentRepo:  assignmentRepo,
		sessionRepo:     sessionRepo,
		clientRepo:      clientRepo,
		measurementRepo: measurementRepo,
		now:             now,
	}
}

func (s *progressService) ExerciseHistory(ctx context.Context, exerciseID primitive.ObjectID) ([]HistoryEntry, []ExerciseClientStats, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, nil, err
	}

	assignments, err := s.assignmentRepo.GetByExercise(ctx, repository.ExerciseMatcher{
		ExerciseID: exerciseID,
		Name:       exercise.Name,
	})
	if err != nil {
		return nil, nil, err
	}

	byAssignment := make(map[primitive.ObjectID]*domain.Assignment, len(assignments))
	ids := make([]primitive.ObjectID, 0, len(assignments))
	for i := range assignments {
		byAssignment[assignments[i].ID] = &assignments[i]
		ids = append(ids, assignments[i].ID)
	}

	logs, err := s.sessionRepo.GetByAssignmentIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	clientNames := make(map[primitive.ObjectID]string)
	statsByClient := make(map[primitive.ObjectID]*ExerciseClientStats)
	var entries []HistoryEntry
	var clientOrder []primitive.ObjectID

	for _, log := range logs {
		assignment, ok := byAssignment[log.AssignmentID]
		if !ok {
			continue
		}
		name, err := s.clientName(ctx, clientNames, assignment.ClientID)
		if err != nil {
			return nil, nil, err
		}

		for _, ex := range log.Exercises {
			entries = append(entries, HistoryEntry{
				Date:       log.Date,
				ClientID:   assignment.ClientID,
				ClientName: name,
				Sets:       ex.Sets,
				Reps:       ex.Reps,
				Weight:     ex.Weight,
				Duration:   ex.Duration,
				SetDetails: ex.SetDetails,
			})

			cs, ok := statsByClient[assignment.ClientID]
			if !ok {
				cs = &ExerciseClientStats{ClientID: assignment.ClientID, Name: name}
				statsByClient[assignment.ClientID] = cs
				clientOrder = append(clientOrder, assignment.ClientID)
			}
			cs.Sessions++
			// Max over recorded summary weights; unset weights are
			// excluded, not treated as zero.
			if ex.Weight != nil && *ex.Weight > cs.MaxWeight {
				cs.MaxWeight = *ex.Weight
			}
			for _, sd := range ex.SetDetails {
				cs.TotalVolume += floatVal(sd.Weight) * float64(intVal(sd.Reps))
			}
		}
	}

	stats := make([]ExerciseClientStats, 0, len(clientOrder))
	for _, id := range clientOrder {
		stats = append(stats, *statsByClient[id])
	}
	return entries, stats, nil
}

func (s *progressService) ClientReport(ctx context.Context, clientID primitive.ObjectID) (*ClientReport, error) {
	assignments, err := s.assignmentRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	byAssignment := make(map[primitive.ObjectID]*domain.Assignment, len(assignments))
	ids := make([]primitive.ObjectID, 0, len(assignments))
	for i := range assignments {
		byAssignment[assignments[i].ID] = &assignments[i]
		ids = append(ids, assignments[i].ID)
	}

	logs, err := s.sessionRepo.GetByAssignmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-recentWindow)
	report := &ClientReport{
		ClientID: clientID,
		Sessions: len(logs),
		Programs: len(assignments),
	}

	type progressPoint struct {
		date   time.Time
		weight float64
	}
	progress := make(map[string][]progressPoint)
	var nameOrder []string

	for _, log := range logs {
		report.TotalMinutes += intVal(log.Duration)
		if log.Date.After(cutoff) {
			report.ThisWeek++
		}

		assignment, ok := byAssignment[log.AssignmentID]
		if !ok || len(assignment.Workouts) == 0 {
			continue
		}
		// The trend resolves exercise indexes against the assignment's
		// first workout regardless of the log's own workoutIndex. For
		// multi-workout assignments this can consult the wrong exercise
		// list; kept as-is for compatibility with recorded history.
		workout := assignment.Workouts[0]

		for _, ex := range log.Exercises {
			if ex.ExerciseIndex < 0 || ex.ExerciseIndex >= len(workout.Exercises) {
				continue
			}
			info := workout.Exercises[ex.ExerciseIndex]
			if info.Type != domain.TypeWeight {
				continue
			}

			maxWeight := 0.0
			if len(ex.SetDetails) > 0 {
				for _, sd := range ex.SetDetails {
					if w := floatVal(sd.Weight); w > maxWeight {
						maxWeight = w
					}
				}
			} else {
				maxWeight = floatVal(ex.Weight)
			}
			if maxWeight <= 0 {
				continue
			}

			if _, ok := progress[info.Name]; !ok {
				nameOrder = append(nameOrder, info.Name)
			}
			progress[info.Name] = append(progress[info.Name], progressPoint{date: log.Date, weight: maxWeight})
		}
	}

	for _, name := range nameOrder {
		points := progress[name]
		sort.Slice(points, func(i, j int) bool { return points[i].date.Before(points[j].date) })
		first := points[0]
		last := points[len(points)-1]
		report.Strength = append(report.Strength, StrengthTrend{
			Exercise: name,
			First:    first.weight,
			Last:     last.weight,
			Change:   last.weight - first.weight,
			Sessions: len(points),
			FirstAt:  first.date,
			LastAt:   last.date,
		})
	}

	return report, nil
}

// measurementFields maps trend field names to their accessor, in display order.
var measurementFields = []struct {
	name string
	get  func(m *domain.Measurement) *float64
}{
	{"weight", func(m *domain.Measurement) *float64 { return m.Weight }},
	{"bodyFat", func(m *domain.Measurement) *float64 { return m.BodyFat }},
	{"chest", func(m *domain.Measurement) *float64 { return m.Chest }},
	{"waist", func(m *domain.Measurement) *float64 { return m.Waist }},
	{"hips", func(m *domain.Measurement) *float64 { return m.Hips }},
	{"arms", func(m *domain.Measurement) *float64 { return m.Arms }},
	{"thighs", func(m *domain.Measurement) *float64 { return m.Thighs }},
}

func (s *progressService) MeasurementProgress(ctx context.Context, clientID primitive.ObjectID) ([]MeasurementTrend, error) {
	// Newest first per the repository contract: the last non-null reading
	// is the oldest.
	measurements, err := s.measurementRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	var trends []MeasurementTrend
	for _, field := range measurementFields {
		var readings []float64
		for i := range measurements {
			if v := field.get(&measurements[i]); v != nil {
				readings = append(readings, *v)
			}
		}
		if len(readings) < 2 {
			continue
		}
		first := readings[len(readings)-1]
		last := readings[0]
		trends = append(trends, MeasurementTrend{
			Field:  field.name,
			First:  first,
			Last:   last,
			Change: last - first,
		})
	}
	return trends, nil
}

func (s *progressService) Overview(ctx context.Context) (*OverviewReport, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	clientOfAssignment := make(map[primitive.ObjectID]primitive.ObjectID, len(assignments))
	for _, a := range assignments {
		clientOfAssignment[a.ID] = a.ClientID
	}

	cutoff := s.now().Add(-recentWindow)
	report := &OverviewReport{TotalSessions: len(logs)}

	type tally struct {
		sessions int
		recent   int
		minutes  int
	}
	perClient := make(map[primitive.ObjectID]*tally)

	for _, log := range logs {
		report.TotalMinutes += intVal(log.Duration)
		recent := log.Date.After(cutoff)
		if recent {
			report.ThisWeek++
		}

		clientID, ok := clientOfAssignment[log.AssignmentID]
		if !ok {
			continue
		}
		t, ok := perClient[clientID]
		if !ok {
			t = &tally{}
			perClient[clientID] = t
		}
		t.sessions++
		t.minutes += intVal(log.Duration)
		if recent {
			t.recent++
		}
	}

	report.Clients = make([]ClientActivity, 0, len(clients))
	for _, c := range clients {
		if c.Active {
			report.ActiveClients++
		}
		t := perClient[c.ID]
		if t == nil {
			t = &tally{}
		}
		report.Clients = append(report.Clients, ClientActivity{
			ClientID:     c.ID,
			Name:         c.Name,
			Sessions:     t.sessions,
			Recent:       t.recent,
			TotalMinutes: t.minutes,
			Activity:     classifyActivity(t.recent),
		})
	}

	// Most recently active clients first, for visual sorting.
	sort.SliceStable(report.Clients, func(i, j int) bool {
		return report.Clients[i].Recent > report.Clients[j].Recent
	})

	return report, nil
}

func classifyActivity(recent int) string {
	switch {
	case recent >= 3:
		return "high"
	case recent > 0:
		return "some"
	default:
		return "none"
	}
}

func (s *progressService) clientName(ctx context.Context, cache map[primitive.ObjectID]string, clientID primitive.ObjectID) (string, error) {
	if name, ok := cache[clientID]; ok {
		return name, nil
	}
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	cache[clientID] = client.Name
	return client.Name, nil
}

func intVal(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatVal(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

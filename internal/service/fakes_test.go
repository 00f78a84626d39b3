package service

import (
	"context"
	"sort"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes honoring the repository contracts, including sort order
// (logs and measurements newest first). Structs are stored by value so a
// caller mutating its copy cannot reach back into the "database".

func catalogExercise(name string, typ domain.ExerciseType) *domain.Exercise {
	return &domain.Exercise{
		Name:     name,
		Category: domain.CategoryStrength,
		Type:     typ,
		Custom:   true,
	}
}

type fakeCoachRepo struct {
	coaches map[primitive.ObjectID]domain.Coach
}

func newFakeCoachRepo() *fakeCoachRepo {
	return &fakeCoachRepo{coaches: make(map[primitive.ObjectID]domain.Coach)}
}

func (r *fakeCoachRepo) Create(_ context.Context, coach *domain.Coach) (primitive.ObjectID, error) {
	coach.ID = primitive.NewObjectID()
	r.coaches[coach.ID] = *coach
	return coach.ID, nil
}

func (r *fakeCoachRepo) GetByEmail(_ context.Context, email string) (*domain.Coach, error) {
	for _, c := range r.coaches {
		if c.Email == email {
			coach := c
			return &coach, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCoachRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Coach, error) {
	c, ok := r.coaches[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]domain.Exercise
	order     []primitive.ObjectID
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]domain.Exercise)}
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	exercise.ID = primitive.NewObjectID()
	r.exercises[exercise.ID] = *exercise
	r.order = append(r.order, exercise.ID)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	ex, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ex, nil
}

func (r *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.exercises[id])
	}
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, exercise *domain.Exercise) error {
	if _, ok := r.exercises[exercise.ID]; !ok {
		return repository.ErrNotFound
	}
	r.exercises[exercise.ID] = *exercise
	return nil
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeExerciseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.exercises)), nil
}

type fakeProgramRepo struct {
	programs map[primitive.ObjectID]domain.Program
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: make(map[primitive.ObjectID]domain.Program)}
}

func (r *fakeProgramRepo) Create(_ context.Context, program *domain.Program) (primitive.ObjectID, error) {
	program.ID = primitive.NewObjectID()
	r.programs[program.ID] = clonedProgram(*program)
	return program.ID, nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Program, error) {
	p, ok := r.programs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p = clonedProgram(p)
	return &p, nil
}

func (r *fakeProgramRepo) List(_ context.Context) ([]domain.Program, error) {
	out := make([]domain.Program, 0, len(r.programs))
	for _, p := range r.programs {
		out = append(out, clonedProgram(p))
	}
	return out, nil
}

func (r *fakeProgramRepo) Update(_ context.Context, program *domain.Program) error {
	if _, ok := r.programs[program.ID]; !ok {
		return repository.ErrNotFound
	}
	r.programs[program.ID] = clonedProgram(*program)
	return nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.programs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.programs, id)
	return nil
}

// clonedProgram deep-copies the workout slices so shared backing arrays
// cannot leak between the store and callers.
func clonedProgram(p domain.Program) domain.Program {
	workouts := make([]domain.Workout, len(p.Workouts))
	for i, w := range p.Workouts {
		w.Exercises = append([]domain.ProgramExercise(nil), w.Exercises...)
		workouts[i] = w
	}
	p.Workouts = workouts
	return p
}

type fakeAssignmentRepo struct {
	assignments map[primitive.ObjectID]domain.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[primitive.ObjectID]domain.Assignment)}
}

func (r *fakeAssignmentRepo) Create(_ context.Context, assignment *domain.Assignment) (primitive.ObjectID, error) {
	assignment.ID = primitive.NewObjectID()
	r.assignments[assignment.ID] = clonedAssignment(*assignment)
	return assignment.ID, nil
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Assignment, error) {
	a, ok := r.assignments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a = clonedAssignment(a)
	return &a, nil
}

func (r *fakeAssignmentRepo) List(_ context.Context) ([]domain.Assignment, error) {
	out := make([]domain.Assignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		out = append(out, clonedAssignment(a))
	}
	return out, nil
}

func (r *fakeAssignmentRepo) GetByClientID(_ context.Context, clientID primitive.ObjectID) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range r.assignments {
		if a.ClientID == clientID {
			out = append(out, clonedAssignment(a))
		}
	}
	return out, nil
}

func (r *fakeAssignmentRepo) GetByExercise(_ context.Context, matcher repository.ExerciseMatcher) ([]domain.Assignment, error) {
	byID := r.matching(func(ex domain.AssignedExercise) bool { return ex.ExerciseID == matcher.ExerciseID })
	if len(byID) > 0 {
		return byID, nil
	}
	return r.matching(func(ex domain.AssignedExercise) bool { return ex.Name == matcher.Name }), nil
}

func (r *fakeAssignmentRepo) matching(match func(domain.AssignedExercise) bool) []domain.Assignment {
	var out []domain.Assignment
	for _, a := range r.assignments {
		found := false
		for _, w := range a.Workouts {
			for _, ex := range w.Exercises {
				if match(ex) {
					found = true
				}
			}
		}
		if found {
			out = append(out, clonedAssignment(a))
		}
	}
	return out
}

func (r *fakeAssignmentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.assignments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.assignments, id)
	return nil
}

func (r *fakeAssignmentRepo) DeleteByClientID(_ context.Context, clientID primitive.ObjectID) ([]primitive.ObjectID, error) {
	var removed []primitive.ObjectID
	for id, a := range r.assignments {
		if a.ClientID == clientID {
			removed = append(removed, id)
			delete(r.assignments, id)
		}
	}
	return removed, nil
}

func clonedAssignment(a domain.Assignment) domain.Assignment {
	workouts := make([]domain.AssignedWorkout, len(a.Workouts))
	for i, w := range a.Workouts {
		w.Exercises = append([]domain.AssignedExercise(nil), w.Exercises...)
		workouts[i] = w
	}
	a.Workouts = workouts
	return a
}

type fakeSessionLogRepo struct {
	logs map[primitive.ObjectID]domain.SessionLog
}

func newFakeSessionLogRepo() *fakeSessionLogRepo {
	return &fakeSessionLogRepo{logs: make(map[primitive.ObjectID]domain.SessionLog)}
}

func (r *fakeSessionLogRepo) Create(_ context.Context, log *domain.SessionLog) (primitive.ObjectID, error) {
	log.ID = primitive.NewObjectID()
	r.logs[log.ID] = *log
	return log.ID, nil
}

func (r *fakeSessionLogRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.SessionLog, error) {
	l, ok := r.logs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

func (r *fakeSessionLogRepo) List(_ context.Context) ([]domain.SessionLog, error) {
	out := make([]domain.SessionLog, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, l)
	}
	sortLogsNewestFirst(out)
	return out, nil
}

func (r *fakeSessionLogRepo) GetByAssignmentIDs(_ context.Context, assignmentIDs []primitive.ObjectID) ([]domain.SessionLog, error) {
	wanted := make(map[primitive.ObjectID]bool, len(assignmentIDs))
	for _, id := range assignmentIDs {
		wanted[id] = true
	}
	var out []domain.SessionLog
	for _, l := range r.logs {
		if wanted[l.AssignmentID] {
			out = append(out, l)
		}
	}
	sortLogsNewestFirst(out)
	return out, nil
}

func (r *fakeSessionLogRepo) DeleteByAssignmentID(_ context.Context, assignmentID primitive.ObjectID) error {
	for id, l := range r.logs {
		if l.AssignmentID == assignmentID {
			delete(r.logs, id)
		}
	}
	return nil
}

func (r *fakeSessionLogRepo) DeleteByAssignmentIDs(_ context.Context, assignmentIDs []primitive.ObjectID) error {
	for _, aid := range assignmentIDs {
		_ = r.DeleteByAssignmentID(context.Background(), aid)
	}
	return nil
}

func sortLogsNewestFirst(logs []domain.SessionLog) {
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.After(logs[j].Date) })
}

type fakeClientRepo struct {
	clients map[primitive.ObjectID]domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[primitive.ObjectID]domain.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *domain.Client) (primitive.ObjectID, error) {
	client.ID = primitive.NewObjectID()
	r.clients[client.ID] = *client
	return client.ID, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *fakeClientRepo) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *domain.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return repository.ErrNotFound
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

type fakeMeasurementRepo struct {
	measurements map[primitive.ObjectID]domain.Measurement
}

func newFakeMeasurementRepo() *fakeMeasurementRepo {
	return &fakeMeasurementRepo{measurements: make(map[primitive.ObjectID]domain.Measurement)}
}

func (r *fakeMeasurementRepo) Create(_ context.Context, m *domain.Measurement) (primitive.ObjectID, error) {
	m.ID = primitive.NewObjectID()
	r.measurements[m.ID] = *m
	return m.ID, nil
}

func (r *fakeMeasurementRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Measurement, error) {
	m, ok := r.measurements[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r *fakeMeasurementRepo) GetByClientID(_ context.Context, clientID primitive.ObjectID) ([]domain.Measurement, error) {
	var out []domain.Measurement
	for _, m := range r.measurements {
		if m.ClientID == clientID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeMeasurementRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.measurements[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.measurements, id)
	return nil
}

func (r *fakeMeasurementRepo) DeleteByClientID(_ context.Context, clientID primitive.ObjectID) error {
	for id, m := range r.measurements {
		if m.ClientID == clientID {
			delete(r.measurements, id)
		}
	}
	return nil
}

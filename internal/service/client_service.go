package service

import (
	"context"
	"errors"
	"time"

	"fitcoach/coach-app/internal/domain"
	"fitcoach/coach-app/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrClientNotFound      = errors.New("client not found")
	ErrMeasurementNotFound = errors.New("measurement not found")
)

// ClientInput carries the editable fields of a client profile.
type ClientInput struct {
	Name             string
	Email            string
	Phone            string
	Goals            string
	HealthConditions string
	Notes            string
	Active           bool
}

// MeasurementInput carries one body-metric reading. Every metric is optional.
type MeasurementInput struct {
	Date    time.Time
	Weight  *float64
	BodyFat *float64
	Chest   *float64
	Waist   *float64
	Hips    *float64
	Arms    *float64
	Thighs  *float64
}

// ClientService manages client profiles and their measurement series.
type ClientService interface {
	CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	UpdateClient(ctx context.Context, id primitive.ObjectID, input ClientInput) (*domain.Client, error)
	// DeleteClient removes the client and explicitly cascades to their
	// assignments, those assignments' session logs, and measurements.
	DeleteClient(ctx context.Context, id primitive.ObjectID) error

	AddMeasurement(ctx context.Context, clientID primitive.ObjectID, input MeasurementInput) (*domain.Measurement, error)
	GetMeasurements(ctx context.Context, clientID primitive.ObjectID) ([]domain.Measurement, error)
	DeleteMeasurement(ctx context.Context, id primitive.ObjectID) error
}

type clientService struct {
	clientRepo      repository.ClientRepository
	assignmentRepo  repository.AssignmentRepository
	sessionRepo     repository.SessionLogRepository
	measurementRepo repository.MeasurementRepository
}

// NewClientService creates a new instance of clientService.
func NewClientService(
	clientRepo repository.ClientRepository,
	assignmentRepo repository.AssignmentRepository,
	sessionRepo repository.SessionLogRepository,
	measurementRepo repository.MeasurementRepository,
) ClientService {
	return &clientService{
		clientRepo:      clientRepo,
		assignmentRepo:  assignmentRepo,
		sessionRepo:     sessionRepo,
		measurementRepo: measurementRepo,
	}
}

func (s *clientService) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if input.Name == "" {
		return nil, ErrValidationFailed
	}

	client := &domain.Client{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Goals:            input.Goals,
		HealthConditions: input.HealthConditions,
		Notes:            input.Notes,
		Active:           input.Active,
	}

	id, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	client.ID = id
	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, id primitive.ObjectID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) UpdateClient(ctx context.Context, id primitive.ObjectID, input ClientInput) (*domain.Client, error) {
	if input.Name == "" {
		return nil, ErrValidationFailed
	}

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Goals = input.Goals
	client.HealthConditions = input.HealthConditions
	client.Notes = input.Notes
	client.Active = input.Active

	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// DeleteClient removes the client root and all dependent records. The
// cascade is explicit: assignments go first (collecting their ids), then
// the session logs recorded against them, then measurements, then the
// client record itself.
func (s *clientService) DeleteClient(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	assignmentIDs, err := s.assignmentRepo.DeleteByClientID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.DeleteByAssignmentIDs(ctx, assignmentIDs); err != nil {
		return err
	}
	if err := s.measurementRepo.DeleteByClientID(ctx, id); err != nil {
		return err
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	logrus.WithFields(logrus.Fields{
		"clientId":    id.Hex(),
		"assignments": len(assignmentIDs),
	}).Info("client deleted with dependents")

	return nil
}

func (s *clientService) AddMeasurement(ctx context.Context, clientID primitive.ObjectID, input MeasurementInput) (*domain.Measurement, error) {
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	m := &domain.Measurement{
		ClientID: clientID,
		Date:     input.Date,
		Weight:   input.Weight,
		BodyFat:  input.BodyFat,
		Chest:    input.Chest,
		Waist:    input.Waist,
		Hips:     input.Hips,
		Arms:     input.Arms,
		Thighs:   input.Thighs,
	}

	id, err := s.measurementRepo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

func (s *clientService) GetMeasurements(ctx context.Context, clientID primitive.ObjectID) ([]domain.Measurement, error) {
	return s.measurementRepo.GetByClientID(ctx, clientID)
}

func (s *clientService) DeleteMeasurement(ctx context.Context, id primitive.ObjectID) error {
	if err := s.measurementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMeasurementNotFound
		}
		return err
	}
	return nil
}

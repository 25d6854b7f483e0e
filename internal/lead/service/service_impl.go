package service

import (
	"context"
	"strings"

	"github.com/brushworkslabs/brushworks/internal/clock"
	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  leaddomain.Repository
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  leaddomain.Repository
	clock clock.Clock
}

func New(p Params) leaddomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("lead.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req leaddomain.UpsertRequest) (*leaddomain.Lead, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	item := &leaddomain.Lead{
		ID:        s.genID.Generate(),
		Status:    leaddomain.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyUpsert(item, req)

	if err := s.repo.Insert(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req leaddomain.UpsertRequest) (*leaddomain.Lead, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpsert(item, req)
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*leaddomain.Lead, error) {
	return s.find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]leaddomain.Lead, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Transition(ctx context.Context, id string, next leaddomain.Status) (*leaddomain.Lead, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !item.Status.CanTransitionTo(next) {
		return nil, leaddomain.ErrInvalidTransition
	}

	item.Status = next
	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	s.log.Info("lead transitioned",
		zap.String("lead_id", item.ID.String()),
		zap.String("status", string(next)),
	)
	return item, nil
}

func (s *Service) SetTransportEstimate(ctx context.Context, id string, hours float64) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	item.TransportHours = hours
	item.UpdatedAt = s.clock.Now()
	return s.repo.Update(ctx, s.db, item)
}

func (s *Service) find(ctx context.Context, id string) (*leaddomain.Lead, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, leaddomain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, leaddomain.ErrNotFound
	}
	return item, nil
}

func validateUpsert(req leaddomain.UpsertRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return leaddomain.ErrInvalidName
	}
	if req.PackageType != "" && !req.PackageType.Valid() {
		return leaddomain.ErrInvalidTier
	}
	return nil
}

func applyUpsert(item *leaddomain.Lead, req leaddomain.UpsertRequest) {
	item.Name = strings.TrimSpace(req.Name)
	item.Phone = strings.TrimSpace(req.Phone)
	item.Email = strings.TrimSpace(req.Email)
	item.Address = strings.TrimSpace(req.Address)
	item.Zip = strings.TrimSpace(req.Zip)
	item.ProjectNote = strings.TrimSpace(req.ProjectNote)
	item.LandSize = req.LandSize
	item.TransportHours = req.TransportHours
	item.EstimatedValue = req.EstimatedValue

	item.PackageType = req.PackageType
	if item.PackageType == "" {
		item.PackageType = ratebookdomain.TierMedium
	}
}

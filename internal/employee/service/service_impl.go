package service

import (
	"context"
	"strings"

	"github.com/brushworkslabs/brushworks/internal/clock"
	employeedomain "github.com/brushworkslabs/brushworks/internal/employee/domain"
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
	Repo  employeedomain.Repository
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  employeedomain.Repository
	clock clock.Clock
}

func New(p Params) employeedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("employee.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req employeedomain.UpsertRequest) (*employeedomain.Employee, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	item := &employeedomain.Employee{
		ID:               s.genID.Generate(),
		Name:             strings.TrimSpace(req.Name),
		Role:             strings.TrimSpace(req.Role),
		BaseHourlyWage:   req.BaseHourlyWage,
		BurdenMultiplier: req.BurdenMultiplier,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req employeedomain.UpsertRequest) (*employeedomain.Employee, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(req.Name)
	item.Role = strings.TrimSpace(req.Role)
	item.BaseHourlyWage = req.BaseHourlyWage
	item.BurdenMultiplier = req.BurdenMultiplier
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*employeedomain.Employee, error) {
	return s.find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]employeedomain.Employee, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, item.ID)
}

func (s *Service) find(ctx context.Context, id string) (*employeedomain.Employee, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, employeedomain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, employeedomain.ErrNotFound
	}
	return item, nil
}

func validateUpsert(req employeedomain.UpsertRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return employeedomain.ErrInvalidName
	}
	if req.BaseHourlyWage < 0 {
		return employeedomain.ErrInvalidWage
	}
	if req.BurdenMultiplier < 1 {
		return employeedomain.ErrInvalidBurden
	}
	return nil
}

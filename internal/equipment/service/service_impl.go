package service

import (
	"context"
	"strings"

	"github.com/brushworkslabs/brushworks/internal/clock"
	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  equipmentdomain.Repository
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  equipmentdomain.Repository
	clock clock.Clock
}

func New(p Params) equipmentdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("equipment.service"),
		genID: p.GenID,
		repo:  p.Repo,
		clock: p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req equipmentdomain.UpsertRequest) (*equipmentdomain.Equipment, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	item := &equipmentdomain.Equipment{
		ID:        s.genID.Generate(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyUpsert(item, req)

	if err := s.repo.Insert(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req equipmentdomain.UpsertRequest) (*equipmentdomain.Equipment, error) {
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

func (s *Service) Get(ctx context.Context, id string) (*equipmentdomain.Equipment, error) {
	return s.find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]equipmentdomain.Equipment, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, item.ID)
}

func (s *Service) Insights(ctx context.Context, id string) (*equipmentdomain.Insights, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	calc := equipmentdomain.Calculate(*item)
	return &equipmentdomain.Insights{
		Calculation: calc,
		Alerts:      equipmentdomain.Validate(*item, calc, s.clock.Now()),
		Breakdown:   equipmentdomain.AnalyzeCostBreakdown(calc),
	}, nil
}

func (s *Service) find(ctx context.Context, id string) (*equipmentdomain.Equipment, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, equipmentdomain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, equipmentdomain.ErrNotFound
	}
	return item, nil
}

func validateUpsert(req equipmentdomain.UpsertRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return equipmentdomain.ErrInvalidName
	}
	if req.YearsOfService <= 0 {
		return equipmentdomain.ErrInvalidYears
	}
	if req.DaysPerYear < 0 || req.HoursPerDay < 0 {
		return equipmentdomain.ErrInvalidUsage
	}
	return nil
}

func applyUpsert(item *equipmentdomain.Equipment, req equipmentdomain.UpsertRequest) {
	item.Name = strings.TrimSpace(req.Name)
	item.Category = strings.TrimSpace(req.Category)
	item.ModelYear = req.ModelYear
	item.PurchasePrice = req.PurchasePrice
	item.YearsOfService = req.YearsOfService
	item.EstimatedResaleValue = req.EstimatedResaleValue
	item.DailyFuelCost = req.DailyFuelCost
	item.AnnualMaintenance = req.AnnualMaintenance
	item.AnnualInsuranceCost = req.AnnualInsuranceCost
	item.DaysPerYear = req.DaysPerYear
	item.HoursPerDay = req.HoursPerDay
	if req.Metadata != nil {
		item.Metadata = datatypes.JSONMap(req.Metadata)
	}
}

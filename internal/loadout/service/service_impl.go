package service

import (
	"context"
	"strings"

	"github.com/brushworkslabs/brushworks/internal/clock"
	"github.com/brushworkslabs/brushworks/internal/config"
	employeedomain "github.com/brushworkslabs/brushworks/internal/employee/domain"
	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	loadoutdomain "github.com/brushworkslabs/brushworks/internal/loadout/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB            *gorm.DB
	Log           *zap.Logger
	GenID         *snowflake.Node
	Repo          loadoutdomain.Repository
	EmployeeRepo  employeedomain.Repository
	EquipmentRepo equipmentdomain.Repository
	Pricing       *config.PricingConfigHolder
	Clock         clock.Clock
}

type Service struct {
	db            *gorm.DB
	log           *zap.Logger
	genID         *snowflake.Node
	repo          loadoutdomain.Repository
	employeeRepo  employeedomain.Repository
	equipmentRepo equipmentdomain.Repository
	pricing       *config.PricingConfigHolder
	clock         clock.Clock
}

func New(p Params) loadoutdomain.Service {
	return &Service{
		db:            p.DB,
		log:           p.Log.Named("loadout.service"),
		genID:         p.GenID,
		repo:          p.Repo,
		employeeRepo:  p.EmployeeRepo,
		equipmentRepo: p.EquipmentRepo,
		pricing:       p.Pricing,
		clock:         p.Clock,
	}
}

func (s *Service) Create(ctx context.Context, req loadoutdomain.UpsertRequest) (*loadoutdomain.Loadout, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	employeeIDs, err := parseIDs(req.EmployeeIDs)
	if err != nil {
		return nil, loadoutdomain.ErrInvalidID
	}
	equipmentIDs, err := parseIDs(req.EquipmentIDs)
	if err != nil {
		return nil, loadoutdomain.ErrInvalidID
	}

	now := s.clock.Now()
	item := &loadoutdomain.Loadout{
		ID:               s.genID.Generate(),
		Name:             strings.TrimSpace(req.Name),
		MarkupMultiplier: s.markupOrDefault(req.MarkupMultiplier),
		EmployeeIDs:      datatypes.NewJSONSlice(employeeIDs),
		EquipmentIDs:     datatypes.NewJSONSlice(equipmentIDs),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Insert(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req loadoutdomain.UpsertRequest) (*loadoutdomain.Loadout, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	employeeIDs, err := parseIDs(req.EmployeeIDs)
	if err != nil {
		return nil, loadoutdomain.ErrInvalidID
	}
	equipmentIDs, err := parseIDs(req.EquipmentIDs)
	if err != nil {
		return nil, loadoutdomain.ErrInvalidID
	}

	item.Name = strings.TrimSpace(req.Name)
	item.MarkupMultiplier = s.markupOrDefault(req.MarkupMultiplier)
	item.EmployeeIDs = datatypes.NewJSONSlice(employeeIDs)
	item.EquipmentIDs = datatypes.NewJSONSlice(equipmentIDs)
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*loadoutdomain.Loadout, error) {
	return s.find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]loadoutdomain.Loadout, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, item.ID)
}

func (s *Service) Calculation(ctx context.Context, id string) (*loadoutdomain.Calculation, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.FindByIDs(ctx, s.db, snowflakeIDs(item.EmployeeIDs))
	if err != nil {
		return nil, err
	}

	employeeCosts := make([]float64, 0, len(employees))
	for _, e := range employees {
		employeeCosts = append(employeeCosts, e.TrueHourlyCost())
	}

	equipmentCosts := make([]float64, 0, len(item.EquipmentIDs))
	for _, rawID := range item.EquipmentIDs {
		machine, err := s.equipmentRepo.FindByID(ctx, s.db, snowflake.ID(rawID))
		if err != nil {
			return nil, err
		}
		if machine == nil {
			continue
		}
		equipmentCosts = append(equipmentCosts, equipmentdomain.Calculate(*machine).HourlyCost)
	}

	calc := loadoutdomain.Calculate(employeeCosts, equipmentCosts, item.MarkupMultiplier)
	return &calc, nil
}

func (s *Service) find(ctx context.Context, id string) (*loadoutdomain.Loadout, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, loadoutdomain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, loadoutdomain.ErrNotFound
	}
	return item, nil
}

// markupOrDefault substitutes the configured loadout markup when the request
// leaves the multiplier unset.
func (s *Service) markupOrDefault(markup float64) float64 {
	if markup == 0 {
		return s.pricing.Get().LoadoutMarkup
	}
	return markup
}

func validateUpsert(req loadoutdomain.UpsertRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return loadoutdomain.ErrInvalidName
	}
	if req.MarkupMultiplier < 0 {
		return loadoutdomain.ErrInvalidMarkup
	}
	return nil
}

func parseIDs(raw []string) ([]int64, error) {
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		parsed, err := snowflake.ParseString(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out = append(out, int64(parsed))
	}
	return out, nil
}

func snowflakeIDs(raw []int64) []snowflake.ID {
	out := make([]snowflake.ID, 0, len(raw))
	for _, v := range raw {
		out = append(out, snowflake.ID(v))
	}
	return out
}

package service

import (
	"context"
	"strings"

	"github.com/brushworkslabs/brushworks/internal/clock"
	obsmetrics "github.com/brushworkslabs/brushworks/internal/observability/metrics"
	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         workorderdomain.Repository
	ProposalRepo proposaldomain.Repository
	Clock        clock.Clock
	Metrics      *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	repo         workorderdomain.Repository
	proposalRepo proposaldomain.Repository
	clock        clock.Clock
	metrics      *obsmetrics.Metrics
}

func New(p Params) workorderdomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("workorder.service"),
		genID:        p.GenID,
		repo:         p.Repo,
		proposalRepo: p.ProposalRepo,
		clock:        p.Clock,
		metrics:      p.Metrics,
	}
}

func (s *Service) CreateFromProposal(ctx context.Context, proposalID string) (*workorderdomain.WorkOrder, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(proposalID))
	if err != nil {
		return nil, workorderdomain.ErrInvalidID
	}

	proposal, err := s.proposalRepo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, workorderdomain.ErrSourceNotFound
	}

	item := workorderdomain.FromProposal(s.genID.Generate(), *proposal, s.clock.Now())
	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DocumentsConverted.WithLabelValues("proposal_to_work_order").Inc()
	}
	s.log.Info("work order derived from proposal",
		zap.String("proposal_id", proposal.ID.String()),
		zap.String("work_order_id", item.ID.String()),
	)
	return &item, nil
}

// UpdateWork applies work-tracking edits. The final amount is recomputed as
// original plus additional costs at every save.
func (s *Service) UpdateWork(ctx context.Context, id string, req workorderdomain.WorkRequest) (*workorderdomain.WorkOrder, error) {
	if req.CompletionPercentage < 0 || req.CompletionPercentage > 1 {
		return nil, workorderdomain.ErrInvalidCompletion
	}

	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.LoadoutID != nil {
		loadoutID, err := snowflake.ParseString(strings.TrimSpace(*req.LoadoutID))
		if err != nil {
			return nil, workorderdomain.ErrInvalidID
		}
		item.LoadoutID = &loadoutID
	} else {
		item.LoadoutID = nil
	}

	equipmentIDs := make([]int64, 0, len(req.EquipmentIDs))
	for _, raw := range req.EquipmentIDs {
		parsed, err := snowflake.ParseString(strings.TrimSpace(raw))
		if err != nil {
			return nil, workorderdomain.ErrInvalidID
		}
		equipmentIDs = append(equipmentIDs, int64(parsed))
	}

	item.AdditionalCosts = req.AdditionalCosts
	item.FinalAmount = item.OriginalAmount + req.AdditionalCosts
	item.CrewNotes = strings.TrimSpace(req.CrewNotes)
	item.EquipmentIDs = datatypes.NewJSONSlice(equipmentIDs)
	item.EstimatedHours = req.EstimatedHours
	item.CompletionPercentage = req.CompletionPercentage
	item.ScheduledFor = req.ScheduledFor
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*workorderdomain.WorkOrder, error) {
	return s.find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]workorderdomain.WorkOrder, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Transition(ctx context.Context, id string, next workorderdomain.Status) (*workorderdomain.WorkOrder, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !item.Status.CanTransitionTo(next) {
		return nil, workorderdomain.ErrInvalidTransition
	}

	item.Status = next
	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) find(ctx context.Context, id string) (*workorderdomain.WorkOrder, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, workorderdomain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, workorderdomain.ErrNotFound
	}
	return item, nil
}

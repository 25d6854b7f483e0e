package service

import (
	"context"
	"strings"

	"github.com/brushworkslabs/brushworks/internal/clock"
	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	obsmetrics "github.com/brushworkslabs/brushworks/internal/observability/metrics"
	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     proposaldomain.Repository
	LeadRepo leaddomain.Repository
	Clock    clock.Clock
	Metrics  *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     proposaldomain.Repository
	leadRepo leaddomain.Repository
	clock    clock.Clock
	metrics  *obsmetrics.Metrics
}

func New(p Params) proposaldomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("proposal.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		leadRepo: p.LeadRepo,
		clock:    p.Clock,
		metrics:  p.Metrics,
	}
}

func (s *Service) CreateFromLead(ctx context.Context, leadID string) (*proposaldomain.Proposal, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(leadID))
	if err != nil {
		return nil, proposaldomain.ErrInvalidID
	}

	lead, err := s.leadRepo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, proposaldomain.ErrSourceNotFound
	}

	item := proposaldomain.FromLead(s.genID.Generate(), *lead, s.clock.Now())
	if err := s.repo.Insert(ctx, s.db, &item); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DocumentsConverted.WithLabelValues("lead_to_proposal").Inc()
	}
	s.log.Info("proposal derived from lead",
		zap.String("lead_id", lead.ID.String()),
		zap.String("proposal_id", item.ID.String()),
	)
	return &item, nil
}

func (s *Service) UpdatePricing(ctx context.Context, id string, req proposaldomain.PricingRequest) (*proposaldomain.Proposal, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Subtotal = req.Subtotal
	item.TaxAmount = req.TaxAmount
	item.Discount = req.Discount
	item.TransportHours = req.TransportHours
	item.ValidUntil = req.ValidUntil
	item.TotalAmount = req.Subtotal + req.TaxAmount - req.Discount
	item.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*proposaldomain.Proposal, error) {
	return s.find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]proposaldomain.Proposal, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Transition(ctx context.Context, id string, next proposaldomain.Status) (*proposaldomain.Proposal, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if !item.Status.CanTransitionTo(next) {
		return nil, proposaldomain.ErrInvalidTransition
	}

	item.Status = next
	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) find(ctx context.Context, id string) (*proposaldomain.Proposal, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, proposaldomain.ErrInvalidID
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, proposaldomain.ErrNotFound
	}
	return item, nil
}

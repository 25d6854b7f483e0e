package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/brushworkslabs/brushworks/internal/docstore"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DocumentKey is where the rate book lives in the document store.
const DocumentKey = "pricing/ratebook"

type Params struct {
	fx.In

	Log   *zap.Logger
	Store docstore.Store
}

type Service struct {
	log   *zap.Logger
	store docstore.Store

	mu sync.Mutex
}

func New(p Params) ratebookdomain.Service {
	return &Service{
		log:   p.Log.Named("ratebook.service"),
		store: p.Store,
	}
}

func (s *Service) Get(ctx context.Context) (ratebookdomain.RateBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) SetBaseRate(ctx context.Context, rate float64) (ratebookdomain.RateBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return ratebookdomain.RateBook{}, err
	}
	book.SetBaseRate(rate)
	if err := s.save(ctx, book); err != nil {
		return ratebookdomain.RateBook{}, err
	}
	return book, nil
}

func (s *Service) Override(ctx context.Context, tier ratebookdomain.PackageTier, rate float64) (ratebookdomain.RateBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return ratebookdomain.RateBook{}, err
	}
	if err := book.MarkOverridden(tier, rate); err != nil {
		return ratebookdomain.RateBook{}, err
	}
	if err := s.save(ctx, book); err != nil {
		return ratebookdomain.RateBook{}, err
	}
	return book, nil
}

func (s *Service) ResetToAuto(ctx context.Context, tier ratebookdomain.PackageTier) (ratebookdomain.RateBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.load(ctx)
	if err != nil {
		return ratebookdomain.RateBook{}, err
	}
	if err := book.ResetToAuto(tier); err != nil {
		return ratebookdomain.RateBook{}, err
	}
	if err := s.save(ctx, book); err != nil {
		return ratebookdomain.RateBook{}, err
	}
	return book, nil
}

func (s *Service) load(ctx context.Context) (ratebookdomain.RateBook, error) {
	data, err := s.store.Get(ctx, DocumentKey)
	if err != nil {
		return ratebookdomain.RateBook{}, err
	}

	var book ratebookdomain.RateBook
	if !docstore.Decode(s.log, DocumentKey, data, &book) {
		return ratebookdomain.DefaultRateBook(), nil
	}
	if book.Rates == nil {
		book = ratebookdomain.DefaultRateBook()
	}
	if book.DebrisYards == nil {
		book.DebrisYards = ratebookdomain.DefaultRateBook().DebrisYards
	}
	return book, nil
}

func (s *Service) save(ctx context.Context, book ratebookdomain.RateBook) error {
	data, err := json.Marshal(book)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, DocumentKey, data)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/brushworkslabs/brushworks/internal/clock"
	"github.com/brushworkslabs/brushworks/internal/config"
	employeedomain "github.com/brushworkslabs/brushworks/internal/employee/domain"
	employeerepository "github.com/brushworkslabs/brushworks/internal/employee/repository"
	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	equipmentrepository "github.com/brushworkslabs/brushworks/internal/equipment/repository"
	loadoutdomain "github.com/brushworkslabs/brushworks/internal/loadout/domain"
	loadoutrepository "github.com/brushworkslabs/brushworks/internal/loadout/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T, pricing config.PricingConfig) loadoutdomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&employeedomain.Employee{},
		&equipmentdomain.Equipment{},
		&loadoutdomain.Loadout{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:            db,
		Log:           zap.NewNop(),
		GenID:         node,
		Repo:          loadoutrepository.Provide(),
		EmployeeRepo:  employeerepository.Provide(),
		EquipmentRepo: equipmentrepository.Provide(),
		Pricing:       config.NewStaticPricingConfigHolder(pricing),
		Clock:         clock.NewFakeClock(time.Date(2026, 6, 1, 7, 0, 0, 0, time.UTC)),
	})
}

func TestCreateUsesConfiguredMarkupWhenUnset(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	cfg.LoadoutMarkup = 1.8
	svc := newService(t, cfg)

	item, err := svc.Create(context.Background(), loadoutdomain.UpsertRequest{Name: "Mulching A"})
	require.NoError(t, err)
	assert.InDelta(t, 1.8, item.MarkupMultiplier, 1e-9)
}

func TestCreateKeepsExplicitMarkup(t *testing.T) {
	svc := newService(t, config.DefaultPricingConfig())

	item, err := svc.Create(context.Background(), loadoutdomain.UpsertRequest{
		Name:             "Mulching B",
		MarkupMultiplier: 2.0,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, item.MarkupMultiplier, 1e-9)
}

func TestCreateRejectsNegativeMarkup(t *testing.T) {
	svc := newService(t, config.DefaultPricingConfig())

	_, err := svc.Create(context.Background(), loadoutdomain.UpsertRequest{
		Name:             "Mulching C",
		MarkupMultiplier: -1,
	})
	assert.ErrorIs(t, err, loadoutdomain.ErrInvalidMarkup)
}

func TestUpdateAppliesConfiguredMarkupWhenCleared(t *testing.T) {
	cfg := config.DefaultPricingConfig()
	cfg.LoadoutMarkup = 1.6
	svc := newService(t, cfg)

	item, err := svc.Create(context.Background(), loadoutdomain.UpsertRequest{
		Name:             "Mulching D",
		MarkupMultiplier: 2.5,
	})
	require.NoError(t, err)

	item, err = svc.Update(context.Background(), item.ID.String(), loadoutdomain.UpsertRequest{Name: "Mulching D"})
	require.NoError(t, err)
	assert.InDelta(t, 1.6, item.MarkupMultiplier, 1e-9)
}

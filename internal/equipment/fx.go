package equipment

import (
	"github.com/brushworkslabs/brushworks/internal/equipment/repository"
	"github.com/brushworkslabs/brushworks/internal/equipment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("equipment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

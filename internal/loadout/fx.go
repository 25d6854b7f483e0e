package loadout

import (
	"github.com/brushworkslabs/brushworks/internal/loadout/repository"
	"github.com/brushworkslabs/brushworks/internal/loadout/service"
	"go.uber.org/fx"
)

var Module = fx.Module("loadout.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package workorder

import (
	"github.com/brushworkslabs/brushworks/internal/workorder/repository"
	"github.com/brushworkslabs/brushworks/internal/workorder/service"
	"go.uber.org/fx"
)

var Module = fx.Module("workorder.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

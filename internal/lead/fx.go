package lead

import (
	"github.com/brushworkslabs/brushworks/internal/lead/repository"
	"github.com/brushworkslabs/brushworks/internal/lead/service"
	"go.uber.org/fx"
)

var Module = fx.Module("lead.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

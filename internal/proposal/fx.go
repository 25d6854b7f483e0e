package proposal

import (
	"github.com/brushworkslabs/brushworks/internal/proposal/repository"
	"github.com/brushworkslabs/brushworks/internal/proposal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("proposal.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

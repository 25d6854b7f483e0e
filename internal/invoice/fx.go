package invoice

import (
	"github.com/brushworkslabs/brushworks/internal/invoice/repository"
	"github.com/brushworkslabs/brushworks/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package ratebook

import (
	"github.com/brushworkslabs/brushworks/internal/ratebook/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ratebook.service",
	fx.Provide(service.New),
)

package quote

import (
	"github.com/brushworkslabs/brushworks/internal/quote/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quote.service",
	fx.Provide(service.New),
)

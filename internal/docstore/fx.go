package docstore

import "go.uber.org/fx"

var Module = fx.Module("docstore",
	fx.Provide(New),
)

package employee

import (
	"github.com/brushworkslabs/brushworks/internal/employee/repository"
	"github.com/brushworkslabs/brushworks/internal/employee/service"
	"go.uber.org/fx"
)

var Module = fx.Module("employee.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

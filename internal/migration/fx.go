// Package migration creates the schema on startup so a fresh checkout is
// usable out of the box against sqlite, postgres or mysql.
package migration

import (
	"github.com/brushworkslabs/brushworks/internal/docstore"
	employeedomain "github.com/brushworkslabs/brushworks/internal/employee/domain"
	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	loadoutdomain "github.com/brushworkslabs/brushworks/internal/loadout/domain"
	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(Run),
)

func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&docstore.Document{},
		&equipmentdomain.Equipment{},
		&employeedomain.Employee{},
		&loadoutdomain.Loadout{},
		&leaddomain.Lead{},
		&proposaldomain.Proposal{},
		&workorderdomain.WorkOrder{},
		&invoicedomain.Invoice{},
	)
}

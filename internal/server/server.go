package server

import (
	"context"
	"net/http"
	"time"

	"github.com/brushworkslabs/brushworks/internal/config"
	employeedomain "github.com/brushworkslabs/brushworks/internal/employee/domain"
	equipmentdomain "github.com/brushworkslabs/brushworks/internal/equipment/domain"
	invoicedomain "github.com/brushworkslabs/brushworks/internal/invoice/domain"
	leaddomain "github.com/brushworkslabs/brushworks/internal/lead/domain"
	loadoutdomain "github.com/brushworkslabs/brushworks/internal/loadout/domain"
	proposaldomain "github.com/brushworkslabs/brushworks/internal/proposal/domain"
	quoteservice "github.com/brushworkslabs/brushworks/internal/quote/service"
	ratebookdomain "github.com/brushworkslabs/brushworks/internal/ratebook/domain"
	"github.com/brushworkslabs/brushworks/internal/routing"
	workorderdomain "github.com/brushworkslabs/brushworks/internal/workorder/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	rateBookSvc  ratebookdomain.Service
	quoteSvc     *quoteservice.Service
	equipmentSvc equipmentdomain.Service
	employeeSvc  employeedomain.Service
	loadoutSvc   loadoutdomain.Service
	leadSvc      leaddomain.Service
	proposalSvc  proposaldomain.Service
	workOrderSvc workorderdomain.Service
	invoiceSvc   invoicedomain.Service
	estimator    routing.Estimator
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	RateBookSvc  ratebookdomain.Service
	QuoteSvc     *quoteservice.Service
	EquipmentSvc equipmentdomain.Service
	EmployeeSvc  employeedomain.Service
	LoadoutSvc   loadoutdomain.Service
	LeadSvc      leaddomain.Service
	ProposalSvc  proposaldomain.Service
	WorkOrderSvc workorderdomain.Service
	InvoiceSvc   invoicedomain.Service
	Estimator    routing.Estimator
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("http.server"),
		rateBookSvc:  p.RateBookSvc,
		quoteSvc:     p.QuoteSvc,
		equipmentSvc: p.EquipmentSvc,
		employeeSvc:  p.EmployeeSvc,
		loadoutSvc:   p.LoadoutSvc,
		leadSvc:      p.LeadSvc,
		proposalSvc:  p.ProposalSvc,
		workOrderSvc: p.WorkOrderSvc,
		invoiceSvc:   p.InvoiceSvc,
		estimator:    p.Estimator,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Rate Book --------
	api.GET("/ratebook", s.GetRateBook)
	api.PUT("/ratebook/base-rate", s.SetBaseRate)
	api.PUT("/ratebook/tiers/:tier", s.OverrideTierRate)
	api.POST("/ratebook/tiers/:tier/reset", s.ResetTierRate)

	// -------- Quotes --------
	api.POST("/quotes/calculate", s.CalculateQuote)

	// -------- Equipment --------
	api.GET("/equipment", s.ListEquipment)
	api.POST("/equipment", s.CreateEquipment)
	api.GET("/equipment/:id", s.GetEquipmentByID)
	api.PATCH("/equipment/:id", s.UpdateEquipment)
	api.DELETE("/equipment/:id", s.DeleteEquipment)
	api.GET("/equipment/:id/insights", s.GetEquipmentInsights)

	// -------- Employees --------
	api.GET("/employees", s.ListEmployees)
	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees/:id", s.GetEmployeeByID)
	api.PATCH("/employees/:id", s.UpdateEmployee)
	api.DELETE("/employees/:id", s.DeleteEmployee)

	// -------- Loadouts --------
	api.GET("/loadouts", s.ListLoadouts)
	api.POST("/loadouts", s.CreateLoadout)
	api.GET("/loadouts/:id", s.GetLoadoutByID)
	api.PATCH("/loadouts/:id", s.UpdateLoadout)
	api.DELETE("/loadouts/:id", s.DeleteLoadout)
	api.GET("/loadouts/:id/calculation", s.GetLoadoutCalculation)

	// -------- Leads --------
	api.GET("/leads", s.ListLeads)
	api.POST("/leads", s.CreateLead)
	api.GET("/leads/:id", s.GetLeadByID)
	api.PATCH("/leads/:id", s.UpdateLead)
	api.POST("/leads/:id/transition", s.TransitionLead)
	api.POST("/leads/:id/transport-estimate", s.EstimateLeadTransport)
	api.POST("/leads/:id/proposal", s.CreateProposalFromLead)

	// -------- Proposals --------
	api.GET("/proposals", s.ListProposals)
	api.GET("/proposals/:id", s.GetProposalByID)
	api.PATCH("/proposals/:id/pricing", s.UpdateProposalPricing)
	api.POST("/proposals/:id/transition", s.TransitionProposal)
	api.POST("/proposals/:id/work-order", s.CreateWorkOrderFromProposal)

	// -------- Work Orders --------
	api.GET("/work-orders", s.ListWorkOrders)
	api.GET("/work-orders/:id", s.GetWorkOrderByID)
	api.PATCH("/work-orders/:id/work", s.UpdateWorkOrderWork)
	api.POST("/work-orders/:id/transition", s.TransitionWorkOrder)
	api.POST("/work-orders/:id/invoice", s.CreateInvoiceFromWorkOrder)

	// -------- Invoices --------
	api.GET("/invoices", s.ListInvoices)
	api.GET("/invoices/:id", s.GetInvoiceByID)
	api.PATCH("/invoices/:id/charges", s.UpdateInvoiceCharges)
	api.POST("/invoices/:id/payments", s.RecordInvoicePayment)
	api.POST("/invoices/:id/transition", s.TransitionInvoice)

	// -------- Reference --------
	api.GET("/reference/tiers", s.ListTierOptions)
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"workshop/internal/adapters/in/roster"
	"workshop/internal/adapters/out/memory"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/config"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/domain/services"
	"workshop/internal/jobs"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// CompositionRoot owns the entity graph repositories and the payroll
// database, and builds the handlers on top of them.
type CompositionRoot struct {
	cfg          config.Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	mechanics    *memory.MechanicRepository
	workOrders   *memory.WorkOrderRepository
	invoices     *memory.InvoiceRepository
	paymentMeans *memory.PaymentMeanRepository
	vatSchedule  workshop.VATSchedule
	generator    services.PayrollGenerator
	refs         roster.Refs
	logger       *slog.Logger
}

func NewCompositionRoot(cfg config.Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	vatSchedule, err := cfg.Fiscal.VATSchedule()
	if err != nil {
		return nil, fmt.Errorf("vat schedule: %w", err)
	}
	rules, err := cfg.Fiscal.PayrollRules()
	if err != nil {
		return nil, fmt.Errorf("payroll rules: %w", err)
	}
	generator, err := services.NewPayrollGenerator(rules)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:          cfg,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		mechanics:    memory.NewMechanicRepository(),
		workOrders:   memory.NewWorkOrderRepository(),
		invoices:     memory.NewInvoiceRepository(),
		paymentMeans: memory.NewPaymentMeanRepository(),
		vatSchedule:  vatSchedule,
		generator:    generator,
		logger:       logger,
	}, nil
}

// SeedRoster loads the roster file into the entity graph: the mechanics with
// their contracts, then the work orders, payment means and invoices of its
// shop sections.
func (c *CompositionRoot) SeedRoster(ctx context.Context, path string) (int, error) {
	r, err := roster.LoadFile(path)
	if err != nil {
		return 0, err
	}
	n, err := roster.Seed(ctx, r, c.mechanics)
	if err != nil {
		return n, err
	}
	c.refs, err = roster.SeedShop(ctx, r, roster.ShopRepositories{
		Mechanics:    c.mechanics,
		WorkOrders:   c.workOrders,
		PaymentMeans: c.paymentMeans,
		Invoices:     c.invoices,
	}, c.vatSchedule)
	if err != nil {
		return n, err
	}
	c.logger.InfoContext(ctx, "Roster loaded", "file", path, "mechanics", n,
		"work_orders", len(c.refs.WorkOrders), "payment_means", len(c.refs.PaymentMeans), "invoices", len(r.Invoices))
	return n, nil
}

// WorkOrderID resolves a work order ref of the roster, or parses a UUID.
func (c *CompositionRoot) WorkOrderID(ref string) (kernel.UUID, error) {
	return resolve(c.refs.WorkOrders, "work order", ref)
}

// PaymentMeanID resolves a payment mean ref of the roster, or parses a UUID.
func (c *CompositionRoot) PaymentMeanID(ref string) (kernel.UUID, error) {
	return resolve(c.refs.PaymentMeans, "payment mean", ref)
}

func resolve(refs map[string]kernel.UUID, entity, ref string) (kernel.UUID, error) {
	if id, ok := refs[ref]; ok {
		return id, nil
	}
	id, err := kernel.UUIDFromString(ref)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundError(entity, ref)
	}
	return id, nil
}

// FinishedWorkOrderIDs lists the work orders waiting to be invoiced, oldest
// first.
func (c *CompositionRoot) FinishedWorkOrderIDs(ctx context.Context) ([]kernel.UUID, error) {
	finished, err := c.workOrders.GetAllFinished(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]kernel.UUID, 0, len(finished))
	for _, wo := range finished {
		ids = append(ids, wo.ID())
	}
	return ids, nil
}

// Invoice returns the invoice with the given number.
func (c *CompositionRoot) Invoice(ctx context.Context, number int64) (*workshop.Invoice, error) {
	return c.invoices.Get(ctx, number)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.invoices, c.workOrders, c.vatSchedule)
}

func (c *CompositionRoot) CreateSettleInvoiceCommandHandler() commands.SettleInvoiceCommandHandler {
	return commands.NewSettleInvoiceCommandHandler(c.invoices, c.paymentMeans)
}

func (c *CompositionRoot) CreateTerminateContractCommandHandler() commands.TerminateContractCommandHandler {
	return commands.NewTerminateContractCommandHandler(c.mechanics)
}

func (c *CompositionRoot) CreateGeneratePayrollsCommandHandler() commands.GeneratePayrollsCommandHandler {
	var f commands.PayrollUoWFactory = FuncPayrollUoWFactory(func() commands.PayrollUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGeneratePayrollsCommandHandler(c.mechanics, f, c.generator)
}

func (c *CompositionRoot) CreateGetPayrollsQueryHandler() queries.GetPayrollsQueryHandler {
	return queries.NewGetPayrollsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGeneratePayrollsCommandHandler(), c.cfg.Payroll.Schedule, c.logger)
}

type FuncPayrollUoWFactory func() commands.PayrollUoW

func (f FuncPayrollUoWFactory) Create() commands.PayrollUoW {
	return f()
}

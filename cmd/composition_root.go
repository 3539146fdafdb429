package cmd

import (
	"delivr/internal/adapters/out/postgres"
	"delivr/internal/core/application/usecases/commands"
	"delivr/internal/core/application/usecases/queries"
	"delivr/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: the shared gorm connection,
// the unit of work factory and the pricing configuration every handler is
// built from.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateDeliverySettler builds the settlement service from the configured
// earnings rate and base fee.
func (c *CompositionRoot) CreateDeliverySettler() (services.DeliverySettler, error) {
	calculator, err := services.NewEarningsCalculator(c.config.EarningsRate, c.config.EarningsBaseFee)
	if err != nil {
		return services.DeliverySettler{}, err
	}
	return services.NewDeliverySettler(calculator), nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler(
	settler services.DeliverySettler,
) commands.AdvanceOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, settler)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerLocationCommandHandler() commands.UpdatePartnerLocationCommandHandler {
	return commands.NewUpdatePartnerLocationCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartnerStatusCommandHandler() commands.UpdatePartnerStatusCommandHandler {
	return commands.NewUpdatePartnerStatusCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateResetPartnerEarningsCommandHandler() commands.ResetPartnerEarningsCommandHandler {
	return commands.NewResetPartnerEarningsCommandHandler(c.partnerUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClaimableOrdersQueryHandler() queries.GetClaimableOrdersQueryHandler {
	return queries.NewGetClaimableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerProfileQueryHandler() queries.GetPartnerProfileQueryHandler {
	return queries.NewGetPartnerProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPartnersQueryHandler() queries.ListPartnersQueryHandler {
	return queries.NewListPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAnalyticsQueryHandler() queries.GetAnalyticsQueryHandler {
	return queries.NewGetAnalyticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	"delivr/internal/adapters/out/postgres"
	"delivr/internal/adapters/out/postgres/orderrepo"
	"delivr/internal/adapters/out/postgres/partnerrepo"
	"delivr/internal/adapters/out/postgres/restaurantrepo"
	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/core/domain/model/partner"
	"delivr/internal/core/domain/model/restaurant"
	"delivr/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// order, partner and catalog repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&partnerrepo.PartnerDTO{},
		&restaurantrepo.RestaurantDTO{}, &restaurantrepo.MenuItemDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, delivery_partners, restaurants, menu_items").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MultiRepositoryTransaction_PersistsEverything() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	testPartner := suite.createTestPartner()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, testPartner))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	persistedOrder, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Reference(), persistedOrder.Reference())

	persistedPartner, err := verify.PartnerRepository().Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(testPartner.UserID(), persistedPartner.UserID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterWrites_DiscardsEverything() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	testPartner := suite.createTestPartner()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, testPartner))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	_, err = verify.PartnerRepository().Get(ctx, testPartner.ID())
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_IsNoOp() {
	uow := suite.factory.Create()
	suite.NoError(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRestaurantRepository_CatalogRoundTrip() {
	ctx := context.Background()

	location, err := kernel.NewGeoPoint(12.9352, 77.6245)
	suite.Require().NoError(err)
	testRestaurant, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "Udupi Grand", "South Indian", "5th Block, Koramangala",
		location, 4.2, true)
	suite.Require().NoError(err)

	dosa, err := restaurant.NewMenuItem(
		kernel.NewUUID(), testRestaurant.ID(),
		"Masala Dosa", "crisp, with potato filling", 120, "Tiffin", true, true)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, testRestaurant))
	suite.Require().NoError(uow.RestaurantRepository().AddMenuItem(ctx, dosa))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	persisted, err := verify.RestaurantRepository().Get(ctx, testRestaurant.ID())
	suite.Require().NoError(err)
	suite.Equal("Udupi Grand", persisted.Name())
	suite.True(persisted.IsOpen())

	menu, err := verify.RestaurantRepository().GetMenuItems(ctx, testRestaurant.ID())
	suite.Require().NoError(err)
	suite.Require().Len(menu, 1)
	suite.Equal("Masala Dosa", menu[0].Name())
	suite.Equal(int64(120), menu[0].Price())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Paneer Tikka", 1, 250, nil)
	suite.Require().NoError(err)
	address, err := order.NewAddress("7 Residency Road", "", "Bengaluru", "560025")
	suite.Require().NoError(err)
	totals, err := order.NewTotals(250, 40, 25, 0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, address, totals, order.PaymentMethodCOD, "")
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestPartner() *partner.DeliveryPartner {
	p, err := partner.NewDeliveryPartner(
		kernel.NewUUID(), kernel.NewUUID(), partner.VehicleScooter, "KA05CD5678", "DL-1420110098765")
	suite.Require().NoError(err)
	return p
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

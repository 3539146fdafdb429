package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"delivr/internal/adapters/out/postgres/orderrepo"
	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises order persistence against a
// real PostgreSQL container, including the conditional claim UPDATE.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_RoundTripsWithItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.Reference(), retrieved.Reference())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal(order.StatusConfirmed, retrieved.Status())
	suite.Equal(order.PaymentStatusCompleted, retrieved.PaymentStatus())
	suite.Nil(retrieved.DeliveryPartner())

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Veg Biryani", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal([]string{"extra raita"}, items[0].Customizations())
	suite.Equal(int64(565), retrieved.Totals().GrandTotal())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CancelledOrder_ClearsPartnerColumn() {
	ctx := context.Background()

	partnerID := kernel.NewUUID()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Claim(partnerID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	released, err := testOrder.Cancel()
	suite.Require().NoError(err)
	suite.Require().NotNil(released)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusCancelled, retrieved.Status())
	suite.Nil(retrieved.DeliveryPartner())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_UnclaimedConfirmedOrder_AssignsPartner() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	partnerID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Claim(ctx, testOrder.ID(), partnerID))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPreparing, retrieved.Status())
	suite.Require().NotNil(retrieved.DeliveryPartner())
	suite.True(partnerID.IsEqual(*retrieved.DeliveryPartner()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_AlreadyClaimedOrder_ReturnsAlreadyAssignedError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Claim(ctx, testOrder.ID(), kernel.NewUUID()))

	err := suite.repository.Claim(ctx, testOrder.ID(), kernel.NewUUID())
	suite.Require().Error(err)
	var assignedErr *errs.ObjectAlreadyAssignedError
	suite.Require().ErrorAs(err, &assignedErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Claim(context.Background(), kernel.NewUUID(), kernel.NewUUID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// TestClaim_ConcurrentPartners_ExactlyOneWins races several partners for the
// same order; the conditional UPDATE must let exactly one through.
func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_ConcurrentPartners_ExactlyOneWins() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const racers = 10
	partnerIDs := make([]kernel.UUID, racers)
	outcomes := make([]error, racers)
	var g errgroup.Group
	for i := range racers {
		partnerIDs[i] = kernel.NewUUID()
		g.Go(func() error {
			outcomes[i] = suite.repository.Claim(ctx, testOrder.ID(), partnerIDs[i])
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	winners := 0
	for _, err := range outcomes {
		if err == nil {
			winners++
			continue
		}
		var assignedErr *errs.ObjectAlreadyAssignedError
		suite.Require().ErrorAs(err, &assignedErr)
	}
	suite.Equal(1, winners)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusPreparing, retrieved.Status())
	suite.Require().NotNil(retrieved.DeliveryPartner())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllClaimable_MixedOrders_ReturnsUnclaimedOldestFirst() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	first := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	second := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, second))
	claimed := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, claimed))
	suite.Require().NoError(suite.repository.Claim(ctx, claimed.ID(), kernel.NewUUID()))

	claimable, err := suite.repository.GetAllClaimable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(claimable, 2)
	suite.Equal(first.ID(), claimable[0].ID())
	suite.Equal(second.ID(), claimable[1].ID())
	for _, o := range claimable {
		suite.Equal(order.StatusConfirmed, o.Status())
		suite.Nil(o.DeliveryPartner())
		suite.NotEmpty(o.Items())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAssignedToPartner_SkipsTerminalOrders() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	partnerID := kernel.NewUUID()

	carried := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, carried))
	suite.Require().NoError(suite.repository.Claim(ctx, carried.ID(), partnerID))

	finished := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, finished))
	suite.Require().NoError(suite.repository.Claim(ctx, finished.ID(), partnerID))
	suite.Require().NoError(finished.Claim(partnerID))
	for _, next := range []order.Status{
		order.StatusReady, order.StatusPickedUp, order.StatusOutForDelivery, order.StatusDelivered,
	} {
		suite.Require().NoError(finished.AdvanceTo(next))
	}
	suite.Require().NoError(suite.repository.Update(ctx, finished))

	other := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, other))
	suite.Require().NoError(suite.repository.Claim(ctx, other.ID(), kernel.NewUUID()))

	assigned, err := suite.repository.GetAllAssignedToPartner(ctx, partnerID)
	suite.Require().NoError(err)

	suite.Require().Len(assigned, 1)
	suite.Equal(carried.ID(), assigned[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder builds a confirmed two-item order worth 565.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	biryani, err := order.NewItem(kernel.NewUUID(), "Veg Biryani", 2, 200, []string{"extra raita"})
	suite.Require().NoError(err)
	lassi, err := order.NewItem(kernel.NewUUID(), "Sweet Lassi", 1, 100, nil)
	suite.Require().NoError(err)

	address, err := order.NewAddress("12 MG Road", "Indiranagar", "Bengaluru", "560038")
	suite.Require().NoError(err)
	totals, err := order.NewTotals(500, 40, 25, 0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{biryani, lassi}, address, totals,
		order.PaymentMethodUPI, "ring the bell")
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

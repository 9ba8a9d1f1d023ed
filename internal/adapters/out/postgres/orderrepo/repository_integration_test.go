package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/itemrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/item"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including line item preloading and the status
// round trip.
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

	suite.Require().NoError(db.AutoMigrate(&itemrepo.ItemDTO{}, &orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE line_items, orders, items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestItem(units int64, inventory int) *item.Item {
	price, err := kernel.NewMoney(units, 0)
	suite.Require().NoError(err)

	testItem, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Widget", price, inventory)
	suite.Require().NoError(err)

	return testItem
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(items ...*item.Item) *order.Order {
	addr, err := order.NewShippingAddress(
		"Ada Lovelace", "12 Analytical Way", "London", "LN", "10001")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), addr, time.Now())
	suite.Require().NoError(err)

	for _, testItem := range items {
		_, err = testOrder.AddItem(kernel.NewUUID(), testItem, 2)
		suite.Require().NoError(err)
	}

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_OrderWithLineItems_RoundTrip() {
	ctx := context.Background()
	itemA := suite.createTestItem(100, 10)
	itemB := suite.createTestItem(10, 10)
	testOrder := suite.createTestOrder(itemA, itemB)

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loaded.Status())
	suite.Require().Len(loaded.LineItems(), 2)
	suite.True(loaded.LineItems()[0].ItemID().IsEqual(itemA.ID()))
	suite.True(loaded.LineItems()[1].ItemID().IsEqual(itemB.ID()))
	suite.Equal("220.00", loaded.GrandTotal().String())
	suite.Equal("Ada Lovelace", loaded.ShippingAddress().Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FulfillmentState_Persisted() {
	ctx := context.Background()
	testItem := suite.createTestItem(25, 10)
	testOrder := suite.createTestOrder(testItem)
	lineItem := testOrder.LineItems()[0]

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.FulfillLineItem(lineItem.ID(), testItem))
	suite.Require().True(testOrder.Pack())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Packaged, loaded.Status())
	suite.True(loaded.LineItems()[0].IsFulfilled())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CancelledOrder_LineItemResetPersisted() {
	ctx := context.Background()
	testItem := suite.createTestItem(25, 10)
	testOrder := suite.createTestOrder(testItem)
	lineItem := testOrder.LineItems()[0]

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.FulfillLineItem(lineItem.ID(), testItem))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// Cancel moves the line item back to unfulfilled, the zero ordinal, and
	// that reset must reach the database like any other value.
	suite.Require().NoError(testOrder.Cancel([]*item.Item{testItem}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, loaded.Status())
	suite.False(loaded.LineItems()[0].IsFulfilled())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ObjectNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByLineItemID_ReturnsOwningOrder() {
	ctx := context.Background()
	testItem := suite.createTestItem(25, 10)
	testOrder := suite.createTestOrder(testItem)
	lineItem := testOrder.LineItems()[0]

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByLineItemID(ctx, lineItem.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByLineItemID_UnknownLineItem_ObjectNotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByLineItemID(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPendingStatus_FiltersByStatus() {
	ctx := context.Background()
	testItem := suite.createTestItem(25, 10)

	pendingOrder := suite.createTestOrder(testItem)
	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))

	packagedOrder := suite.createTestOrder(testItem)
	lineItem := packagedOrder.LineItems()[0]
	suite.Require().NoError(packagedOrder.FulfillLineItem(lineItem.ID(), testItem))
	suite.Require().True(packagedOrder.Pack())
	suite.Require().NoError(suite.repository.Add(ctx, packagedOrder))

	pending, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(pending[0].ID().IsEqual(pendingOrder.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShipOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	catalogItem := testCatalogItem(t, 10, 10)
	aggregate, line := pendingOrderWithLine(t, catalogItem, 2)
	require.NoError(t, aggregate.FulfillLineItem(line.ID(), catalogItem))
	require.True(t, aggregate.Pack())

	cmd, err := commands.NewShipOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderStatusChanged", mock.Anything, mock.MatchedBy(func(e ports.OrderStatusChangedEvent) bool {
		return e.Status == order.Shipped && e.OrderID.IsEqual(aggregate.ID())
	})).Return(nil).Once()

	h := commands.NewShipOrderCommandHandler(factory, publisher, testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestShipOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()

	catalogItem := testCatalogItem(t, 10, 10)
	aggregate, _ := pendingOrderWithLine(t, catalogItem, 2)

	cmd, err := commands.NewShipOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
	)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewShipOrderCommandHandler(factory, publisher, testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorContains(t, err, "is not a valid status to ship")
	assert.Equal(t, order.Pending, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged", mock.Anything, mock.Anything)
}

// Package http exposes the marketplace operations over a JSON REST API.
// It translates HTTP requests into commands and queries, and domain errors
// into status codes: unknown objects map to 404, malformed input to 400 and
// business rule violations (inventory, illegal transitions) to 409.
package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned on every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createItemHandler      commands.CreateItemCommandHandler
	changeItemPriceHandler commands.ChangeItemPriceCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	fulfillLineItemHandler commands.FulfillLineItemCommandHandler
	packOrderHandler       commands.PackOrderCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler

	// Query handlers
	getOrdersSortedHandler    queries.GetOrdersSortedByStatusQueryHandler
	getMerchantItemsHandler   queries.GetMerchantLineItemsQueryHandler
	getOrderGrandTotalHandler queries.GetOrderGrandTotalQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createItemHandler commands.CreateItemCommandHandler,
	changeItemPriceHandler commands.ChangeItemPriceCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	fulfillLineItemHandler commands.FulfillLineItemCommandHandler,
	packOrderHandler commands.PackOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrdersSortedHandler queries.GetOrdersSortedByStatusQueryHandler,
	getMerchantItemsHandler queries.GetMerchantLineItemsQueryHandler,
	getOrderGrandTotalHandler queries.GetOrderGrandTotalQueryHandler,
) *Server {
	return &Server{
		createItemHandler:         createItemHandler,
		changeItemPriceHandler:    changeItemPriceHandler,
		createOrderHandler:        createOrderHandler,
		fulfillLineItemHandler:    fulfillLineItemHandler,
		packOrderHandler:          packOrderHandler,
		shipOrderHandler:          shipOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		getOrdersSortedHandler:    getOrdersSortedHandler,
		getMerchantItemsHandler:   getMerchantItemsHandler,
		getOrderGrandTotalHandler: getOrderGrandTotalHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/items", s.CreateItem)
	api.PATCH("/items/:itemID/price", s.ChangeItemPrice)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderID/total", s.GetOrderGrandTotal)
	api.POST("/orders/:orderID/pack", s.PackOrder)
	api.POST("/orders/:orderID/ship", s.ShipOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.POST("/line-items/:lineItemID/fulfill", s.FulfillLineItem)
	api.GET("/orders/:orderID/merchants/:merchantID/line-items", s.GetMerchantLineItems)
}

// NewItemRequest is the body of POST /api/v1/items.
type NewItemRequest struct {
	MerchantID string `json:"merchant_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Inventory  int    `json:"inventory"`
}

// CreateItem handles POST /api/v1/items - adds an item to the catalog.
func (s *Server) CreateItem(ctx echo.Context) error {
	var req NewItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return badRequest(ctx, "Invalid merchant id: "+err.Error())
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, merchantID, req.Name, price, req.Inventory)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.createItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// ChangePriceRequest is the body of PATCH /api/v1/items/{itemID}/price.
type ChangePriceRequest struct {
	Price string `json:"price"`
}

// ChangeItemPrice handles PATCH /api/v1/items/{itemID}/price.
func (s *Server) ChangeItemPrice(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, "Invalid item id: "+err.Error())
	}

	var req ChangePriceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewChangeItemPriceCommand(itemID, price)
	if err != nil {
		return badRequest(ctx, "Invalid price data: "+err.Error())
	}

	if err = s.changeItemPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	UserID   string              `json:"user_id"`
	Shipping ShippingAddressBody `json:"shipping_address"`
	Lines    []OrderLineBody     `json:"line_items"`
}

// ShippingAddressBody carries the five required shipping fields.
type ShippingAddressBody struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// OrderLineBody is one requested item/quantity pair.
type OrderLineBody struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	shippingAddress, err := order.NewShippingAddress(
		req.Shipping.Name, req.Shipping.Address, req.Shipping.City, req.Shipping.State, req.Shipping.Zip)
	if err != nil {
		return badRequest(ctx, "Invalid shipping address: "+err.Error())
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, lineBody := range req.Lines {
		itemID, lineErr := kernel.UUIDFromString(lineBody.ItemID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid item id: "+lineErr.Error())
		}

		line, lineErr := commands.NewOrderLine(itemID, lineBody.Quantity)
		if lineErr != nil {
			return badRequest(ctx, "Invalid line item: "+lineErr.Error())
		}

		lines = append(lines, line)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, userID, shippingAddress, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// OrderResponse is one order row of GET /api/v1/orders.
type OrderResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	GrandTotal string    `json:"grand_total"`
}

// GetOrders handles GET /api/v1/orders - the sorted dashboard listing.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersSortedByStatusQuery()

	orders, err := s.getOrdersSortedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:         o.ID.String(),
			UserID:     o.UserID.String(),
			Status:     o.Status.String(),
			CreatedAt:  o.CreatedAt,
			GrandTotal: o.GrandTotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GrandTotalResponse is the body of GET /api/v1/orders/{orderID}/total.
type GrandTotalResponse struct {
	OrderID    string `json:"order_id"`
	GrandTotal string `json:"grand_total"`
}

// GetOrderGrandTotal handles GET /api/v1/orders/{orderID}/total.
func (s *Server) GetOrderGrandTotal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderGrandTotalQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	total, err := s.getOrderGrandTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GrandTotalResponse{
		OrderID:    total.OrderID.String(),
		GrandTotal: total.GrandTotal.String(),
	})
}

// PackOrder handles POST /api/v1/orders/{orderID}/pack.
func (s *Server) PackOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewPackOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.packOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/{orderID}/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderID}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FulfillLineItem handles POST /api/v1/line-items/{lineItemID}/fulfill.
func (s *Server) FulfillLineItem(ctx echo.Context) error {
	lineItemID, err := kernel.UUIDFromString(ctx.Param("lineItemID"))
	if err != nil {
		return badRequest(ctx, "Invalid line item id: "+err.Error())
	}

	cmd, err := commands.NewFulfillLineItemCommand(lineItemID)
	if err != nil {
		return badRequest(ctx, "Invalid line item id: "+err.Error())
	}

	if err = s.fulfillLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MerchantLineItemResponse is one row of a merchant's slice of an order.
type MerchantLineItemResponse struct {
	LineItemID  string `json:"line_item_id"`
	OrderID     string `json:"order_id"`
	OrderStatus string `json:"order_status"`
	ItemID      string `json:"item_id"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Status      string `json:"status"`
}

// GetMerchantLineItems handles GET /api/v1/orders/{orderID}/merchants/{merchantID}/line-items.
func (s *Server) GetMerchantLineItems(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	merchantID, err := kernel.UUIDFromString(ctx.Param("merchantID"))
	if err != nil {
		return badRequest(ctx, "Invalid merchant id: "+err.Error())
	}

	query, err := queries.NewGetMerchantLineItemsQuery(orderID, merchantID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	lineItems, err := s.getMerchantItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]MerchantLineItemResponse, len(lineItems))
	for i, li := range lineItems {
		response[i] = MerchantLineItemResponse{
			LineItemID:  li.LineItemID.String(),
			OrderID:     li.OrderID.String(),
			OrderStatus: li.OrderStatus.String(),
			ItemID:      li.ItemID.String(),
			ItemName:    li.ItemName,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice.String(),
			Status:      li.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps use case failures onto status codes. Unknown objects are
// 404, invalid input 400 and everything else a business conflict.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}
}

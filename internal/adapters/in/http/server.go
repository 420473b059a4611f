// Package http exposes the order service REST API.
// It translates HTTP requests into commands and queries and maps domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  commands.CreateOrderCommandHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		getOrderByIDHandler: getOrderByIDHandler,
	}
}

// RegisterRoutes mounts the API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderNumber", s.GetOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
//
//	@Summary		Create order
//	@Description	Creates an order from invoice details and requested items.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Order to create"
//	@Success		201		{object}	CreateOrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.InvoiceAddress, req.InvoiceEmail, req.CreditCardNumber, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeCreateOrderError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation,
		fmt.Sprintf("/api/v1/orders/%s", orderID.String()))
	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderNumber: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderNumber} - retrieves a single order.
//
//	@Summary		Get order
//	@Description	Returns an order with its lines and total.
//	@Tags			orders
//	@Produce		json
//	@Param			orderNumber	path		string	true	"Order number (UUID)"
//	@Success		200			{object}	OrderResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/{orderNumber} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderByIDQuery(ctx.Param("orderNumber"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	lines := make([]OrderLineResponse, 0, len(result.Lines))
	for _, line := range result.Lines {
		lines = append(lines, OrderLineResponse{
			LineID:      line.ID.String(),
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice.String(),
			Quantity:    line.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		OrderNumber:             result.ID.String(),
		InvoiceAddress:          result.InvoiceAddress,
		InvoiceEmail:            result.InvoiceEmail,
		InvoiceCreditCardNumber: result.InvoiceCreditCardNumber,
		CreatedAt:               result.CreatedAt,
		Lines:                   lines,
		Total:                   result.Total.String(),
	})
}

// writeCreateOrderError maps order creation failures onto HTTP status codes.
func (s *Server) writeCreateOrderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Unknown product: " + err.Error(),
		})
	case errors.Is(err, order.ErrInsufficientStock):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}
}

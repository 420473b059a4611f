package http

import "time"

// CreateOrderRequest is the payload for POST /api/v1/orders.
type CreateOrderRequest struct {
	InvoiceAddress   string             `json:"invoiceAddress"`
	InvoiceEmail     string             `json:"invoiceEmail"`
	CreditCardNumber string             `json:"creditCardNumber"`
	Items            []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested order position.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderResponse carries the number of the newly created order.
type CreateOrderResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// OrderResponse is the representation of an order returned by GET /api/v1/orders/{orderNumber}.
type OrderResponse struct {
	OrderNumber             string              `json:"orderNumber"`
	InvoiceAddress          string              `json:"invoiceAddress"`
	InvoiceEmail            string              `json:"invoiceEmail"`
	InvoiceCreditCardNumber string              `json:"invoiceCreditCardNumber"`
	CreatedAt               time.Time           `json:"createdAt"`
	Lines                   []OrderLineResponse `json:"lines"`
	Total                   string              `json:"total"`
}

// OrderLineResponse is one order position within OrderResponse.
type OrderLineResponse struct {
	LineID      string `json:"lineId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

// ErrorResponse is the error body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package commands

import (
	"context"
	"log/slog"
	"strings"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/product"
	"orderservice/internal/core/domain/services"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It resolves the requested products from the catalog, verifies the resolved
// set covers every requested product, builds the aggregate through the
// OrderBuilder, and persists it transactionally.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, productRepo, publisher, logger)
//	cmd, _ := NewCreateOrderCommand("123 Main St", "a@b.com", "4111111111111111",
//	    []OrderItemRequest{{ProductID: "1", Quantity: 2}})
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	productRepo ports.ProductRepository
	builder     services.OrderBuilder
	publisher   ports.EventPublisher
	logger      *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence, a ProductRepository
// to resolve catalog snapshots, and an EventPublisher for drained domain events.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	productRepo ports.ProductRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		productRepo: productRepo,
		builder:     services.NewOrderBuilder(),
		publisher:   publisher,
		logger:      logger.With("component", "create_order_command_handler"),
	}
}

// Handle processes the order creation command and returns the new order's identifier.
//
// The resolved product set must cover every requested product id; a shortfall
// is surfaced as an errs.ObjectNotFoundError before the builder runs, so the
// builder's own resolution-mismatch failure only ever signals a programming
// error. Domain events are published after commit; publication failures are
// logged and do not fail the already-committed order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	requestedIDs := uniqueProductIDs(cmd.Items())
	products, err := h.productRepo.FindByIDs(ctx, requestedIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	if len(products) != len(requestedIDs) {
		missing := missingProductIDs(requestedIDs, products)
		return kernel.UUID{}, errs.NewObjectNotFoundError("productId", strings.Join(missing, ", "))
	}

	items := make([]services.Item, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		items = append(items, services.Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	newOrder, err := h.builder.Build(
		cmd.InvoiceAddress(),
		cmd.InvoiceEmail(),
		cmd.InvoiceCreditCardNumber(),
		items,
		products,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if events := newOrder.PopDomainEvents(); len(events) > 0 {
		if err = h.publisher.Publish(ctx, events); err != nil {
			h.logger.WarnContext(ctx, "failed to publish domain events",
				"order_id", newOrder.ID().String(), "error", err)
		}
	}

	h.logger.InfoContext(ctx, "order created", "order_id", newOrder.ID().String())
	return newOrder.ID(), nil
}

// uniqueProductIDs returns the distinct product ids in first-occurrence order.
func uniqueProductIDs(items []OrderItemRequest) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// missingProductIDs returns the requested ids the catalog did not resolve.
func missingProductIDs(requested []string, resolved []*product.Product) []string {
	found := make(map[string]struct{}, len(resolved))
	for _, p := range resolved {
		if p != nil {
			found[p.ID()] = struct{}{}
		}
	}

	missing := make([]string, 0, len(requested))
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

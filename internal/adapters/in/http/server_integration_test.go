package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "orderservice/internal/adapters/in/http"
	"orderservice/internal/adapters/out/catalog"
	"orderservice/internal/adapters/out/eventlog"
	pgadapter "orderservice/internal/adapters/out/postgres"
	"orderservice/internal/adapters/out/postgres/orderrepo"
	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// gormUoWFactory adapts the postgres unit of work factory to the
// command handler's factory interface.
type gormUoWFactory struct {
	factory *pgadapter.GormUnitOfWorkFactory
}

func (f gormUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type ServerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	echo      *echo.Echo
}

func (suite *ServerIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{})
	suite.Require().NoError(err)

	logger := slog.New(slog.DiscardHandler)
	productRepo, err := catalog.NewSeededProductRepository()
	suite.Require().NoError(err)

	createHandler := commands.NewCreateOrderCommandHandler(
		gormUoWFactory{factory: pgadapter.NewGormUnitOfWorkFactory(db)},
		productRepo,
		eventlog.NewSlogEventPublisher(logger),
		logger,
	)

	suite.echo = echo.New()
	adapter.NewServer(createHandler, queries.NewGetOrderByIDQueryHandler(db)).
		RegisterRoutes(suite.echo)
}

func (suite *ServerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ServerIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error
	suite.Require().NoError(err)
}

func (suite *ServerIntegrationTestSuite) request(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerIntegrationTestSuite) createOrder() string {
	rec := suite.request(http.MethodPost, "/api/v1/orders", `{
		"invoiceAddress": "123 Main St",
		"invoiceEmail": "customer@example.com",
		"creditCardNumber": "4111111111111111",
		"items": [
			{"productId": "1", "quantity": 2},
			{"productId": "2", "quantity": 1}
		]
	}`)
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var resp adapter.CreateOrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Require().NotEmpty(resp.OrderNumber)
	return resp.OrderNumber
}

func (suite *ServerIntegrationTestSuite) TestGetOrder_ReturnsFullProjection() {
	orderNumber := suite.createOrder()

	rec := suite.request(http.MethodGet, "/api/v1/orders/"+orderNumber, "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var resp adapter.OrderResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	suite.Equal(orderNumber, resp.OrderNumber)
	suite.Equal("123 Main St", resp.InvoiceAddress)
	suite.Equal("customer@example.com", resp.InvoiceEmail)
	suite.Equal("4111111111111111", resp.InvoiceCreditCardNumber)
	suite.WithinDuration(time.Now().UTC(), resp.CreatedAt, time.Minute)

	suite.Require().Len(resp.Lines, 2)

	first := resp.Lines[0]
	_, err := kernel.UUIDFromString(first.LineID)
	suite.NoError(err)
	suite.Equal("1", first.ProductID)
	suite.Equal("Product A", first.ProductName)
	suite.Equal(2, first.Quantity)
	suite.decimalEqual(100, first.UnitPrice)

	second := resp.Lines[1]
	_, err = kernel.UUIDFromString(second.LineID)
	suite.NoError(err)
	suite.Equal("2", second.ProductID)
	suite.Equal("Product B", second.ProductName)
	suite.Equal(1, second.Quantity)
	suite.decimalEqual(200, second.UnitPrice)

	// 2*100 + 1*200
	suite.decimalEqual(400, resp.Total)
}

func (suite *ServerIntegrationTestSuite) TestGetOrder_UnknownOrder_ReturnsNotFound() {
	rec := suite.request(http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), "")
	suite.Require().Equal(http.StatusNotFound, rec.Code)

	var resp adapter.ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(http.StatusNotFound, resp.Code)
}

// decimalEqual compares a decimal string ignoring scale, since numeric
// columns come back with fixed decimal places.
func (suite *ServerIntegrationTestSuite) decimalEqual(expected int64, actual string) {
	value, err := decimal.NewFromString(actual)
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(expected).Equal(value),
		"expected %d, got %s", expected, actual)
}

func TestServerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ServerIntegrationTestSuite))
}

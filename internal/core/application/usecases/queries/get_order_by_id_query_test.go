package queries_test

import (
	"testing"

	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByIDQuery_ValidUUID(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderByIDQuery(id.String())
	require.NoError(t, err)
	assert.True(t, id.IsEqual(query.OrderID()))
	require.NoError(t, query.Validate())
}

func TestNewGetOrderByIDQuery_InvalidUUID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery("not-a-uuid")
	require.Error(t, err)
}

func TestNewGetOrderByIDQuery_Empty(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery("")
	require.Error(t, err)
}

func TestGetOrderByIDQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}

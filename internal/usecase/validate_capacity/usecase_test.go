package validate_capacity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwerty-development/rbs-restaurant-sub003/internal/domain"
)

type fakeTableRepo struct {
	tables []*domain.Table
}

func (f *fakeTableRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Table, error) {
	found := make([]*domain.Table, 0, len(ids))
	for _, t := range f.tables {
		for _, id := range ids {
			if t.ID == id {
				found = append(found, t)
			}
		}
	}
	return found, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	restaurantID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	tableA       = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	tableB       = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
)

func fixture() *fakeTableRepo {
	return &fakeTableRepo{tables: []*domain.Table{
		{ID: tableA, RestaurantID: restaurantID, Number: "T1", Capacity: 4, IsActive: true},
		{ID: tableB, RestaurantID: restaurantID, Number: "T2", Capacity: 2, IsActive: true},
	}}
}

func TestExecute_SufficientCapacity(t *testing.T) {
	uc := NewUseCase(fixture(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: restaurantID,
		TableIDs:     []uuid.UUID{tableA, tableB},
		PartySize:    6,
	})

	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, 6, resp.TotalCapacity)
	assert.Zero(t, resp.Shortfall)
	assert.Empty(t, resp.Message)
}

func TestExecute_ShortfallReported(t *testing.T) {
	uc := NewUseCase(fixture(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID: restaurantID,
		TableIDs:     []uuid.UUID{tableB},
		PartySize:    5,
	})

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, 2, resp.TotalCapacity)
	assert.Equal(t, 3, resp.Shortfall)
	assert.Contains(t, resp.Message, "не хватает 3")
}

func TestExecute_UnknownTable(t *testing.T) {
	uc := NewUseCase(fixture(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: restaurantID,
		TableIDs:     []uuid.UUID{uuid.New()},
		PartySize:    2,
	})

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_InactiveTable(t *testing.T) {
	repo := fixture()
	repo.tables[0].IsActive = false
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: restaurantID,
		TableIDs:     []uuid.UUID{tableA},
		PartySize:    2,
	})

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_ForeignRestaurantTable(t *testing.T) {
	uc := NewUseCase(fixture(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: uuid.New(),
		TableIDs:     []uuid.UUID{tableA},
		PartySize:    2,
	})

	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(fixture(), nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing restaurant", &Request{TableIDs: []uuid.UUID{tableA}, PartySize: 2}},
		{"empty table set", &Request{RestaurantID: restaurantID, PartySize: 2}},
		{"duplicate tables", &Request{RestaurantID: restaurantID, TableIDs: []uuid.UUID{tableA, tableA}, PartySize: 2}},
		{"party too small", &Request{RestaurantID: restaurantID, TableIDs: []uuid.UUID{tableA}, PartySize: 0}},
		{"party too large", &Request{RestaurantID: restaurantID, TableIDs: []uuid.UUID{tableA}, PartySize: domain.MaxPartySize + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

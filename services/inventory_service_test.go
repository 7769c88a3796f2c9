package services

import (
	"context"
	"testing"

	"restaurant-platform/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func inventoryFixture(stock string) (*InventoryService, *fakeInventoryRepo, *fakeNotifier) {
	repo := &fakeInventoryRepo{
		items: []models.InventoryItem{
			{ID: 100, RestaurantID: 3, Name: "Flour", Unit: "kg", CurrentQuantity: dec(stock), MinimumQuantity: dec("0.5")},
		},
	}
	menu := &fakeMenuSource{items: []models.MenuItem{
		{ID: 1, Name: "Margherita", IsAvailable: true, Recipe: models.Recipe{100: dec("0.4")}},
	}}
	restaurants := &fakeRestaurantSource{restaurant: &models.Restaurant{ID: 3, Name: "Testaurant", OwnerID: 5}}
	notifier := &fakeNotifier{}
	return NewInventoryService(repo, menu, restaurants, notifier), repo, notifier
}

func orderOf(menuItemID, qty int) *models.Order {
	return &models.Order{
		ID:           42,
		OrderNumber:  "ORD-1001",
		RestaurantID: 3,
		Items:        []models.OrderItem{{MenuItemID: menuItemID, Quantity: qty}},
	}
}

func TestConsumeForOrderDeductsStock(t *testing.T) {
	svc, repo, _ := inventoryFixture("2.0")

	err := svc.ConsumeForOrder(context.Background(), orderOf(1, 1))

	require.NoError(t, err)
	require.Len(t, repo.applied, 1)
	require.Len(t, repo.applied[0], 1)
	m := repo.applied[0][0]
	assert.Equal(t, 100, m.InventoryItemID)
	assert.Equal(t, models.MovementOut, m.MovementType)
	assert.True(t, m.Quantity.Equal(dec("0.4")))
	assert.Equal(t, "Consumed by order ORD-1001", m.Notes)
	assert.True(t, repo.items[0].CurrentQuantity.Equal(dec("1.6")))
}

func TestConsumeForOrderMultipliesByQuantity(t *testing.T) {
	svc, repo, _ := inventoryFixture("2.0")

	err := svc.ConsumeForOrder(context.Background(), orderOf(1, 3))

	require.NoError(t, err)
	require.Len(t, repo.applied, 1)
	assert.True(t, repo.applied[0][0].Quantity.Equal(dec("1.2")))
}

func TestConsumeForOrderShortfallRejectsWholeOrder(t *testing.T) {
	svc, repo, notifier := inventoryFixture("0.3")

	err := svc.ConsumeForOrder(context.Background(), orderOf(1, 1))

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Flour", stockErr.Ingredient)
	assert.True(t, stockErr.Available.Equal(dec("0.3")))
	assert.True(t, stockErr.Required.Equal(dec("0.4")))
	assert.Empty(t, repo.applied)
	assert.True(t, repo.items[0].CurrentQuantity.Equal(dec("0.3")))
	assert.Empty(t, notifier.sent)
}

func TestConsumeForOrderSkipsUntrackedIngredients(t *testing.T) {
	svc, repo, _ := inventoryFixture("2.0")
	// Recipe references an ingredient with no inventory row.
	menu := &fakeMenuSource{items: []models.MenuItem{
		{ID: 1, Name: "Margherita", IsAvailable: true, Recipe: models.Recipe{100: dec("0.4"), 999: dec("1.0")}},
	}}
	svc.menu = menu

	err := svc.ConsumeForOrder(context.Background(), orderOf(1, 1))

	require.NoError(t, err)
	require.Len(t, repo.applied, 1)
	require.Len(t, repo.applied[0], 1)
	assert.Equal(t, 100, repo.applied[0][0].InventoryItemID)
}

func TestConsumeForOrderNoRecipesIsNoop(t *testing.T) {
	svc, repo, _ := inventoryFixture("2.0")
	svc.menu = &fakeMenuSource{items: []models.MenuItem{
		{ID: 1, Name: "Margherita", IsAvailable: true},
	}}

	err := svc.ConsumeForOrder(context.Background(), orderOf(1, 1))

	require.NoError(t, err)
	assert.Empty(t, repo.applied)
}

func TestConsumeForOrderEmptyOrderIsNoop(t *testing.T) {
	svc, repo, _ := inventoryFixture("2.0")

	err := svc.ConsumeForOrder(context.Background(), &models.Order{ID: 42, RestaurantID: 3})

	require.NoError(t, err)
	assert.Empty(t, repo.applied)
}

func TestConsumeForOrderAlertsOwnerOnLowStock(t *testing.T) {
	svc, _, notifier := inventoryFixture("0.8")

	err := svc.ConsumeForOrder(context.Background(), orderOf(1, 1))

	require.NoError(t, err)
	require.Len(t, notifier.sent, 1)
	n := notifier.sent[0]
	assert.Equal(t, 5, n.userID)
	assert.Equal(t, models.NotifyAlert, n.draft.Type)
	assert.Equal(t, "Low Stock Alert", n.draft.Title)
	assert.Equal(t, "Flour is running low: 0.4 kg left (minimum 0.5 kg)", n.draft.Message)
}

func TestConsumeForOrderNoAlertAboveMinimum(t *testing.T) {
	svc, _, notifier := inventoryFixture("2.0")

	err := svc.ConsumeForOrder(context.Background(), orderOf(1, 1))

	require.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

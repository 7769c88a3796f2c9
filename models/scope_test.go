package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessAdminSeesEverything(t *testing.T) {
	scope := Scope{Role: RoleAdmin, UserID: 1}
	assert.True(t, scope.CanAccess(&Order{UserID: 99, RestaurantID: 50}))
	assert.True(t, scope.CanAccess(&Reservation{UserID: 99}))
	assert.True(t, scope.CanAccess(struct{}{}))
}

func TestCanAccessCustomerOwnRowsOnly(t *testing.T) {
	scope := Scope{Role: RoleCustomer, UserID: 7}
	assert.True(t, scope.CanAccess(&Order{UserID: 7}))
	assert.False(t, scope.CanAccess(&Order{UserID: 8}))
	assert.False(t, scope.CanAccess(&InventoryItem{RestaurantID: 3}))
}

func TestCanAccessOwnerByRestaurant(t *testing.T) {
	scope := Scope{Role: RoleRestaurantOwner, UserID: 5, OwnedRestaurantIDs: []int{3, 9}}
	assert.True(t, scope.CanAccess(&Order{UserID: 99, RestaurantID: 3}))
	assert.False(t, scope.CanAccess(&Order{UserID: 99, RestaurantID: 4}))
	assert.True(t, scope.CanAccess(&InventoryItem{RestaurantID: 9}))
	assert.True(t, scope.CanAccess(&Table{RestaurantID: 3}))
}

func TestCanAccessOwnerStillOwnsTheirRows(t *testing.T) {
	scope := Scope{Role: RoleRestaurantOwner, UserID: 5, OwnedRestaurantIDs: []int{3}}
	assert.True(t, scope.CanAccess(&Order{UserID: 5, RestaurantID: 44}))
}

func TestCanAccessCustomerNeverMatchesByRestaurant(t *testing.T) {
	// A customer scope carrying restaurant IDs must not grant restaurant
	// access; only the RESTAURANT_OWNER role does.
	scope := Scope{Role: RoleCustomer, UserID: 7, OwnedRestaurantIDs: []int{3}}
	assert.False(t, scope.CanAccess(&Order{UserID: 99, RestaurantID: 3}))
}

func TestCanAccessUnscopedResource(t *testing.T) {
	scope := Scope{Role: RoleCustomer, UserID: 7}
	assert.False(t, scope.CanAccess(struct{}{}))
	assert.False(t, scope.CanAccess(nil))
}

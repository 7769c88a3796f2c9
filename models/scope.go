package models

// Scope is the authorization context for a single request. It is built once
// by the auth middleware from the JWT claims and passed explicitly into every
// query that filters rows by role.
type Scope struct {
	Role               string
	UserID             int
	OwnedRestaurantIDs []int
}

func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Scope) IsOwner() bool {
	return s.Role == RoleRestaurantOwner
}

func (s Scope) OwnsRestaurant(restaurantID int) bool {
	for _, id := range s.OwnedRestaurantIDs {
		if id == restaurantID {
			return true
		}
	}
	return false
}

// Owned is implemented by every resource that belongs to a single user.
type Owned interface {
	OwnerUserID() int
}

// RestaurantScoped is implemented by every resource that belongs to a
// restaurant, so owner access can be resolved without probing struct fields.
type RestaurantScoped interface {
	OwningRestaurantID() int
}

// CanAccess reports whether the scope may read or modify the given resource.
// Admins may access everything; customers their own rows; restaurant owners
// the rows of restaurants they own.
func (s Scope) CanAccess(resource any) bool {
	if s.IsAdmin() {
		return true
	}
	if owned, ok := resource.(Owned); ok && owned.OwnerUserID() == s.UserID {
		return true
	}
	if s.IsOwner() {
		if scoped, ok := resource.(RestaurantScoped); ok && s.OwnsRestaurant(scoped.OwningRestaurantID()) {
			return true
		}
	}
	return false
}

// Package routes maps URL path segments to entity identifiers.
package routes

import "sort"

var entityByRoute = map[string]string{
	"bank-accounts":         "bank_account",
	"companies":             "company",
	"crypto-transactions":   "crypto_transaction",
	"crypto-wallets":        "crypto_wallet",
	"transaction-histories": "transaction_history",
	"users":                 "user",
	"user-profiles":         "user_profile",
}

var routeByEntity = func() map[string]string {
	reverse := make(map[string]string, len(entityByRoute))
	for route, entity := range entityByRoute {
		reverse[entity] = route
	}
	return reverse
}()

// ToEntity returns the entity for a path segment. Unknown segments map to themselves.
func ToEntity(route string) string {
	if entity, ok := entityByRoute[route]; ok {
		return entity
	}
	return route
}

// ToRoute is the inverse of ToEntity.
func ToRoute(entity string) string {
	if route, ok := routeByEntity[entity]; ok {
		return route
	}
	return entity
}

// IsKnown reports whether route is in the table.
func IsKnown(route string) bool {
	_, ok := entityByRoute[route]
	return ok
}

// Routes lists the known path segments in sorted order.
func Routes() []string {
	names := make([]string, 0, len(entityByRoute))
	for route := range entityByRoute {
		names = append(names, route)
	}
	sort.Strings(names)
	return names
}

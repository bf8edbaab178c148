package schema

import "sort"

var registry = map[string]*Schema{
	"bank_account": {
		Entity: "bank_account",
		Fields: []Field{
			{Name: "account_balance", Type: TypeNumber, Required: true, Filterable: true, Precision: 15, Scale: 2},
			{Name: "account_type", Type: TypeString, Filterable: true, Rules: "max=255"},
			{Name: "interest_rate", Type: TypeNumber, Precision: 7, Scale: 4},
			{Name: "account_number", Type: TypeString, Required: true, Filterable: true, Rules: "max=255"},
			{Name: "account_status", Type: TypeString, Filterable: true, Rules: "max=255"},
			{Name: "account_owner", Type: TypeString, Filterable: true, Rules: "max=255"},
		},
		Relations: []Relation{
			{Name: "transaction_histories", Association: "TransactionHistories"},
		},
	},
	"company": {
		Entity: "company",
		Fields: []Field{
			{Name: "name", Type: TypeString, Required: true, Filterable: true, Rules: "max=255"},
			{Name: "description", Type: TypeString},
			{Name: "tenant_id", Type: TypeString, Filterable: true, Rules: "max=255"},
		},
	},
	"crypto_transaction": {
		Entity: "crypto_transaction",
		Fields: []Field{
			{Name: "amount", Type: TypeNumber, Required: true, Filterable: true, Precision: 30, Scale: 10},
			{Name: "currency", Type: TypeString, Required: true, Filterable: true, Rules: "currency_code"},
			{Name: "transaction_type", Type: TypeString, Filterable: true, Rules: "max=255"},
			{Name: "transaction_status", Type: TypeString, Filterable: true, Rules: "max=255"},
			{Name: "tx_hash", Type: TypeString, Filterable: true, Rules: "max=255"},
			{Name: "crypto_wallet_id", Type: TypeUUID, Filterable: true},
		},
		Relations: []Relation{
			{Name: "crypto_wallet", Association: "CryptoWallet"},
		},
	},
	"crypto_wallet": {
		Entity: "crypto_wallet",
		Fields: []Field{
			{Name: "wallet_address", Type: TypeString, Required: true, Filterable: true, Rules: "wallet_address"},
			{Name: "currency", Type: TypeString, Required: true, Filterable: true, Rules: "currency_code"},
			{Name: "balance", Type: TypeNumber, Precision: 30, Scale: 10},
			{Name: "wallet_label", Type: TypeString, Rules: "max=255"},
			{Name: "user_profile_id", Type: TypeUUID, Filterable: true},
		},
		Relations: []Relation{
			{Name: "user_profile", Association: "UserProfile"},
			{Name: "crypto_transactions", Association: "CryptoTransactions"},
		},
	},
	"transaction_history": {
		Entity: "transaction_history",
		Fields: []Field{
			{Name: "amount", Type: TypeNumber, Required: true, Filterable: true, Precision: 15, Scale: 2},
			{Name: "transaction_date", Type: TypeTimestamp, Required: true, Filterable: true},
			{Name: "description", Type: TypeString},
			{Name: "bank_account_id", Type: TypeUUID, Filterable: true},
		},
		Relations: []Relation{
			{Name: "bank_account", Association: "BankAccount"},
		},
	},
	"user": {
		Entity: "user",
		Fields: []Field{
			{Name: "email", Type: TypeString, Required: true, Filterable: true, Rules: "email,max=255"},
			{Name: "first_name", Type: TypeString, Rules: "max=255"},
			{Name: "last_name", Type: TypeString, Rules: "max=255"},
			{Name: "roq_user_id", Type: TypeString, Required: true, Filterable: true, Rules: "max=255"},
			{Name: "tenant_id", Type: TypeString, Required: true, Filterable: true, Rules: "max=255"},
		},
		Relations: []Relation{
			{Name: "user_profiles", Association: "UserProfiles"},
		},
	},
	"user_profile": {
		Entity: "user_profile",
		Fields: []Field{
			{Name: "full_name", Type: TypeString, Required: true, Filterable: true, Rules: "max=255"},
			{Name: "phone_number", Type: TypeString, Rules: "phone_number"},
			{Name: "address", Type: TypeString},
			{Name: "user_id", Type: TypeUUID, Filterable: true},
		},
		Relations: []Relation{
			{Name: "user", Association: "User"},
			{Name: "crypto_wallets", Association: "CryptoWallets"},
		},
	},
}

// Lookup returns the schema registered for entity.
func Lookup(entity string) (*Schema, bool) {
	s, ok := registry[entity]
	return s, ok
}

// MustLookup is Lookup for entities known at compile time.
func MustLookup(entity string) *Schema {
	s, ok := registry[entity]
	if !ok {
		panic("schema: no schema registered for " + entity)
	}
	return s
}

// Entities lists the registered entity names in sorted order.
func Entities() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

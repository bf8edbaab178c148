package services

import (
	"strings"
	"time"

	"dipadubank/internal/schema"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var (
	accountTypes        = []string{"checking", "savings", "business", "money_market"}
	accountStatuses     = []string{"active", "frozen", "closed"}
	cryptoCurrencies    = []string{"BTC", "ETH", "USDT", "SOL"}
	cryptoTxTypes       = []string{"deposit", "withdrawal", "transfer"}
	cryptoTxStatuses    = []string{"pending", "confirmed", "failed"}
	historyDescriptions = []string{"Card payment", "ATM withdrawal", "Salary", "Wire transfer", "Monthly fee"}
)

// PayloadGenerator builds realistic create payloads for development seeding.
// Relation foreign keys are left empty.
type PayloadGenerator struct {
	faker *gofakeit.Faker
}

// NewPayloadGenerator creates a generator; seed 0 picks a random seed.
func NewPayloadGenerator(seed uint64) *PayloadGenerator {
	return &PayloadGenerator{faker: gofakeit.New(seed)}
}

// Generate returns a payload for s that passes s.Validate in full mode.
func (g *PayloadGenerator) Generate(s *schema.Schema) map[string]interface{} {
	payload := make(map[string]interface{}, len(s.Fields))
	for _, field := range s.Fields {
		if field.Type == schema.TypeUUID {
			continue
		}
		payload[field.Name] = g.value(s.Entity, field)
	}
	return payload
}

func (g *PayloadGenerator) value(entity string, field schema.Field) interface{} {
	f := g.faker

	switch field.Name {
	case "account_number":
		return f.Numerify("ACC-##########")
	case "account_type":
		return f.RandomString(accountTypes)
	case "account_status":
		return f.RandomString(accountStatuses)
	case "account_owner", "full_name":
		return f.Name()
	case "interest_rate":
		return decimal.NewFromFloat(f.Float64Range(0, 0.08)).Round(4)
	case "account_balance", "balance":
		return f.Price(0, 50000)
	case "amount":
		if entity == "crypto_transaction" {
			return decimal.NewFromFloat(f.Float64Range(0.001, 5)).Round(6)
		}
		return f.Price(1, 2500)
	case "currency":
		return f.RandomString(cryptoCurrencies)
	case "wallet_address":
		return f.Numerify("0x########################################")
	case "wallet_label":
		return f.Word() + " wallet"
	case "transaction_type":
		return f.RandomString(cryptoTxTypes)
	case "transaction_status":
		return f.RandomString(cryptoTxStatuses)
	case "tx_hash":
		return strings.ToLower(f.Numerify("0x################################################################"))
	case "transaction_date":
		return f.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).UTC().Format(time.RFC3339)
	case "description":
		if entity == "transaction_history" {
			return f.RandomString(historyDescriptions)
		}
		return f.Sentence(8)
	case "name":
		return f.Company()
	case "email":
		return f.Email()
	case "first_name":
		return f.FirstName()
	case "last_name":
		return f.LastName()
	case "phone_number":
		return f.Phone()
	case "address":
		return f.Address().Address
	case "roq_user_id", "tenant_id":
		return f.UUID()
	}

	switch field.Type {
	case schema.TypeNumber:
		return f.Price(0, 1000)
	case schema.TypeTimestamp:
		return time.Now().UTC().Format(time.RFC3339)
	default:
		return f.Word()
	}
}

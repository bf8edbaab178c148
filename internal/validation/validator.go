package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	currencyCodePattern  = regexp.MustCompile(`^[A-Za-z0-9]{2,10}$`)
	phoneNumberPattern   = regexp.MustCompile(`^\+?[0-9()\-. ]{3,32}$`)
	walletAddressPattern = regexp.MustCompile(`^[A-Za-z0-9:_\-]{8,128}$`)
)

// Validator wraps the go-playground validator with the resource rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with the custom rules registered
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("phone_number", validatePhoneNumber)
	_ = v.RegisterValidation("wallet_address", validateWalletAddress)
	_ = v.RegisterValidation("decimal_fits", validateDecimalFits)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Var validates a single value against a validator tag
func (v *Validator) Var(value interface{}, tag string) error {
	return v.validate.Var(value, tag)
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateCurrencyCode accepts ticker style codes such as USD, BTC or USDT
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberPattern.MatchString(fl.Field().String())
}

func validateWalletAddress(fl validator.FieldLevel) bool {
	return walletAddressPattern.MatchString(fl.Field().String())
}

// DecimalTag builds the rule for a DECIMAL(precision, scale) column, e.g. decimal_fits=15:2
func DecimalTag(precision, scale int) string {
	return fmt.Sprintf("decimal_fits=%d:%d", precision, scale)
}

// DecimalFits reports whether d is stored in a DECIMAL(precision, scale) column
// without overflow or rounding.
func DecimalFits(d decimal.Decimal, precision, scale int) bool {
	if precision <= 0 || scale < 0 || scale > precision {
		return false
	}
	if !d.Round(int32(scale)).Equal(d) {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, int32(precision-scale)))
}

func parseDecimalBounds(param string) (precision, scale int, ok bool) {
	p, s, found := strings.Cut(param, ":")
	if !found {
		return 0, 0, false
	}
	precision, errP := strconv.Atoi(p)
	scale, errS := strconv.Atoi(s)
	return precision, scale, errP == nil && errS == nil
}

// validateDecimalFits accepts numeric strings, floats and integers
func validateDecimalFits(fl validator.FieldLevel) bool {
	precision, scale, ok := parseDecimalBounds(fl.Param())
	if !ok {
		return false
	}

	var d decimal.Decimal
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		parsed, err := decimal.NewFromString(field.String())
		if err != nil {
			return false
		}
		d = parsed
	case reflect.Float32, reflect.Float64:
		d = decimal.NewFromFloat(field.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		d = decimal.NewFromInt(field.Int())
	default:
		return false
	}
	return DecimalFits(d, precision, scale)
}

// Describe turns a failed validator tag into a short message
func Describe(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "is invalid"
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "currency_code":
		return "must be a currency code"
	case "phone_number":
		return "must be a valid phone number"
	case "wallet_address":
		return "must be a valid wallet address"
	case "decimal_fits":
		if precision, scale, ok := parseDecimalBounds(fe.Param()); ok {
			return fmt.Sprintf("must have at most %d digits before and %d after the decimal point", precision-scale, scale)
		}
		return "is out of range"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

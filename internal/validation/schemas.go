package validation

import "github.com/obiajulu/fintrack-be/internal/models"

// Register is the input contract for POST /auth/register.
func Register() Schema {
	return Schema{Fields: []Field{
		{Name: "fullName", Required: true, Checks: []Check{String(), Trim(), MinLen(2), MaxLen(100)}},
		{Name: "email", Required: true, Checks: []Check{String(), Trim(), Lower(), Email()}},
		{Name: "password", Required: true, Checks: []Check{String(), MinLen(8), MaxLen(200)}},
	}}
}

// Login is the input contract for POST /auth/login.
func Login() Schema {
	return Schema{Fields: []Field{
		{Name: "email", Required: true, Checks: []Check{String(), Trim(), Lower(), Email()}},
		{Name: "password", Required: true, Checks: []Check{String(), MinLen(1)}},
	}}
}

// CreateTransaction is the input contract for POST /transactions.
func CreateTransaction() Schema {
	return Schema{Fields: []Field{
		{Name: "type", Required: true, Checks: []Check{String(), OneOf(models.TypeIncome, models.TypeExpense)}},
		{Name: "amount", Required: true, Checks: []Check{Number(), Positive()}},
		{Name: "currency", Default: models.DefaultCurrency, Checks: []Check{String(), ExactLen(3)}},
		{Name: "description", Checks: []Check{String(), MinLen(1), MaxLen(300)}},
		{Name: "category", Checks: []Check{String(), MinLen(1), MaxLen(100)}},
		{Name: "occurredAt", Checks: []Check{String(), DateTime()}},
	}}
}

// UpdateTransaction is the input contract for PATCH /transactions/{id}.
// Every field is optional but at least one recognized field must be present.
func UpdateTransaction() Schema {
	return Schema{
		RequireOne: true,
		Fields: []Field{
			{Name: "type", Checks: []Check{String(), OneOf(models.TypeIncome, models.TypeExpense)}},
			{Name: "amount", Checks: []Check{Number(), Positive()}},
			{Name: "currency", Checks: []Check{String(), ExactLen(3)}},
			{Name: "description", Checks: []Check{String(), MinLen(1), MaxLen(300)}},
			{Name: "category", Checks: []Check{String(), MinLen(1), MaxLen(100)}},
			{Name: "occurredAt", Checks: []Check{String(), DateTime()}},
		},
	}
}

// IDParam is the contract for the {id} path parameter.
func IDParam() Schema {
	return Schema{Fields: []Field{
		{Name: "id", Required: true, Checks: []Check{String(), Trim(), MinLen(1)}},
	}}
}

// ListQuery is the contract for the list query string. Page, limit and sort
// stay strings here; numeric coercion and bounding happen in the service.
func ListQuery() Schema {
	return Schema{Fields: []Field{
		{Name: "page", Checks: []Check{String()}},
		{Name: "limit", Checks: []Check{String()}},
		{Name: "sort", Checks: []Check{String()}},
	}}
}

package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiajulu/fintrack-be/internal/apperror"
)

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.Error(t, err)
	e := apperror.From(err)
	require.Equal(t, apperror.KindValidation, e.Kind)
	return e.Fields
}

func TestRegisterSchema(t *testing.T) {
	t.Run("normalizes email and trims name", func(t *testing.T) {
		values, err := Register().Validate(map[string]any{
			"fullName": "  Ada Lovelace  ",
			"email":    "Ada@Example.com",
			"password": "StrongPassword123!",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", values.String("fullName"))
		assert.Equal(t, "ada@example.com", values.String("email"))
		assert.Equal(t, "StrongPassword123!", values.String("password"))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := Register().Validate(map[string]any{})
		errs := fieldErrors(t, err)
		assert.Contains(t, errs, "fullName")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "password")
	})

	t.Run("rejects bad input", func(t *testing.T) {
		tests := map[string]map[string]any{
			"short name":     {"fullName": "A", "email": "a@b.com", "password": "longenough"},
			"bad email":      {"fullName": "Ada", "email": "not-an-email", "password": "longenough"},
			"short password": {"fullName": "Ada", "email": "a@b.com", "password": "short"},
			"numeric name":   {"fullName": 42, "email": "a@b.com", "password": "longenough"},
		}
		for name, body := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Register().Validate(body)
				assert.Error(t, err)
			})
		}
	})
}

func TestLoginSchema(t *testing.T) {
	values, err := Login().Validate(map[string]any{"email": " USER@Mail.com ", "password": "x"})
	require.NoError(t, err)
	assert.Equal(t, "user@mail.com", values.String("email"))

	_, err = Login().Validate(map[string]any{"email": "user@mail.com", "password": ""})
	errs := fieldErrors(t, err)
	assert.Contains(t, errs, "password")
}

func TestCreateTransactionSchema(t *testing.T) {
	t.Run("applies currency default", func(t *testing.T) {
		values, err := CreateTransaction().Validate(map[string]any{
			"type":   "expense",
			"amount": 2500.0,
		})
		require.NoError(t, err)
		assert.Equal(t, "NGN", values.String("currency"))
		assert.False(t, values.Has("description"))
	})

	t.Run("parses occurredAt", func(t *testing.T) {
		values, err := CreateTransaction().Validate(map[string]any{
			"type":       "income",
			"amount":     10.0,
			"occurredAt": "2026-08-01T12:30:00Z",
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC), values.Time("occurredAt"))
	})

	t.Run("rejects bad values", func(t *testing.T) {
		tests := map[string]map[string]any{
			"unknown type":      {"type": "transfer", "amount": 10.0},
			"zero amount":       {"type": "income", "amount": 0.0},
			"negative amount":   {"type": "income", "amount": -5.0},
			"string amount":     {"type": "income", "amount": "10"},
			"long currency":     {"type": "income", "amount": 10.0, "currency": "NAIRA"},
			"bad occurredAt":    {"type": "income", "amount": 10.0, "occurredAt": "yesterday"},
			"empty description": {"type": "income", "amount": 10.0, "description": ""},
		}
		for name, body := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := CreateTransaction().Validate(body)
				assert.Error(t, err)
			})
		}
	})
}

func TestUpdateTransactionSchema(t *testing.T) {
	t.Run("accepts a single field", func(t *testing.T) {
		values, err := UpdateTransaction().Validate(map[string]any{"amount": 99.5})
		require.NoError(t, err)
		assert.Equal(t, 99.5, values.Float("amount"))
	})

	t.Run("rejects empty body", func(t *testing.T) {
		_, err := UpdateTransaction().Validate(map[string]any{})
		errs := fieldErrors(t, err)
		assert.Contains(t, errs, "body")
	})

	t.Run("unrecognized fields alone do not count", func(t *testing.T) {
		_, err := UpdateTransaction().Validate(map[string]any{"color": "red"})
		errs := fieldErrors(t, err)
		assert.Contains(t, errs, "body")
	})
}

func TestIDParamSchema(t *testing.T) {
	_, err := IDParam().Validate(map[string]any{"id": ""})
	assert.Error(t, err)

	values, err := IDParam().Validate(map[string]any{"id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", values.String("id"))
}

package upload

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow(line int, data map[string]string) *Row {
	return &Row{LineNumber: line, Data: data}
}

func TestFieldValidator(t *testing.T) {
	t.Run("required field missing", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("company_id").Required().Build(),
		}, 10)

		ok := v.ValidateRow(testRow(2, map[string]string{"company_id": ""}))
		assert.False(t, ok)
		require.Equal(t, 1, v.Errors().Count())
		assert.Equal(t, ErrCodeUploadRequiredField, v.Errors().Errors()[0].Code)
	})

	t.Run("empty optional field passes", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("remarks").String().Build(),
		}, 10)

		assert.True(t, v.ValidateRow(testRow(2, map[string]string{"remarks": ""})))
	})

	t.Run("type validation", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("year").Required().Int().Build(),
			Field("volume").Required().Decimal().Build(),
		}, 10)

		ok := v.ValidateRow(testRow(2, map[string]string{"year": "twenty", "volume": "1.5.3"}))
		assert.False(t, ok)
		assert.Equal(t, 2, v.Errors().Count())
	})

	t.Run("date format validation", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("birthdate").Required().Date().DateFormat("01/02/2006").Build(),
		}, 10)

		assert.True(t, v.ValidateRow(testRow(2, map[string]string{"birthdate": "03/15/1990"})))
		assert.False(t, v.ValidateRow(testRow(3, map[string]string{"birthdate": "1990-03-15"})))
		assert.Equal(t, ErrCodeUploadInvalidFormat, v.Errors().Errors()[0].Code)
	})

	t.Run("range validation", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("volume").Required().Decimal().MinValue(decimal.Zero).Build(),
		}, 10)

		assert.True(t, v.ValidateRow(testRow(2, map[string]string{"volume": "10.25"})))
		assert.False(t, v.ValidateRow(testRow(3, map[string]string{"volume": "-1"})))
	})

	t.Run("one-of validation", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("quarter").Required().OneOf("Q1", "Q2", "Q3", "Q4").Build(),
		}, 10)

		assert.True(t, v.ValidateRow(testRow(2, map[string]string{"quarter": "Q2"})))
		assert.False(t, v.ValidateRow(testRow(3, map[string]string{"quarter": "Q9"})))
	})

	t.Run("unique within file", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("email").Required().Email().Unique().Build(),
		}, 10)

		assert.True(t, v.ValidateRow(testRow(2, map[string]string{"email": "a@b.com"})))
		assert.False(t, v.ValidateRow(testRow(3, map[string]string{"email": "a@b.com"})))
		assert.Equal(t, ErrCodeUploadDuplicateInFile, v.Errors().Errors()[0].Code)
	})

	t.Run("error collection truncates at its limit", func(t *testing.T) {
		v := NewFieldValidator([]FieldRule{
			Field("year").Required().Int().Build(),
		}, 2)

		for i := 0; i < 5; i++ {
			v.ValidateRow(testRow(i+2, map[string]string{"year": "bad"}))
		}

		assert.Equal(t, 2, v.Errors().Count())
		assert.Equal(t, 5, v.Errors().TotalCount())
		assert.True(t, v.Errors().IsTruncated())
	})
}

func TestReferenceValidator(t *testing.T) {
	lookups := 0
	rv := NewReferenceValidator(func(refType, value string) (bool, error) {
		lookups++
		return value == "PSC", nil
	}, 10)

	assert.True(t, rv.ValidateReference(2, "company_id", "company", "PSC"))
	assert.False(t, rv.ValidateReference(3, "company_id", "company", "XXX"))

	// Cached lookups do not hit the store again
	assert.True(t, rv.ValidateReference(4, "company_id", "company", "PSC"))
	assert.Equal(t, 2, lookups)

	require.Equal(t, 1, rv.Errors().Count())
	assert.Equal(t, ErrCodeUploadReferenceNotFound, rv.Errors().Errors()[0].Code)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "bodygraph/pkg/errors"
)

type sample struct {
	BirthDate string  `validate:"required,datetime=2006-01-02"`
	Latitude  float64 `validate:"gte=-90,lte=90"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{BirthDate: "2000-01-01"}))

	err := ValidateStruct(sample{Latitude: 91})
	require.Error(t, err)

	var verrs *pkgerrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Equal(t, []string{"birth_date is required"}, fields["birth_date"])
	assert.Equal(t, []string{"latitude must be at most 90"}, fields["latitude"])
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "birth_time", toSnakeCase("BirthTime"))
	assert.Equal(t, "name", toSnakeCase("Name"))
}

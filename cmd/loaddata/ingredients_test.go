package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/entity"
)

func TestReadIngredients(t *testing.T) {
	input := "name,measurement_unit\nbeet, g\n\negg,pcs\nbeet,g\n"

	ingredients, err := readIngredients(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []*entity.Ingredient{
		{Name: "beet", MeasurementUnit: "g"},
		{Name: "egg", MeasurementUnit: "pcs"},
	}, ingredients)
}

func TestReadIngredients_Errors(t *testing.T) {
	_, err := readIngredients(strings.NewReader("beet,g\nonion\n"))
	assert.Error(t, err)

	_, err = readIngredients(strings.NewReader("beet,\n"))
	assert.Error(t, err)
}

func TestDefaultTags_AreValid(t *testing.T) {
	for _, tag := range defaultTags() {
		assert.True(t, entity.ValidColor(tag.Color), tag.Slug)
		assert.True(t, entity.ValidSlug(tag.Slug), tag.Slug)
	}
}

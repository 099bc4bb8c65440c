package main

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"foodgram/internal/domain/entity"
)

// readIngredients parses name,measurement_unit rows. The header row is
// optional, blank rows are skipped and duplicate pairs keep their first row.
func readIngredients(r io.Reader) ([]*entity.Ingredient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var ingredients []*entity.Ingredient
	seen := map[entity.Ingredient]bool{}

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read ingredients line %d", line)
		}

		name, unit := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		if line == 1 && name == "name" && unit == "measurement_unit" {
			continue
		}
		if name == "" || unit == "" {
			return nil, errors.Errorf("ingredients line %d: name and measurement_unit are required", line)
		}

		key := entity.Ingredient{Name: name, MeasurementUnit: unit}
		if seen[key] {
			continue
		}
		seen[key] = true

		ingredients = append(ingredients, &entity.Ingredient{Name: name, MeasurementUnit: unit})
	}

	return ingredients, nil
}

// defaultTags are the meal tags every installation starts with.
func defaultTags() []*entity.Tag {
	return []*entity.Tag{
		{Name: "Breakfast", Color: "#B39F7A", Slug: "breakfast"},
		{Name: "Lunch", Color: "#7FFF00", Slug: "lunch"},
		{Name: "Dinner", Color: "#D2691E", Slug: "dinner"},
	}
}

// Package report renders shopping lists into downloadable files.
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"foodgram/internal/domain/entity"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
)

const (
	FormatCSV  = "csv"
	FormatText = "txt"
)

// utf8BOM lets spreadsheet applications detect the encoding of the CSV export.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type csvRenderer struct{}

// NewCSVRenderer returns the renderer for format=csv.
func NewCSVRenderer() service.ShoppingListRenderer {
	return csvRenderer{}
}

func (csvRenderer) Format() string      { return FormatCSV }
func (csvRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (csvRenderer) FileName(owner string) string {
	return fileName(owner, FormatCSV)
}

// Render writes a BOM, a header row and one name,unit,total row per item.
func (csvRenderer) Render(w io.Writer, items []entity.ShoppingListItem) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return errors.Wrap(err, "failed to write BOM")
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "measurement_unit", "total"}); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, item := range items {
		record := []string{item.Name, item.MeasurementUnit, strconv.Itoa(item.Total)}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write ingredient %d", item.IngredientID)
		}
	}
	writer.Flush()

	return errors.Wrap(writer.Error(), "failed to flush csv")
}

type textRenderer struct{}

// NewTextRenderer returns the renderer for format=txt.
func NewTextRenderer() service.ShoppingListRenderer {
	return textRenderer{}
}

func (textRenderer) Format() string      { return FormatText }
func (textRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (textRenderer) FileName(owner string) string {
	return fileName(owner, FormatText)
}

// Render writes one "name (unit) - total" line per item.
func (textRenderer) Render(w io.Writer, items []entity.ShoppingListItem) error {
	buf := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := fmt.Fprintf(buf, "%s (%s) - %d\n", item.Name, item.MeasurementUnit, item.Total); err != nil {
			return errors.Wrapf(err, "failed to write ingredient %d", item.IngredientID)
		}
	}

	return errors.Wrap(buf.Flush(), "failed to flush text")
}

func fileName(owner, ext string) string {
	return "shopping-list-" + owner + "." + ext
}

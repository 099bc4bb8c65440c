package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/usecase"
)

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative integer")
	}

	return value, nil
}

// queryBool parses an optional 0/1/true/false query parameter.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be 0, 1, true or false")
	}

	return &value, nil
}

// pageRequest reads the page and limit query parameters.
func pageRequest(c echo.Context) (usecase.PageRequest, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return usecase.PageRequest{}, err
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return usecase.PageRequest{}, err
	}

	return usecase.PageRequest{Page: page, Limit: limit}, nil
}

func bindingError(err error) error {
	return domainerrors.ErrValidationFailed.WithDetails("malformed request body: " + err.Error())
}

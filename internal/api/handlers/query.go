package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StayPlanner/pkg/types"
)

var ErrMissingParam = errors.New("handlers: missing query parameter")

// QueryDate читает дату из query параметра. Допускается суффикс времени ("2025-09-02T00:00:00Z").
func QueryDate(r *http.Request, name string) (types.Date, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return types.Date{}, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	return types.ParseDate(value)
}

// QueryInt читает необязательный целочисленный query параметр, def - значение при отсутствии
func QueryInt(r *http.Request, name string, def int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def, nil
	}
	return strconv.Atoi(value)
}

package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"estatia/pkg/errors"
	"estatia/pkg/loan"
	"estatia/pkg/response"
)

type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

type emiResponse struct {
	Result    loan.Result           `json:"result"`
	Schedule  []loan.Installment    `json:"schedule,omitempty"`
	Principal *loan.PrincipalBounds `json:"suggestedPrincipal,omitempty"`
}

// CalculateEMI answers the loan installment for principal, annual rate
// and tenure in years. Unparseable parameters are a 400; parseable but
// out-of-range values yield a zero result with valid=false.
func (h *CalculatorHandler) CalculateEMI(c echo.Context) error {
	principal, err := queryFloat(c, "principal")
	if err != nil {
		return response.Error(c, err)
	}
	rate, err := queryFloat(c, "rate")
	if err != nil {
		return response.Error(c, err)
	}
	tenure, err := queryFloat(c, "tenure")
	if err != nil {
		return response.Error(c, err)
	}

	resp := emiResponse{Result: loan.Calculate(principal, rate, tenure)}

	if c.QueryParam("schedule") == "true" && resp.Result.Valid {
		resp.Schedule = loan.Schedule(principal, rate, tenure)
	}

	if priceStr := c.QueryParam("price"); priceStr != "" {
		price, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil || price <= 0 {
			return response.Error(c, errors.BadRequest("price must be a positive integer", err))
		}
		bounds := loan.SuggestedPrincipal(price)
		resp.Principal = &bounds
	}

	return response.Success(c, resp)
}

func queryFloat(c echo.Context, name string) (float64, error) {
	value := c.QueryParam(name)
	if value == "" {
		return 0, errors.BadRequest(name+" is required", nil)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.BadRequest(name+" must be a number", err)
	}
	return f, nil
}

package handlers

import (
	"sync"

	"github.com/SscSPs/hospital_billing_app/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidationsOnce sync.Once

// registerValidations adds the struct-level rules gin's tags cannot express.
func registerValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterStructValidation(priceListItemValidation, dto.PriceListItemRequest{})
		v.RegisterStructValidation(saleItemValidation, dto.SaleItemRequest{})
	})
}

// priceListItemValidation requires exactly one of price and adjustment.
func priceListItemValidation(sl validator.StructLevel) {
	item := sl.Current().Interface().(dto.PriceListItemRequest)
	switch {
	case item.Price != nil && item.Adjustment != nil:
		sl.ReportError(item.Adjustment, "Adjustment", "adjustment", "excluded_with_price", "")
	case item.Price == nil && item.Adjustment == nil:
		sl.ReportError(item.Price, "Price", "price", "required_without_adjustment", "")
	case item.Price != nil && item.Price.IsNegative():
		sl.ReportError(item.Price, "Price", "price", "gte", "0")
	}
}

func saleItemValidation(sl validator.StructLevel) {
	item := sl.Current().Interface().(dto.SaleItemRequest)
	if item.Quantity <= 0 {
		sl.ReportError(item.Quantity, "Quantity", "quantity", "gt", "0")
	}
	if item.UnitPrice.IsNegative() {
		sl.ReportError(item.UnitPrice, "UnitPrice", "unit_price", "gte", "0")
	}
}

package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCreateItem(req CreateInventoryItemRequest) []ValidationError {
	errs := []ValidationError{}
	if req.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductId", Description: "ProductId is required"})
	}
	if strings.TrimSpace(req.ProductName) == "" {
		errs = append(errs, ValidationError{Field: "ProductName", Description: "ProductName is required"})
	}
	if req.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	return errs
}

func validateRequirement(req RequirementRequest) []ValidationError {
	errs := []ValidationError{}
	if req.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductId", Description: "ProductId is required"})
	}
	if strings.TrimSpace(req.ProductName) == "" {
		errs = append(errs, ValidationError{Field: "ProductName", Description: "ProductName is required"})
	}
	if req.MinimumQuantity <= 0 {
		errs = append(errs, ValidationError{Field: "MinimumQuantity", Description: "MinimumQuantity must be greater than zero"})
	}
	return errs
}

func validateProduct(req ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

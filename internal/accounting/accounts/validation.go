package accounts

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Horpyshow/transportation-erp/internal/accounting/shared"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateCreate(in CreateAccountInput) error {
	if strings.TrimSpace(in.Number) == "" || strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: account number and name are required", shared.ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown account type %q", shared.ErrInvalidInput, in.Type)
	}
	if !in.NormalBalance.Valid() {
		return fmt.Errorf("%w: unknown normal balance %q", shared.ErrInvalidInput, in.NormalBalance)
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	return nil
}

func validateUpdate(in UpdateAccountInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: account name is required", shared.ErrInvalidInput)
	}
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	return nil
}

package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/Catalog/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

// AppValidator implements the usecase.Validator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase.Validator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePassword checks the password is present and usable by bcrypt.
func (av *AppValidator) ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("reactiontype", reactionTypeFL)
	}
}

// reactionTypeFL accepts only LIKE or DISLIKE.
func reactionTypeFL(fl validator.FieldLevel) bool {
	_, ok := entity.ParseReactionType(fl.Field().String())
	return ok
}

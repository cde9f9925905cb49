package usecasecontract

type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

package domain

type User struct {
	UserID         string
	Password       string
	Name           string
	PassportNumber string
	Phone          string
	Mileage        int
}

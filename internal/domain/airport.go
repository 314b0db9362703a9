package domain

type Airport struct {
	Code    string
	Name    string
	City    string
	Country string
}

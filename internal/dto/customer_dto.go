package dto

// CustomerRequest carries the create/update payload. All fields arrive as
// plain strings; the service trims them and stores empty optionals as NULL.
type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

package requests

// CreateInput holds the payload of an incoming contact request.
type CreateInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

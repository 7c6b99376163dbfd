package model

// User is the persisted account record. The JSON field names match the data
// files written by the original deployment (usuarios.json).
type User struct {
	Name         string `json:"nome"`
	Login        string `json:"usuario"`
	PasswordHash string `json:"senha"`
}

// PublicUser is the identity exposed by the API; the stored hash never
// leaves the service layer.
type PublicUser struct {
	Name  string `json:"nome"`
	Login string `json:"usuario"`
}

// RegisterReq represents the account registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	Name     string `json:"nome" validate:"required"`
	Login    string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required,min=4"`
}

// LoginReq represents a login payload, used by both the user and the admin
// entry points
// swagger:model LoginReq
type LoginReq struct {
	Login    string `json:"usuario" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

package book

type CreateBookReq struct {
	Title  string `json:"titulo" validate:"required"`
	Author string `json:"autor" validate:"required"`
}

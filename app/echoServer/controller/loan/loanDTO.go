package loan

type BorrowReq struct {
	Title string `json:"titulo" validate:"required"`
}

type ReturnReq struct {
	Title string `json:"titulo" validate:"required"`
}

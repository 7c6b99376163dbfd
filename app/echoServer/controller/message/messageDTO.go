package message

type SubmitReq struct {
	Name  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"mensagem" validate:"required"`
}

type ReplyReq struct {
	Reply string `json:"resposta" validate:"required"`
}

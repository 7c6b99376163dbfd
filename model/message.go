package model

// ContactMessage is a public contact-form submission (formularios.json).
//
// ID is generated at creation so admin replies address a stable key rather
// than the array position, and Login records the submitter's account when
// the form was sent by a signed-in user (empty for anonymous visitors).
type ContactMessage struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Body  string `json:"mensagem"`
	Reply string `json:"resposta"`
	Login string `json:"login,omitempty"`
}

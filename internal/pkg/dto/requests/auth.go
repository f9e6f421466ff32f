package requests

type LoginUser struct {
	Username  string `json:"username" form:"username" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
	ReturnURL string `json:"-" form:"returnUrl"`
}

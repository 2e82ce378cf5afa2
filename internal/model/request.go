package model

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateInventoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Img         string `json:"img"`
	ImgFilename string `json:"imgFilename"`
}

type AddCartItemRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
	Img   string `json:"img"`
}

type UploadResult struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

type AppointmentRequest struct {
	Datetime string `json:"datetime"`
	Notes    string `json:"notes"`
	Status   string `json:"status"`
}

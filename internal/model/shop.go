package model

type InventoryItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Price       string `json:"price"`
	Img         string `json:"img"`
}

type CartItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Qty   int    `json:"qty"`
	Img   string `json:"img"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

type Appointment struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	Datetime string `json:"datetime"`
	Notes    string `json:"notes"`
	Status   string `json:"status"`
}

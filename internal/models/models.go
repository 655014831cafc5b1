package models

// Wire shapes of the Khet Connect API. Records come back verbatim from the
// remote service; only the fields the panel displays are declared. Note the
// input/output mismatch on farmers: the add form captures "contact" but the
// stored record exposes "phone".

type Farmer struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LandSize string `json:"landSize,omitempty"`
	Crops    string `json:"crops,omitempty"`
}

type Product struct {
	ID          string  `json:"_id"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ProductImg  string  `json:"product_img"`
	Catagory    string  `json:"catagory"`
}

type Order struct {
	ID            string  `json:"_id"`
	User          string  `json:"user"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

// Tokens is the data payload of a successful login.
type Tokens struct {
	AccessToken  string `json:"Access_token"`
	RefreshToken string `json:"Refress_token"`
}

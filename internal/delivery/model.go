package delivery

type Rate struct {
	ID          string  `json:"id"`
	Governorate string  `json:"governorate"`
	Price       float64 `json:"price"`
}

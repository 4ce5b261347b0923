package entity

// Target kuzatilayotgan mahsulot varianti (backend tomonidan ID beriladi)
type Target struct {
	ID          uint   `json:"ID"`
	ProductCode string `json:"ProductCode"`
	Name        string `json:"Name"`
	Colour      string `json:"Colour"`
	Size        string `json:"Size"`
	ImageUrl    string `json:"ImageUrl"`
	TargetPrice uint   `json:"TargetPrice"`
	Price       uint   `json:"Price"`
	Stock       uint   `json:"Stock"`
}

// TargetRequest yangi target qo'shish uchun ma'lumot
type TargetRequest struct {
	ProductCode string
	Colour      string
	Size        string
	Price       uint
}

// Reached narx maqsadga yetganini tekshirish
func (t Target) Reached() bool {
	return t.Price > 0 && t.Price <= t.TargetPrice
}

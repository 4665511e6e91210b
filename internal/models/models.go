package models

// Order carries only its running total. Items reference an order by plain
// id, there is no owned collection and no foreign key between the tables.
type Order struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	TotalAmount float64 `gorm:"not null"                 json:"totalAmount"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int     `json:"orderId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `gorm:"not null"                 json:"description"`
	Stock       int     `json:"stock"`
	Price       float64 `gorm:"not null"                 json:"price"`
}

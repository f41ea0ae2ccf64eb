package entity

type Category string

const (
	CategoryFood    Category = "food"
	CategoryTopping Category = "topping"
)

// ToppingStockSentinel is the stored stock value for toppings; their effective
// stock is unlimited regardless of it.
const ToppingStockSentinel = 999999

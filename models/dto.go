package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=staff admin"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

type ReorderCategoriesRequest struct {
	OldIndex int `json:"old_index"`
	NewIndex int `json:"new_index"`
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description"`
	CategoryID  int     `json:"category_id" form:"category_id" binding:"required"`
	Price       float64 `json:"price" form:"price"`
	IsAvailable *bool   `json:"is_available" form:"is_available"`
	ImageURL    string  `json:"image_url" form:"image_url"`
}

type UpdateMenuItemRequest struct {
	Name        string   `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	CategoryID  int      `json:"category_id" form:"category_id"`
	Price       *float64 `json:"price" form:"price"`
	IsAvailable *bool    `json:"is_available" form:"is_available"`
	ImageURL    *string  `json:"image_url" form:"image_url"`
}

type BulkAvailabilityRequest struct {
	ItemIDs     []int `json:"item_ids" binding:"required"`
	IsAvailable bool  `json:"is_available"`
}

type OrderItemRequest struct {
	MenuItemID      int     `json:"menu_item_id" binding:"required"`
	MenuItemName    string  `json:"menu_item_name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	SpecialRequests string  `json:"special_requests"`
}

type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	TableNumber     string             `json:"table_number"`
	OrderType       string             `json:"order_type"`
	SpecialRequests string             `json:"special_requests"`
	CustomerID      *int               `json:"customer_id"`
	Items           []OrderItemRequest `json:"items"`
}

type UpdateOrderItemsRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MoveOrderRequest carries a board drag: the column the card was dropped on.
type MoveOrderRequest struct {
	Column string `json:"column" binding:"required"`
}

type CreateTableRequest struct {
	Seats int    `json:"seats" binding:"required"`
	Shape string `json:"shape" binding:"required"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

type UpdateTableRequest struct {
	Seats  int     `json:"seats"`
	Shape  string  `json:"shape"`
	Server *string `json:"server"`
}

// MoveTableRequest carries the net displacement of a floor-plan drag.
type MoveTableRequest struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

type TableStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignServerRequest struct {
	Server *string `json:"server"`
}

package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}

type OrderStats struct {
	Total        int     `json:"total"`
	Today        int     `json:"today"`
	Pending      int     `json:"pending"`
	Preparing    int     `json:"preparing"`
	Ready        int     `json:"ready"`
	Completed    int     `json:"completed"`
	TotalRevenue float64 `json:"total_revenue"`
	TodayRevenue float64 `json:"today_revenue"`
}

type TableStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
	Cleaning  int `json:"cleaning"`
}

type BoardColumn struct {
	Status string  `json:"status"`
	Orders []Order `json:"orders"`
}

type FloorPlanTemplate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Tables int    `json:"tables"`
}

package models

import "time"

type CreateDealRequest struct {
	ProductID     int       `json:"product_id" binding:"required"`
	DealPrice     int       `json:"deal_price" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	IsFlashSale   bool      `json:"is_flash_sale"`
	OriginalStock int       `json:"original_stock"`
}

type UpdateDealRequest struct {
	DealPrice     *int       `json:"deal_price"`
	EndDate       *time.Time `json:"end_date"`
	IsFlashSale   *bool      `json:"is_flash_sale"`
	OriginalStock *int       `json:"original_stock"`
	IsActive      *bool      `json:"is_active"`
}

type VoteRequest struct {
	Helpful bool `json:"helpful"`
}

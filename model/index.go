package model

import "time"

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenClaim struct {
	AccountId uint   `json:"accountId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type ArrayId struct {
	IDs []uint `json:"ids"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}

// BulkActionInput drives the admin bulk toolbar: one action applied to many rows.
type BulkActionInput struct {
	Action string `json:"action" validate:"required,oneof=activate deactivate delete"`
	IDs    []uint `json:"ids" validate:"required,min=1,dive,required"`
}

// BulkActionResult reports per-id outcomes. Earlier ids stay mutated when a later one fails.
type BulkActionResult struct {
	Succeeded []uint          `json:"succeeded"`
	Failed    map[uint]string `json:"failed,omitempty"`
}

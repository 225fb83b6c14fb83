package model

type Translation struct {
	DTO
	Key      string `gorm:"not null;uniqueIndex:idx_key_language" validate:"required" json:"key"`
	Language string `gorm:"not null;size:5;uniqueIndex:idx_key_language" validate:"required,min=2,max=5" json:"language"`
	Value    string `gorm:"not null;type:text" validate:"required" json:"value"`
}

type CreateTranslationInput struct {
	Key      string `json:"key" validate:"required"`
	Language string `json:"language" validate:"required,min=2,max=5"`
	Value    string `json:"value" validate:"required"`
}

type EditTranslationInput struct {
	Value *string `json:"value"`
}

type FilterTranslation struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Language  string `json:"language"`
}

// LanguageSetting is the per-site language configuration. One row per site;
// the default site uses key "default".
type LanguageSetting struct {
	DTO
	SiteKey          string   `gorm:"uniqueIndex;not null;default:default" json:"siteKey"`
	DefaultLanguage  string   `gorm:"not null;size:5;default:en" json:"defaultLanguage"`
	EnabledLanguages []string `gorm:"type:json;serializer:json" json:"enabledLanguages"`
	RtlLanguages     []string `gorm:"type:json;serializer:json" json:"rtlLanguages"`
}

type EditLanguageSettingInput struct {
	DefaultLanguage  *string   `json:"defaultLanguage" validate:"omitempty,min=2,max=5"`
	EnabledLanguages *[]string `json:"enabledLanguages" validate:"omitempty,min=1,dive,min=2,max=5"`
	RtlLanguages     *[]string `json:"rtlLanguages" validate:"omitempty,dive,min=2,max=5"`
}

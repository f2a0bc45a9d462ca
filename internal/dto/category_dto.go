package dto

type CreateCategoryRequest struct {
	Slug     string  `json:"slug"`
	NameDe   string  `json:"name_de"`
	NameEn   string  `json:"name_en"`
	Icon     string  `json:"icon"`
	ParentID *string `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	NameDe   *string `json:"name_de,omitempty"`
	NameEn   *string `json:"name_en,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

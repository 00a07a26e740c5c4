package dto

import "finance-dashboard/internal/models"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,category_name"`
}

type KeywordRequest struct {
	Keyword string `json:"keyword" validate:"required,keyword"`
}

// CategoriesResponse wraps the ordered category map of the caller.
type CategoriesResponse struct {
	Categories models.CategoryMap `json:"categories"`
}

// ReplaceCategoriesRequest replaces the whole map. Uncategorised is added
// when missing.
type ReplaceCategoriesRequest struct {
	Categories models.CategoryMap `json:"categories"`
}

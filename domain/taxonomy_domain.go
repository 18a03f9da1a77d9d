package domain

const (
	MessageSuccessGetTaxonomy = "taxonomy retrieved successfully"
)

type (
	TaxonomyResponse struct {
		Categories []TaxonomyCategory `json:"categories"`
		ItemTypes  []string           `json:"item_types"`
	}

	TaxonomyCategory struct {
		Name          string                `json:"name"`
		SubCategories []TaxonomySubCategory `json:"sub_categories"`
	}

	TaxonomySubCategory struct {
		Name     string   `json:"name"`
		Programs []string `json:"programs"`
	}
)

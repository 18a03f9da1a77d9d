package handlers

import (
	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/internal/api/presenters"
	"Campus-Inventory-System/pkg/taxonomy"

	"github.com/gofiber/fiber/v2"
)

type (
	TaxonomyHandler interface {
		GetTaxonomy(c *fiber.Ctx) error
	}

	taxonomyHandler struct{}
)

func NewTaxonomyHandler() TaxonomyHandler {
	return &taxonomyHandler{}
}

// GetTaxonomy returns the full category tree plus the item type list, in the
// order the client dropdowns present them.
func (h *taxonomyHandler) GetTaxonomy(c *fiber.Ctx) error {
	response := domain.TaxonomyResponse{}

	for _, category := range taxonomy.Categories() {
		node := domain.TaxonomyCategory{Name: string(category)}
		for _, sub := range taxonomy.SubCategories(category) {
			subNode := domain.TaxonomySubCategory{
				Name:     string(sub),
				Programs: []string{},
			}
			for _, program := range taxonomy.Programs(sub) {
				subNode.Programs = append(subNode.Programs, string(program))
			}
			node.SubCategories = append(node.SubCategories, subNode)
		}
		response.Categories = append(response.Categories, node)
	}

	for _, itemType := range taxonomy.ItemTypes() {
		response.ItemTypes = append(response.ItemTypes, string(itemType))
	}

	return presenters.SuccessResponse(c, response, fiber.StatusOK, domain.MessageSuccessGetTaxonomy)
}

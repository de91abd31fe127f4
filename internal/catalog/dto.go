package catalog

import "github.com/kanzcollective/storefront-backend/pkg/db/models"

// ProductDTO is the wire shape the storefront client consumes.
type ProductDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Tags             []string `json:"tags"`
	Price            int      `json:"price"`
	Currency         string   `json:"currency"`
	Stock            int      `json:"stock"`
	Image            string   `json:"image"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
}

func toDTO(row models.Product) ProductDTO {
	return ProductDTO{
		ID:               row.ID,
		Name:             row.Name,
		Tags:             append([]string(nil), row.Tags...),
		Price:            row.Price,
		Currency:         row.Currency,
		Stock:            row.Stock,
		Image:            row.Image,
		ShortDescription: row.ShortDescription,
		LongDescription:  row.LongDescription,
	}
}

func toDTOs(rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out
}

package request

import (
	"strings"

	"eto_pipeline/internal/usecase"
)

type BOQItemRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
	Quantity    Amount `json:"quantity" swaggertype:"string" example:"4"`
	Rate        Amount `json:"rate" swaggertype:"string" example:"12.50"`
}

func (r BOQItemRequest) ToInput() usecase.BOQItemInput {
	return usecase.BOQItemInput{
		Description: strings.TrimSpace(r.Description),
		Category:    r.Category,
		Unit:        strings.TrimSpace(r.Unit),
		Quantity:    r.Quantity.Decimal(),
		Rate:        r.Rate.Decimal(),
	}
}

type BOQItemPatchRequest struct {
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Unit        *string `json:"unit"`
	Quantity    *Amount `json:"quantity" swaggertype:"string"`
	Rate        *Amount `json:"rate" swaggertype:"string"`
}

func (r BOQItemPatchRequest) ToPatch() usecase.BOQItemPatch {
	return usecase.BOQItemPatch{
		Description: r.Description,
		Category:    r.Category,
		Unit:        r.Unit,
		Quantity:    r.Quantity.DecimalPtr(),
		Rate:        r.Rate.DecimalPtr(),
	}
}

type GenerateBOQRequest struct {
	Items []BOQItemRequest `json:"items"`
}

func (r GenerateBOQRequest) ToInputs() []usecase.BOQItemInput {
	out := make([]usecase.BOQItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.ToInput())
	}
	return out
}

// StatusRequest is shared by every endpoint that moves a status field.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

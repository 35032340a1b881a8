package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nakshatra-astro/nakshatra-backend/api/responses"
	"github.com/nakshatra-astro/nakshatra-backend/api/validators"
	productsvc "github.com/nakshatra-astro/nakshatra-backend/internal/products"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/logger"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/pagination"
	"github.com/nakshatra-astro/nakshatra-backend/pkg/types"
)

// ProductList serves the public catalog with category filter and paging.
func ProductList(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := productsvc.ListFilter{
			Category: query.Get("category"),
			Search:   query.Get("search"),
		}
		params := pagination.FromQuery(query)

		items, page, err := svc.List(r.Context(), filter, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"products":   items,
			"pagination": page,
		})
	}
}

// ProductDetail serves one active product by id.
func ProductDetail(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Name            string               `json:"name" validate:"required"`
	Description     *string              `json:"description,omitempty"`
	Category        string               `json:"category" validate:"required"`
	Price           decimal.Decimal      `json:"price" validate:"required"`
	DiscountedPrice *decimal.Decimal     `json:"discounted_price,omitempty"`
	ImageURLs       []string             `json:"image_urls,omitempty"`
	Stock           int                  `json:"stock" validate:"min=0"`
	IsActive        *bool                `json:"is_active,omitempty"`
	Specifications  types.Specifications `json:"specifications,omitempty"`
}

type updateProductRequest struct {
	Name            *string              `json:"name,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Category        *string              `json:"category,omitempty"`
	Price           *decimal.Decimal     `json:"price,omitempty"`
	DiscountedPrice *decimal.Decimal     `json:"discounted_price,omitempty"`
	ClearDiscount   bool                 `json:"clear_discount,omitempty"`
	ImageURLs       []string             `json:"image_urls,omitempty"`
	Stock           *int                 `json:"stock,omitempty"`
	IsActive        *bool                `json:"is_active,omitempty"`
	Specifications  types.Specifications `json:"specifications,omitempty"`
}

// AdminCreateProduct inserts a catalog product.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), productsvc.CreateProductInput{
			Name:            payload.Name,
			Description:     payload.Description,
			Category:        payload.Category,
			Price:           payload.Price,
			DiscountedPrice: payload.DiscountedPrice,
			ImageURLs:       payload.ImageURLs,
			Stock:           payload.Stock,
			IsActive:        payload.IsActive,
			Specifications:  payload.Specifications,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// AdminUpdateProduct applies a partial update to a catalog product.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Update(r.Context(), productID, productsvc.UpdateProductInput{
			Name:            payload.Name,
			Description:     payload.Description,
			Category:        payload.Category,
			Price:           payload.Price,
			DiscountedPrice: payload.DiscountedPrice,
			ClearDiscount:   payload.ClearDiscount,
			ImageURLs:       payload.ImageURLs,
			Stock:           payload.Stock,
			IsActive:        payload.IsActive,
			Specifications:  payload.Specifications,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a catalog product.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.ParseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminSeedProducts inserts the sample catalog into an empty table.
func AdminSeedProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.Seed(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]int{"seeded": count})
	}
}

package httpserver

import (
	"errors"
	"net/http"

	"digitalstore/internal/domain"
	productrepo "digitalstore/internal/repository/product"
	"digitalstore/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

// listProbe is the minimal query used by the /test diagnostic.
var listProbe = productrepo.ListFilter{Limit: 1}

type productRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=120"`
	Slug        string   `json:"slug" binding:"required,min=3,max=140"`
	Description string   `json:"description" binding:"required,min=20,max=5000"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"omitempty,oneof=course prompt video template bundle other"`
	Level       string   `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	RatingCount *int     `json:"rating_count" binding:"omitempty,gte=0"`
	CoverURL    string   `json:"cover_url" binding:"omitempty,url"`
	Contents    []string `json:"contents"`
	Benefits    []string `json:"benefits"`
	Tags        []string `json:"tags"`
}

func (r productRequest) toDomain() domain.Product {
	p := domain.Product{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Level:       r.Level,
		Rating:      4.8,
		CoverURL:    r.CoverURL,
		Contents:    r.Contents,
		Benefits:    r.Benefits,
		Tags:        r.Tags,
	}
	if p.Category == "" {
		p.Category = domain.CategoryOther
	}
	if r.Rating != nil {
		p.Rating = *r.Rating
	}
	if r.RatingCount != nil {
		p.RatingCount = *r.RatingCount
	}
	return p
}

type listProductsQuery struct {
	Category string   `form:"category"`
	Level    string   `form:"level"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	Limit    int64    `form:"limit"`
}

func createProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			validationError(c, err)
			return
		}
		created, err := svc.Create(c.Request.Context(), req.toDomain())
		if err != nil {
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": created})
	}
}

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listProductsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			validationError(c, err)
			return
		}
		products, err := svc.List(c.Request.Context(), productrepo.ListFilter{
			Category: q.Category,
			Level:    q.Level,
			MinPrice: q.MinPrice,
			MaxPrice: q.MaxPrice,
			Limit:    q.Limit,
		})
		if err != nil {
			apiError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
				return
			}
			apiError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": p})
	}
}

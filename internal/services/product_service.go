package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/varsitymarket/varsity-market-backend/internal/database"
	"github.com/varsitymarket/varsity-market-backend/internal/dto"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("not authorized to modify this product")
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns products matching the filters, newest first, with sellers
// preloaded.
func (s *ProductService) List(f *dto.ProductFilters) ([]models.Product, error) {
	query := s.db.Model(&models.Product{}).Preload("Seller")

	if f.University != "" {
		query = query.Where("university = ?", f.University)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var products []models.Product
	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Seller").First(&product, "id = ?", id).Error; err != nil {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

func (s *ProductService) ListBySeller(sellerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Scopes(database.BySeller(sellerID)).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (s *ProductService) Create(sellerID uuid.UUID, req *dto.CreateProductRequest) (*models.Product, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}
	if req.Price < 0 {
		return nil, errors.New("price must be non-negative")
	}
	if len(req.ImageURLs) == 0 {
		return nil, errors.New("at least one image is required")
	}
	if !models.ValidCategory(req.Category) {
		return nil, errors.New("unknown category")
	}
	if !models.ValidCondition(req.Condition) {
		return nil, errors.New("unknown condition")
	}

	product := models.Product{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		ImageURLs:   req.ImageURLs,
		SellerID:    sellerID,
		University:  req.University,
		IsSold:      false,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Update merges a partial edit into the product. Only the owner or an admin
// may edit; an empty image list keeps the existing images.
func (s *ProductService) Update(id, actorID uuid.UUID, isAdmin bool, req *dto.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, ErrProductNotFound
	}

	if product.SellerID != actorID && !isAdmin {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, errors.New("price must be non-negative")
		}
		product.Price = *req.Price
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			return nil, errors.New("unknown category")
		}
		product.Category = *req.Category
	}
	if req.Condition != nil {
		if !models.ValidCondition(*req.Condition) {
			return nil, errors.New("unknown condition")
		}
		product.Condition = *req.Condition
	}
	if len(req.ImageURLs) > 0 {
		product.ImageURLs = req.ImageURLs
	}
	if req.University != nil {
		product.University = *req.University
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(id, actorID uuid.UUID, isAdmin bool) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return ErrProductNotFound
	}

	if product.SellerID != actorID && !isAdmin {
		return ErrNotOwner
	}

	return s.db.Delete(&product).Error
}

// ToggleSold flips the listing's sold flag.
func (s *ProductService) ToggleSold(id, actorID uuid.UUID, isAdmin bool) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, ErrProductNotFound
	}

	if product.SellerID != actorID && !isAdmin {
		return nil, ErrNotOwner
	}

	product.IsSold = !product.IsSold
	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductToResponse maps a product model to its API representation. The
// seller annotation is included when the association is loaded.
func ProductToResponse(p *models.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Condition:   p.Condition,
		ImageURLs:   p.ImageURLs,
		SellerID:    p.SellerID,
		University:  p.University,
		IsSold:      p.IsSold,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Seller.ID != uuid.Nil {
		resp.SellerName = p.Seller.Name
		resp.SellerAvatar = p.Seller.AvatarURL
	}
	return resp
}

// ProductsToResponse maps a slice of products.
func ProductsToResponse(products []models.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ProductToResponse(&products[i]))
	}
	return out
}

package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ProductsRepository is a read-only mirror of the upstream catalog stored in postgres.
type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// ReplaceAll swaps the whole mirror for the given snapshot in a single transaction.
func (r *ProductsRepository) ReplaceAll(ctx context.Context, products []Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM products").Error; err != nil {
			return fmt.Errorf("clear products: %w", err)
		}
		if len(products) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(products, 100).Error; err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
		return nil
	})
}

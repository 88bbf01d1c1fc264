package repository

import "github.com/oksasatya/product-market-api/internal/domain/entity"

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]entity.Product, error)
	SearchByName(name string) ([]entity.Product, error)
	Update(p *entity.Product) error
	Delete(id int64) error
}

package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/product-market-api/internal/domain/entity"
	"github.com/oksasatya/product-market-api/internal/domain/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("caller does not own this product")
)

// ProductService implements ownership-gated product CRUD. Every mutation
// resolves the owner from the caller's token identity, never from the body.
type ProductService struct {
	Products repository.ProductRepository
	Users    repository.UserRepository
	Logger   *logrus.Logger
}

func NewProductService(products repository.ProductRepository, users repository.UserRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{Products: products, Users: users, Logger: logger}
}

type ProductInput struct {
	ProductName string
	Description string
	Price       float64
	Image       string
}

func (s *ProductService) List() ([]entity.Product, error) {
	return s.Products.List()
}

func (s *ProductService) Get(id int64) (*entity.Product, error) {
	p, err := s.Products.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) SearchByName(name string) ([]entity.Product, error) {
	return s.Products.SearchByName(name)
}

// Create stores a new product owned by the caller. The owner must exist;
// a token without a usable id claim resolves to no user and fails here.
func (s *ProductService) Create(callerID int64, in ProductInput) (*entity.Product, error) {
	owner, err := s.Users.GetByID(callerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p := &entity.Product{
		ProductName: in.ProductName,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		UserID:      owner.ID,
	}
	if err := s.Products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update loads the product, enforces ownership, then writes the new fields.
// Two owners racing on the same row are not serialized here; last write wins,
// matching the store's single-row atomicity.
func (s *ProductService) Update(callerID, productID int64, in ProductInput) (*entity.Product, error) {
	p, err := s.Get(productID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(callerID, p.UserID); err != nil {
		return nil, err
	}

	p.ProductName = in.ProductName
	p.Description = in.Description
	p.Price = in.Price
	p.Image = in.Image

	if err := s.Products.Update(p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the product after the same load-then-authorize sequence.
func (s *ProductService) Delete(callerID, productID int64) error {
	p, err := s.Get(productID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(callerID, p.UserID); err != nil {
		return err
	}

	if err := s.Products.Delete(p.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// authorizeOwner requires exact id equality. Ids start at 1, so a caller id
// of zero (token without an id claim) can never pass.
func authorizeOwner(callerID, ownerID int64) error {
	if callerID == 0 || callerID != ownerID {
		return ErrNotOwner
	}
	return nil
}

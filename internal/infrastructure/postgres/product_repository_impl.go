package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/product-market-api/internal/domain/entity"
	"github.com/oksasatya/product-market-api/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (product_name, description, price, image, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, p.ProductName, p.Description, p.Price, p.Image, p.UserID)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	ctx := context.Background()
	p := &entity.Product{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, product_name, description, price, image, user_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.ProductName, &p.Description, &p.Price, &p.Image,
		&p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProductRepository) List() ([]entity.Product, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, product_name, description, price, image, user_id, created_at, updated_at
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) SearchByName(name string) ([]entity.Product, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, `
		SELECT id, product_name, description, price, image, user_id, created_at, updated_at
		FROM products
		WHERE product_name ILIKE '%' || $1 || '%'
		ORDER BY id
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) Update(p *entity.Product) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE products
		SET product_name = $1, description = $2, price = $3, image = $4, updated_at = $5
		WHERE id = $6
	`, p.ProductName, p.Description, p.Price, p.Image, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(id int64) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]entity.Product, error) {
	products := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.Description, &p.Price, &p.Image,
			&p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

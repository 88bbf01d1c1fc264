package application

import (
	"strings"
	"time"

	"github.com/oksasatya/product-market-api/internal/domain/entity"
	"github.com/oksasatya/product-market-api/internal/domain/repository"
)

// In-memory repositories for service tests. They honor the same sentinel
// error contract as the postgres implementations.

type memUserRepo struct {
	users  map[int64]entity.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List() ([]entity.User, error) {
	out := []entity.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) Delete(id int64) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memProductRepo struct {
	products map[int64]entity.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[int64]entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memProductRepo) List() ([]entity.Product, error) {
	out := []entity.Product{}
	for i := int64(1); i <= r.nextID; i++ {
		if p, ok := r.products[i]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) SearchByName(name string) ([]entity.Product, error) {
	out := []entity.Product{}
	for i := int64(1); i <= r.nextID; i++ {
		p, ok := r.products[i]
		if ok && strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) Delete(id int64) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

var (
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.ProductRepository = (*memProductRepo)(nil)
)

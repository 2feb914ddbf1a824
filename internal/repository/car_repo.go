package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"autobid-server/internal/model"
)

const carColumns = `id, brand_name, model_name, category, description, price,
	deadline, seller_email, buyer, gallery_images, created_at, updated_at`

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) List(ctx context.Context, q model.CarQuery) ([]model.Car, error) {
	where, args := buildCarFilter(q)

	sql := `SELECT ` + carColumns + ` FROM cars` + where + orderClause(q.Sort)
	args = append(args, q.Size, q.Page*q.Size)
	sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	return scanCars(rows)
}

func (r *CarRepository) Count(ctx context.Context, q model.CarQuery) (int, error) {
	where, args := buildCarFilter(q)

	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cars`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return count, nil
}

func (r *CarRepository) FindAll(ctx context.Context) ([]model.Car, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+carColumns+` FROM cars`)
	if err != nil {
		return nil, fmt.Errorf("find all cars: %w", err)
	}
	defer rows.Close()

	return scanCars(rows)
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (model.Car, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id)

	car, err := scanCar(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Car{}, model.ErrCarNotFound
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("find car by id: %w", err)
	}
	return car, nil
}

// FindForOwner returns listings where the given email is the seller or
// the recorded buyer.
func (r *CarRepository) FindForOwner(ctx context.Context, email string) ([]model.Car, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+carColumns+` FROM cars WHERE seller_email = $1 OR buyer->>'email' = $1`, email)
	if err != nil {
		return nil, fmt.Errorf("find cars for owner: %w", err)
	}
	defer rows.Close()

	return scanCars(rows)
}

func (r *CarRepository) Insert(ctx context.Context, car model.Car) (model.Car, error) {
	buyer, err := marshalBuyer(car.Buyer)
	if err != nil {
		return model.Car{}, err
	}

	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx,
		`INSERT INTO cars (brand_name, model_name, category, description, price,
		                   deadline, seller_email, buyer, gallery_images, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		 RETURNING `+carColumns,
		car.BrandName, car.ModelName, car.Category, car.Description, car.Price,
		car.Deadline, car.SellerEmail, buyer, car.GalleryImages, now)

	created, err := scanCar(row)
	if err != nil {
		return model.Car{}, fmt.Errorf("insert car: %w", err)
	}
	return created, nil
}

// Update applies the non-nil patch fields. A nil GalleryImages slice is
// treated as "field absent" so an existing gallery is never cleared
// implicitly. Returns the number of rows matched.
func (r *CarRepository) Update(ctx context.Context, id string, patch model.CarPatch) (int64, error) {
	sets := make([]string, 0, 8)
	args := []any{id}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.BrandName != nil {
		addSet("brand_name", *patch.BrandName)
	}
	if patch.ModelName != nil {
		addSet("model_name", *patch.ModelName)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Price != nil {
		addSet("price", *patch.Price)
	}
	if patch.Deadline != nil {
		addSet("deadline", *patch.Deadline)
	}
	if patch.Buyer != nil {
		buyer, err := marshalBuyer(patch.Buyer)
		if err != nil {
			return 0, err
		}
		addSet("buyer", buyer)
	}
	if patch.GalleryImages != nil {
		addSet("gallery_images", patch.GalleryImages)
	}

	if len(sets) == 0 {
		// Nothing to change; report whether the row exists.
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cars WHERE id = $1)`, id).Scan(&exists); err != nil {
			return 0, fmt.Errorf("check car exists: %w", err)
		}
		if exists {
			return 1, nil
		}
		return 0, nil
	}

	addSet("updated_at", time.Now().UTC())

	sql := `UPDATE cars SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("update car: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CarRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete car: %w", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (model.Car, error) {
	var (
		c     model.Car
		buyer []byte
	)
	err := row.Scan(&c.ID, &c.BrandName, &c.ModelName, &c.Category, &c.Description,
		&c.Price, &c.Deadline, &c.SellerEmail, &buyer, &c.GalleryImages,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.Car{}, err
	}

	if len(buyer) > 0 {
		c.Buyer = &model.Buyer{}
		if err := json.Unmarshal(buyer, c.Buyer); err != nil {
			return model.Car{}, fmt.Errorf("decode buyer: %w", err)
		}
	}
	return c, nil
}

func scanCars(rows pgx.Rows) ([]model.Car, error) {
	cars := make([]model.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}

func marshalBuyer(b *model.Buyer) ([]byte, error) {
	if b == nil {
		return nil, nil
	}

	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode buyer: %w", err)
	}
	return data, nil
}

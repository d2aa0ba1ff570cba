package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

const pgForeignKeyViolation = "23503"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            category_id, name, description, price, discount_price, unit, origin,
            image_url, is_featured, is_new, is_active, created_at, updated_at
        )
        VALUES (
            :category_id, :name, :description, :price, :discount_price, :unit, :origin,
            :image_url, :is_featured, :is_new, :is_active, :created_at, :updated_at
        )
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, p)
	if err != nil {
		return mapWriteError(err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return mapWriteError(err)
		}
		return errors.New("insert product: no id returned")
	}
	return rows.Scan(&p.ID)
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	products := []model.Product{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if len(f.CategoryIDs) > 0 {
		conditions = append(conditions, "category_id IN (:category_ids)")
		args["category_ids"] = f.CategoryIDs
	}
	if f.IsActive != nil {
		conditions = append(conditions, "is_active = :is_active")
		args["is_active"] = *f.IsActive
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "price >= :min_price")
		args["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "price <= :max_price")
		args["max_price"] = *f.MaxPrice
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "name ILIKE :search")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Count
	query, qargs, err := r.bind("SELECT count(*) FROM products"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, query, qargs...); err != nil {
		return nil, 0, err
	}

	// List
	list := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s", whereClause, orderBy(f.SortBy, f.SortOrder))
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		list += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	query, qargs, err = r.bind(list, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.SelectContext(ctx, &products, query, qargs...); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

// bind expands named arguments and slice arguments (IN lists) into driver placeholders.
func (r *PGRepository) bind(query string, args map[string]interface{}) (string, []interface{}, error) {
	q, qargs, err := sqlx.Named(query, args)
	if err != nil {
		return "", nil, err
	}
	q, qargs, err = sqlx.In(q, qargs...)
	if err != nil {
		return "", nil, err
	}
	return r.DB.Rebind(q), qargs, nil
}

// orderBy whitelists the sortable columns. id breaks ties so pages do not overlap.
func orderBy(sortBy, sortOrder string) string {
	column := "created_at"
	switch sortBy {
	case "name":
		column = "name"
	case "price":
		column = "price"
	case "created_at":
		column = "created_at"
	}

	dir := "DESC"
	if sortBy != "" && strings.ToLower(sortOrder) == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s, id %s", column, dir, dir)
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET category_id = :category_id,
            name = :name,
            description = :description,
            price = :price,
            discount_price = :discount_price,
            unit = :unit,
            origin = :origin,
            image_url = :image_url,
            is_featured = :is_featured,
            is_new = :is_new,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return mapWriteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return product.ErrNotFound
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	return err
}

func (r *PGRepository) CountByStatus(ctx context.Context) (*dto.ProductCounts, error) {
	var c dto.ProductCounts
	query := `
        SELECT count(*) AS total,
               count(*) FILTER (WHERE is_active) AS active,
               count(*) FILTER (WHERE NOT is_active) AS inactive
        FROM products
    `
	if err := r.DB.GetContext(ctx, &c, query); err != nil {
		return nil, err
	}
	return &c, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return product.ErrCategoryNotFound
	}
	return err
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Dispensario-api/internal/domain"
	"github.com/jhoicas/Dispensario-api/internal/domain/entity"
	"github.com/jhoicas/Dispensario-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
// El índice único (dispensary_id, name) respalda la unicidad ante creates concurrentes.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, dispensary_id, name, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.DispensaryID, category.Name, category.Position,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, dispensary_id, name, position, created_at, updated_at
		FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get category")
}

// GetByIDAndDispensary obtiene una categoría que coincida en id Y dispensario.
func (r *CategoryRepo) GetByIDAndDispensary(id, dispensaryID string) (*entity.Category, error) {
	query := `
		SELECT id, dispensary_id, name, position, created_at, updated_at
		FROM categories WHERE id = $1 AND dispensary_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, dispensaryID), "get category by dispensary")
}

// GetByNameAndDispensary obtiene una categoría por (name, dispensary).
func (r *CategoryRepo) GetByNameAndDispensary(name, dispensaryID string) (*entity.Category, error) {
	query := `
		SELECT id, dispensary_id, name, position, created_at, updated_at
		FROM categories WHERE name = $1 AND dispensary_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, dispensaryID), "get category by name")
}

// MaxPosition devuelve la posición máxima entre las categorías del dispensario, 0 si no hay ninguna.
func (r *CategoryRepo) MaxPosition(dispensaryID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(position), 0) FROM categories WHERE dispensary_id = $1`,
		dispensaryID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max position: %w", err)
	}
	return max, nil
}

// Update persiste name, position y updated_at. created_at y dispensary_id no se tocan.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, position = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Position, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID (hard delete).
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ListWithProducts ejecuta el join categoría-productos. Con dispensaryID vacío
// incluye todos los tenants. LEFT JOIN: una categoría sin productos aparece
// con la lista vacía.
func (r *CategoryRepo) ListWithProducts(dispensaryID string) ([]*entity.CategoryWithProducts, error) {
	query := `
		SELECT c.id, c.dispensary_id, c.name,
		       p.id, p.name, p.description, p.amount, p.quantity, p.image, p.category_id, p.dispensary_id
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE $1 = '' OR c.dispensary_id = $1
		ORDER BY c.position, c.id`
	rows, err := r.q.Query(context.Background(), query, dispensaryID)
	if err != nil {
		return nil, fmt.Errorf("list categories with products: %w", err)
	}
	defer rows.Close()

	var list []*entity.CategoryWithProducts
	byID := make(map[string]*entity.CategoryWithProducts)
	for rows.Next() {
		var catID, catDispensary, catName string
		var p productRow
		if err := rows.Scan(&catID, &catDispensary, &catName,
			&p.ID, &p.Name, &p.Description, &p.Amount, &p.Quantity, &p.Image, &p.CategoryID, &p.DispensaryID); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		cat, ok := byID[catID]
		if !ok {
			cat = &entity.CategoryWithProducts{
				ID:           catID,
				DispensaryID: catDispensary,
				Name:         catName,
				Products:     []entity.Product{},
			}
			byID[catID] = cat
			list = append(list, cat)
		}
		if p.ID != nil { // fila sin producto: columnas del LEFT JOIN en NULL
			cat.Products = append(cat.Products, p.toEntity())
		}
	}
	return list, rows.Err()
}

func (r *CategoryRepo) scanOne(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.DispensaryID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

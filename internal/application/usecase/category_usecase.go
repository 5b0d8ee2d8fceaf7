package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Dispensario-api/internal/application/dto"
	"github.com/jhoicas/Dispensario-api/internal/domain"
	"github.com/jhoicas/Dispensario-api/internal/domain/entity"
	"github.com/jhoicas/Dispensario-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD + listado agregado para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. Position se asigna como max(position)+1 dentro
// del dispensario (1 si es la primera). Devuelve ErrDuplicate si ya existe
// una categoría con el mismo (name, dispensary); el índice único de la DB
// respalda este chequeo ante creates concurrentes.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByNameAndDispensary(in.Name, in.Dispensary)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	maxPos, err := uc.repo.MaxPosition(in.Dispensary)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.Category{
		ID:           uuid.New().String(),
		DispensaryID: in.Dispensary,
		Name:         in.Name,
		Position:     maxPos + 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete borra una categoría. El registro debe coincidir en id Y dispensario
// (aislamiento de tenant); si no, ErrNotFound. Devuelve el snapshot previo
// al borrado.
func (uc *CategoryUseCase) Delete(in dto.DeleteCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByIDAndDispensary(in.ID, in.Dispensary)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(existing.ID); err != nil {
		return nil, err
	}
	return toCategoryResponse(existing), nil
}

// Update aplica un merge-update sobre la categoría. ID y Dispensary del
// payload identifican el registro pero nunca se persisten como cambios.
// El registro se busca solo por id (contrato heredado: el dispensario no se
// re-verifica contra el existente). CreatedAt se preserva; solo se
// restampa UpdatedAt.
func (uc *CategoryUseCase) Update(in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Position != nil {
		category.Position = *in.Position
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListWithProducts devuelve las categorías (todas, o las del dispensario
// indicado) junto con los productos que referencian a cada una.
func (uc *CategoryUseCase) ListWithProducts(dispensaryID string) ([]dto.CategoryWithProductsResponse, error) {
	rows, err := uc.repo.ListWithProducts(dispensaryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryWithProductsResponse, 0, len(rows))
	for _, row := range rows {
		products := make([]dto.ProductResponse, 0, len(row.Products))
		for _, p := range row.Products {
			products = append(products, dto.ProductResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Amount:      p.Amount,
				Quantity:    p.Quantity,
				Image:       p.Image,
				Category:    p.CategoryID,
				Dispensary:  p.DispensaryID,
			})
		}
		out = append(out, dto.CategoryWithProductsResponse{
			ID:         row.ID,
			Dispensary: row.DispensaryID,
			Name:       row.Name,
			Products:   products,
		})
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:         c.ID,
		Dispensary: c.DispensaryID,
		Name:       c.Name,
		Position:   c.Position,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

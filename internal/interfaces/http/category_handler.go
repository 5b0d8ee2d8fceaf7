package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Dispensario-api/internal/application/dto"
	"github.com/jhoicas/Dispensario-api/internal/application/usecase"
	"github.com/jhoicas/Dispensario-api/internal/domain"
	"github.com/jhoicas/Dispensario-api/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP para Category.
// Mutaciones protegidas por AuthMiddleware; el listado es público.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, dispensary"
// @Success      200   {object}  dto.Response
// @Failure      406   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /categories/add [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: name | dispensary"))
	}
	if in.Name == "" || in.Dispensary == "" {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: name | dispensary"))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Category already exist"))
		}
		return h.serverError(c, "create category", err)
	}
	return c.JSON(dto.OK(out, "Category successfully created."))
}

// Delete godoc
// @Summary      Borrar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteCategoryRequest  true  "id, dispensary"
// @Success      200   {object}  dto.Response
// @Failure      406   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /categories/delete [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Invalid category/dispensary id"))
	}
	out, err := h.uc.Delete(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Invalid category/dispensary id"))
		}
		return h.serverError(c, "delete category", err)
	}
	return c.JSON(dto.OK(out, "Category deleted successfully"))
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCategoryRequest  true  "id, dispensary, campos a cambiar"
// @Success      200   {object}  dto.Response
// @Failure      406   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /categories/update [patch]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: id | dispensary"))
	}
	if in.ID == "" || in.Dispensary == "" {
		return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Required: id | dispensary"))
	}
	out, err := h.uc.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotAcceptable).JSON(dto.Fail("Invalid Category id"))
		}
		return h.serverError(c, "update category", err)
	}
	return c.JSON(dto.OK(out, "Category successfully updated."))
}

// List godoc
// @Summary      Listar categorías con sus productos
// @Tags         categories
// @Produce      json
// @Param        dispensary  query  string  false  "Filtrar por dispensario"
// @Success      200  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListWithProducts(c.Query("dispensary"))
	if err != nil {
		return h.serverError(c, "list categories", err)
	}
	return c.JSON(dto.OK(out, "Categories and their products successfully fetched."))
}

func (h *CategoryHandler) serverError(c *fiber.Ctx, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Msg("fallo de persistencia")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kmorales/heladeria-api/internal/application/dto"
	"github.com/kmorales/heladeria-api/internal/application/usecase"
	"github.com/kmorales/heladeria-api/internal/domain"
	"github.com/kmorales/heladeria-api/internal/domain/entity"
)

// CatalogHandler maneja categorías y productos de venta.
type CatalogHandler struct {
	categoryUC *usecase.CategoryUseCase
	productUC  *usecase.ProductUseCase
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(categoryUC *usecase.CategoryUseCase, productUC *usecase.ProductUseCase) *CatalogHandler {
	return &CatalogHandler{categoryUC: categoryUC, productUC: productUC}
}

func catalogError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// CreateCategory crea una categoría.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.categoryUC.Create(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// ListCategories lista categorías.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.categoryUC.List(page.Limit, page.Offset)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// GetCategory obtiene una categoría por ID.
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.categoryUC.GetByID(c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(category)
}

// UpdateCategory actualiza una categoría.
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	category, err := h.categoryUC.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(category)
}

// DeleteCategory elimina una categoría.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryUC.Delete(c.Params("id")); err != nil {
		return catalogError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// CreateProduct crea un producto de venta.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.productUC.Create(in)
	if err != nil {
		return catalogError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// ListProducts lista productos. Los clientes solo ven los disponibles.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	onlyAvailable := c.QueryBool("only_available", false)
	if GetRole(c) == entity.RoleCliente {
		onlyAvailable = true
	}
	out, err := h.productUC.List(onlyAvailable, page.Limit, page.Offset)
	if err != nil {
		return catalogError(c, err)
	}
	return c.JSON(out)
}

// GetProduct obtiene un producto por ID.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.productUC.GetByID(c.Params("id"))
	if err != nil {
		return catalogError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(product)
}

// UpdateProduct actualiza un producto.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.productUC.Update(c.Params("id"), in)
	if err != nil {
		return catalogError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(product)
}

// DeleteProduct elimina un producto.
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.productUC.Delete(c.Params("id")); err != nil {
		return catalogError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

package controllers

import (
	"errors"
	"strconv"

	"resto-admin/models"
	"resto-admin/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	menu *services.MenuService
}

func NewCategoryController(menu *services.MenuService) *CategoryController {
	return &CategoryController{menu: menu}
}

// @Summary Get all categories
// @Description Get list of all menu categories ordered by display position
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.menu.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get category by ID
// @Description Get category details
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [get]
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	category, err := ctrl.menu.GetCategory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category retrieved", "data": category})
}

// @Summary Create category
// @Description Create new menu category (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	category, err := ctrl.menu.CreateCategory(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateMenuCache()

	c.JSON(201, gin.H{"success": true, "message": "Category created successfully", "data": category})
}

// @Summary Update category
// @Description Update category name or active flag (Admin)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.UpdateCategoryRequest true "Category data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	category, err := ctrl.menu.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Category updated successfully", "data": category})
}

// @Summary Delete category
// @Description Delete an empty category (Admin). Categories that still
// contain menu items are rejected.
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid category ID"})
		return
	}

	if err := ctrl.menu.DeleteCategory(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Category deleted successfully"})
}

// @Summary Reorder categories
// @Description Move a category from one display position to another (Admin).
// Returns the full list in its resulting order; on a partial store failure
// the previous order is restored and returned with a 500.
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ReorderCategoriesRequest true "Old and new positions"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories/reorder [patch]
func (ctrl *CategoryController) ReorderCategories(c *gin.Context) {
	var req models.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	categories, err := ctrl.menu.ReorderCategories(c.Request.Context(), req.OldIndex, req.NewIndex)
	if err != nil {
		// categories holds the restored order so the caller can resync.
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(400, gin.H{"success": false, "message": vErr.Message, "field": vErr.Field})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Reorder failed, previous order restored", "data": categories, "error": err.Error()})
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Categories reordered", "data": categories})
}

package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"resto-admin/config"
	"resto-admin/libs"
	"resto-admin/models"
	"resto-admin/services"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

func getMenuCacheKey(page, limit int) string {
	return models.CacheKey(fmt.Sprintf("menu_items_p%d_l%d", page, limit))
}

func invalidateMenuCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, models.CacheKey("menu_items_*"), 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all menu items
// @Description Get paginated list of menu items
// @Tags Menu
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /menu [get]
func (ctrl *MenuController) GetAllItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	cacheKey := getMenuCacheKey(page, limit)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	items, err := ctrl.menu.ListItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	total := len(items)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	response := gin.H{
		"success": true, "message": "Menu items retrieved", "data": items[offset:end],
		"meta": gin.H{
			"page": page, "limit": limit, "total_items": total,
			"total_pages": int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Filter menu items
// @Description Filter menu items by category and name search. Results are
// computed fresh on every request.
// @Tags Menu
// @Produce json
// @Param category_id query int false "Filter by category"
// @Param search query string false "Search by item name"
// @Success 200 {object} models.Response
// @Router /menu/filter [get]
func (ctrl *MenuController) FilterItems(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("category_id"))
	search := strings.TrimSpace(c.Query("search"))

	items, err := ctrl.menu.ListItems(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	filtered := services.FilterItems(items, categoryID, search)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Menu items filtered",
		"data":    filtered,
		"total":   len(filtered),
	})
}

// @Summary Get menu item by ID
// @Description Get menu item details
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctrl.menu.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu item retrieved", "data": item})
}

func (ctrl *MenuController) handleImageUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	relPath, err := utils.UploadFile(c, file, "menu-items")
	if err != nil {
		return "", err
	}

	if libs.CloudinaryEnabled() {
		localPath := filepath.Join(config.AppConfig.UploadDir, relPath)
		url, err := libs.UploadToCloudinary(localPath)
		if err == nil {
			return url, nil
		}
	}

	return "/uploads/" + filepath.ToSlash(relPath), nil
}

// @Summary Create menu item
// @Description Create new menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Item name"
// @Param description formData string false "Item description"
// @Param category_id formData int true "Category ID"
// @Param price formData number true "Item price"
// @Param is_available formData bool false "Is available"
// @Param image formData file false "Item image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menu [post]
func (ctrl *MenuController) CreateItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	imageURL, err := ctrl.handleImageUpload(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}
	if imageURL != "" {
		req.ImageURL = imageURL
	}

	item, err := ctrl.menu.CreateItem(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateMenuCache()

	c.JSON(201, gin.H{"success": true, "message": "Menu item created successfully", "data": item})
}

// @Summary Update menu item
// @Description Update menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Menu item ID"
// @Param name formData string false "Item name"
// @Param description formData string false "Item description"
// @Param category_id formData int false "Category ID"
// @Param price formData number false "Item price"
// @Param is_available formData bool false "Is available"
// @Param image formData file false "Item image"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [patch]
func (ctrl *MenuController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	imageURL, err := ctrl.handleImageUpload(c)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}
	if imageURL != "" {
		req.ImageURL = &imageURL
	}

	item, err := ctrl.menu.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Menu item updated successfully", "data": item})
}

// @Summary Delete menu item
// @Description Delete menu item permanently (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id} [delete]
func (ctrl *MenuController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid menu item ID"})
		return
	}

	item, err := ctrl.menu.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := ctrl.menu.DeleteItem(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	removeItemImage(item.ImageURL)
	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Menu item deleted permanently"})
}

func removeItemImage(imageURL string) {
	switch {
	case imageURL == "":
	case strings.HasPrefix(imageURL, "/uploads/"):
		_ = utils.DeleteFile(strings.TrimPrefix(imageURL, "/uploads/"))
	case libs.CloudinaryEnabled():
		if publicID := extractCloudinaryPublicID(imageURL); publicID != "" {
			_ = libs.DeleteFromCloudinary(publicID)
		}
	}
}

// extractCloudinaryPublicID recovers the public ID from a delivery URL:
// .../upload/v123/menu-items/menu_item_1.jpg -> menu-items/menu_item_1
func extractCloudinaryPublicID(url string) string {
	_, after, found := strings.Cut(url, "/upload/")
	if !found {
		return ""
	}
	if rest, ok := strings.CutPrefix(after, "v"); ok {
		if i := strings.Index(rest, "/"); i > 0 {
			if _, err := strconv.Atoi(rest[:i]); err == nil {
				after = rest[i+1:]
			}
		}
	}
	if i := strings.LastIndex(after, "."); i > 0 {
		after = after[:i]
	}
	return after
}

// @Summary Toggle item availability
// @Description Flip a menu item's availability flag (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/menu/{id}/availability [patch]
func (ctrl *MenuController) ToggleAvailability(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctrl.menu.ToggleAvailability(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Availability updated", "data": item})
}

// @Summary Bulk set availability
// @Description Set availability for several menu items at once (Admin). On a
// partial store failure all items are restored to their previous state.
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.BulkAvailabilityRequest true "Item IDs and target availability"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/menu/availability [patch]
func (ctrl *MenuController) BulkSetAvailability(c *gin.Context) {
	var req models.BulkAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	if err := ctrl.menu.BulkSetAvailability(c.Request.Context(), req.ItemIDs, req.IsAvailable); err != nil {
		writeError(c, err)
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Availability updated"})
}

package controllers

import (
	"strconv"

	"resto-admin/models"
	"resto-admin/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{tables: tables}
}

// @Summary Get all tables
// @Description Get the full floor plan ordered by table number
// @Tags Tables
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /tables [get]
func (ctrl *TableController) GetAllTables(c *gin.Context) {
	tables, err := ctrl.tables.ListTables(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Tables retrieved", "data": tables})
}

// @Summary Get table by ID
// @Description Get table details
// @Tags Tables
// @Security BearerAuth
// @Produce json
// @Param id path int true "Table ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tables/{id} [get]
func (ctrl *TableController) GetTableByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	table, err := ctrl.tables.GetTable(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table retrieved", "data": table})
}

// @Summary Create table
// @Description Add a table to the floor plan. Table numbers are assigned
// sequentially.
// @Tags Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateTableRequest true "Table data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /tables [post]
func (ctrl *TableController) CreateTable(c *gin.Context) {
	var req models.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	table, err := ctrl.tables.CreateTable(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Table created successfully", "data": table})
}

// @Summary Update table
// @Description Update a table's seats, shape, or server
// @Tags Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Param request body models.UpdateTableRequest true "Table data"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tables/{id} [patch]
func (ctrl *TableController) UpdateTable(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	table, err := ctrl.tables.UpdateTable(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table updated successfully", "data": table})
}

// @Summary Move table
// @Description Apply a floor-plan drag displacement to a table. The new
// position is persisted before the response is written; the horizontal
// position never goes below zero.
// @Tags Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Param request body models.MoveTableRequest true "Drag displacement"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tables/{id}/move [patch]
func (ctrl *TableController) MoveTable(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.MoveTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	table, err := ctrl.tables.MoveTable(c.Request.Context(), id, req.DX, req.DY)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table moved", "data": table})
}

// @Summary Update table status
// @Description Set a table's status from the floor-plan context menu
// @Tags Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Param request body models.TableStatusRequest true "Target status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tables/{id}/status [patch]
func (ctrl *TableController) UpdateTableStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.TableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	table, err := ctrl.tables.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table status updated", "data": table})
}

// @Summary Assign server
// @Description Assign a server to a table, or clear the assignment
// @Tags Tables
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Table ID"
// @Param request body models.AssignServerRequest true "Server name, or null to clear"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tables/{id}/server [patch]
func (ctrl *TableController) AssignServer(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.AssignServerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request data", "error": err.Error()})
		return
	}

	table, err := ctrl.tables.AssignServer(c.Request.Context(), id, req.Server)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Server assigned", "data": table})
}

// @Summary Delete table
// @Description Remove a table from the floor plan
// @Tags Tables
// @Security BearerAuth
// @Produce json
// @Param id path int true "Table ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tables/{id} [delete]
func (ctrl *TableController) DeleteTable(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid table ID"})
		return
	}

	if err := ctrl.tables.DeleteTable(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table deleted successfully"})
}

// @Summary Get table statistics
// @Description Get table counts per status, recomputed on every request
// @Tags Tables
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /tables/stats [get]
func (ctrl *TableController) GetStats(c *gin.Context) {
	stats, err := ctrl.tables.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Table stats retrieved", "data": stats})
}

// @Summary Get floor plan templates
// @Description Get the built-in floor plan templates
// @Tags Tables
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /tables/templates [get]
func (ctrl *TableController) GetTemplates(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Templates retrieved", "data": ctrl.tables.FloorPlanTemplates()})
}

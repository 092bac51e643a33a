package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
)

type supplyInput struct {
	Name        string     `json:"nombre" binding:"required"`
	Category    string     `json:"categoria" binding:"required"`
	Description string     `json:"descripcion"`
	CurrentQty  float64    `json:"cantidadActual"`
	MinimumQty  float64    `json:"cantidadMinima"`
	Unit        string     `json:"unidad" binding:"required"`
	UnitPrice   *float64   `json:"precioUnitario"`
	Location    string     `json:"ubicacion"`
	ExpiresAt   *time.Time `json:"fechaCaducidad"`
	Lot         string     `json:"lote"`
	Supplier    string     `json:"proveedor"`
	Notes       string     `json:"notas"`
}

// supplyView adds the derived stock status to the API payload.
func supplyView(s models.Supply) gin.H {
	return gin.H{
		"insumo":      s,
		"estadoStock": s.StockStatus(),
	}
}

func ListSupplies(c *gin.Context) {
	uid := c.GetUint("userID")

	var supplies []models.Supply
	if err := config.DB.Where("user_id = ?", uid).Find(&supplies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]gin.H, 0, len(supplies))
	for _, s := range supplies {
		views = append(views, supplyView(s))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

func CreateSupply(c *gin.Context) {
	uid := c.GetUint("userID")

	var input supplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supply := models.Supply{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		CurrentQty:  input.CurrentQty,
		MinimumQty:  input.MinimumQty,
		Unit:        input.Unit,
		UnitPrice:   input.UnitPrice,
		Location:    input.Location,
		ExpiresAt:   input.ExpiresAt,
		Lot:         input.Lot,
		Supplier:    input.Supplier,
		Notes:       input.Notes,
		UserID:      uid,
	}
	if err := config.DB.Create(&supply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": supplyView(supply), "message": "Insumo creado exitosamente"})
}

func UpdateSupply(c *gin.Context) {
	uid := c.GetUint("userID")

	var supply models.Supply
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&supply).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Insumo no encontrado"})
		return
	}

	var input supplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supply.Name = input.Name
	supply.Category = input.Category
	supply.Description = input.Description
	supply.CurrentQty = input.CurrentQty
	supply.MinimumQty = input.MinimumQty
	supply.Unit = input.Unit
	supply.UnitPrice = input.UnitPrice
	supply.Location = input.Location
	supply.ExpiresAt = input.ExpiresAt
	supply.Lot = input.Lot
	supply.Supplier = input.Supplier
	supply.Notes = input.Notes

	if err := config.DB.Save(&supply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": supplyView(supply), "message": "Insumo actualizado exitosamente"})
}

func DeleteSupply(c *gin.Context) {
	uid := c.GetUint("userID")

	res := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Supply{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Insumo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Insumo eliminado exitosamente"})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
)

type productionInput struct {
	Date         time.Time `json:"fecha"`
	ProductType  string    `json:"tipoProducto" binding:"required"`
	Quantity     float64   `json:"cantidad" binding:"required"`
	Unit         string    `json:"unidad" binding:"required"`
	Quality      string    `json:"calidad"`
	Lot          string    `json:"lote"`
	Destination  string    `json:"destino"`
	Observations string    `json:"observaciones"`
	HiveID       uint      `json:"colmenaId"`
	ApiaryID     uint      `json:"apiarioId"`
}

func ListProduction(c *gin.Context) {
	uid := c.GetUint("userID")

	var batches []models.ProductionBatch
	if err := config.DB.Where("user_id = ?", uid).Order("date DESC").Find(&batches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": batches})
}

func CreateProduction(c *gin.Context) {
	uid := c.GetUint("userID")

	var input productionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidProductType(input.ProductType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de producto inválido"})
		return
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	batch := models.ProductionBatch{
		Date:         date,
		ProductType:  input.ProductType,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		Quality:      input.Quality,
		Lot:          input.Lot,
		Destination:  input.Destination,
		Observations: input.Observations,
		HiveID:       input.HiveID,
		ApiaryID:     input.ApiaryID,
		UserID:       uid,
	}
	if err := config.DB.Create(&batch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": batch, "message": "Producción registrada exitosamente"})
}

func UpdateProduction(c *gin.Context) {
	uid := c.GetUint("userID")

	var batch models.ProductionBatch
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&batch).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro de producción no encontrado"})
		return
	}

	var input productionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidProductType(input.ProductType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de producto inválido"})
		return
	}

	if !input.Date.IsZero() {
		batch.Date = input.Date
	}
	batch.ProductType = input.ProductType
	batch.Quantity = input.Quantity
	batch.Unit = input.Unit
	batch.Quality = input.Quality
	batch.Lot = input.Lot
	batch.Destination = input.Destination
	batch.Observations = input.Observations

	if err := config.DB.Save(&batch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": batch, "message": "Producción actualizada exitosamente"})
}

func DeleteProduction(c *gin.Context) {
	uid := c.GetUint("userID")

	res := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.ProductionBatch{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registro de producción no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Producción eliminada exitosamente"})
}

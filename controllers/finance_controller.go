package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
)

type financeInput struct {
	Date        time.Time `json:"fecha" binding:"required"`
	Type        string    `json:"tipo" binding:"required"`
	Category    string    `json:"categoria" binding:"required"`
	Description string    `json:"descripcion"`
	Amount      float64   `json:"monto" binding:"required"`
	Receipt     string    `json:"comprobante"`
}

func validFinanceType(t string) bool {
	return t == models.FinanceIncome || t == models.FinanceExpense
}

func ListFinances(c *gin.Context) {
	uid := c.GetUint("userID")

	query := config.DB.Where("user_id = ?", uid)
	if t := c.Query("tipo"); t != "" {
		query = query.Where("type = ?", t)
	}

	var records []models.FinanceRecord
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var income, expense float64
	for _, r := range records {
		if r.Type == models.FinanceIncome {
			income += r.Amount
		} else {
			expense += r.Amount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    records,
		"resumen": gin.H{
			"ingresos": income,
			"egresos":  expense,
			"balance":  income - expense,
		},
	})
}

func CreateFinance(c *gin.Context) {
	uid := c.GetUint("userID")

	var input financeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validFinanceType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de movimiento inválido"})
		return
	}

	record := models.FinanceRecord{
		Date:        input.Date,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		Receipt:     input.Receipt,
		UserID:      uid,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": record, "message": "Movimiento registrado exitosamente"})
}

func UpdateFinance(c *gin.Context) {
	uid := c.GetUint("userID")

	var record models.FinanceRecord
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movimiento no encontrado"})
		return
	}

	var input financeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validFinanceType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de movimiento inválido"})
		return
	}

	record.Date = input.Date
	record.Type = input.Type
	record.Category = input.Category
	record.Description = input.Description
	record.Amount = input.Amount
	record.Receipt = input.Receipt

	if err := config.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record, "message": "Movimiento actualizado exitosamente"})
}

func DeleteFinance(c *gin.Context) {
	uid := c.GetUint("userID")

	res := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.FinanceRecord{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movimiento no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Movimiento eliminado exitosamente"})
}

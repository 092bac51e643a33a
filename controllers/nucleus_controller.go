package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
	"github.com/johpaz/apiGestion-api/services"
)

type NucleusController struct {
	Alerts *services.AlertService
	Logger *zap.Logger
}

func NewNucleusController(alerts *services.AlertService, logger *zap.Logger) *NucleusController {
	return &NucleusController{Alerts: alerts, Logger: logger}
}

type nucleusInput struct {
	Number      int       `json:"numero" binding:"required"`
	Type        string    `json:"tipo"`
	Status      string    `json:"estado"`
	InstalledAt time.Time `json:"fechaInstalacion"`
	HiveID      uint      `json:"colmenaId" binding:"required"`
}

func (n *NucleusController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	var nuclei []models.Nucleus
	if err := config.DB.Where("user_id = ?", uid).Find(&nuclei).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": nuclei})
}

func (n *NucleusController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	var nucleus models.Nucleus
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&nucleus).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Núcleo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": nucleus})
}

func (n *NucleusController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input nucleusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.NucleusStatusNew
	}

	nucleus := models.Nucleus{
		Number:                 input.Number,
		Type:                   input.Type,
		Status:                 status,
		InstalledAt:            input.InstalledAt,
		HiveID:                 input.HiveID,
		UserID:                 uid,
		RecurringAlertsEnabled: true,
	}

	if err := config.DB.Create(&nucleus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	name := fmt.Sprintf("Núcleo %d", nucleus.Number)
	if _, err := n.Alerts.SeedRecurrenceForEntity(c.Request.Context(), models.EntityNucleus, nucleus.ID, name, uid); err != nil {
		n.Logger.Error("Failed to seed recurring alerts for nucleus",
			zap.Uint("nucleo_id", nucleus.ID), zap.Error(err))
	}

	if err := services.RecordActivity(uid, "nucleo", "Núcleo creado",
		"Se ha registrado el "+name, models.EntityNucleus, nucleus.ID, name, "success"); err != nil {
		n.Logger.Warn("Failed to record nucleus activity", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": nucleus, "message": "Núcleo creado exitosamente"})
}

func (n *NucleusController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var nucleus models.Nucleus
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&nucleus).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Núcleo no encontrado"})
		return
	}

	var input nucleusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nucleus.Number = input.Number
	nucleus.Type = input.Type
	if input.Status != "" {
		nucleus.Status = input.Status
	}
	if !input.InstalledAt.IsZero() {
		nucleus.InstalledAt = input.InstalledAt
	}
	if input.HiveID != 0 {
		nucleus.HiveID = input.HiveID
	}

	if err := config.DB.Save(&nucleus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": nucleus, "message": "Núcleo actualizado exitosamente"})
}

func (n *NucleusController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	res := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Nucleus{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Núcleo no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Núcleo eliminado exitosamente"})
}

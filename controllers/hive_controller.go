package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
	"github.com/johpaz/apiGestion-api/services"
)

type HiveController struct {
	Alerts *services.AlertService
	Logger *zap.Logger
}

func NewHiveController(alerts *services.AlertService, logger *zap.Logger) *HiveController {
	return &HiveController{Alerts: alerts, Logger: logger}
}

type hiveInput struct {
	Name        string     `json:"nombre" binding:"required"`
	Status      string     `json:"estado"`
	InstalledAt time.Time  `json:"fechaInstalacion"`
	Frames      *int       `json:"cuadros"`
	HasQueen    *bool      `json:"reyna"`
	QueenType   string     `json:"tipoReyna"`
	QueenDate   *time.Time `json:"fechaReyna"`
	ApiaryID    uint       `json:"apiarioId" binding:"required"`

	RecurringAlertsEnabled *bool `json:"alertasRecurrentesActivadas"`
}

func (h *HiveController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	var hives []models.Hive
	if err := config.DB.Where("user_id = ?", uid).Find(&hives).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": hives})
}

func (h *HiveController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	var hive models.Hive
	if err := config.DB.Preload("Apiary").Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&hive).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colmena no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": hive})
}

func (h *HiveController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input hiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.HiveStatusActive
	}

	hive := models.Hive{
		Name:                   input.Name,
		Status:                 status,
		InstalledAt:            input.InstalledAt,
		Frames:                 input.Frames,
		HasQueen:               input.HasQueen,
		QueenType:              input.QueenType,
		QueenDate:              input.QueenDate,
		UserID:                 uid,
		ApiaryID:               input.ApiaryID,
		RecurringAlertsEnabled: true,
	}
	if input.RecurringAlertsEnabled != nil {
		hive.RecurringAlertsEnabled = *input.RecurringAlertsEnabled
	}

	if err := config.DB.Create(&hive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Seed the routine-check schedule; never fail the creation over it.
	if _, err := h.Alerts.SeedRecurrenceForEntity(c.Request.Context(), models.EntityHive, hive.ID, hive.Name, uid); err != nil {
		h.Logger.Error("Failed to seed recurring alerts for hive",
			zap.Uint("colmena_id", hive.ID), zap.Error(err))
	}

	if err := services.RecordActivity(uid, "colmena", "Colmena creada",
		"Se ha registrado la colmena "+hive.Name, models.EntityHive, hive.ID, hive.Name, "success"); err != nil {
		h.Logger.Warn("Failed to record hive activity", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": hive, "message": "Colmena creada exitosamente"})
}

func (h *HiveController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var hive models.Hive
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&hive).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colmena no encontrada"})
		return
	}

	var input hiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hive.Name = input.Name
	if input.Status != "" {
		hive.Status = input.Status
	}
	if !input.InstalledAt.IsZero() {
		hive.InstalledAt = input.InstalledAt
	}
	hive.Frames = input.Frames
	hive.HasQueen = input.HasQueen
	hive.QueenType = input.QueenType
	hive.QueenDate = input.QueenDate
	if input.ApiaryID != 0 {
		hive.ApiaryID = input.ApiaryID
	}
	if input.RecurringAlertsEnabled != nil {
		hive.RecurringAlertsEnabled = *input.RecurringAlertsEnabled
	}

	if err := config.DB.Save(&hive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": hive, "message": "Colmena actualizada exitosamente"})
}

func (h *HiveController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	res := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Hive{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colmena no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Colmena eliminada exitosamente"})
}

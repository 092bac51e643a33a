package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
	"github.com/johpaz/apiGestion-api/services"
)

type SwarmController struct {
	Alerts *services.AlertService
	Logger *zap.Logger
}

func NewSwarmController(alerts *services.AlertService, logger *zap.Logger) *SwarmController {
	return &SwarmController{Alerts: alerts, Logger: logger}
}

type swarmInput struct {
	Name   string `json:"nombre" binding:"required"`
	Status string `json:"estado"`
	Notes  string `json:"notas"`
	HiveID uint   `json:"colmenaId" binding:"required"`

	RecurringAlertsEnabled *bool `json:"alertasRecurrentesActivadas"`
}

func (s *SwarmController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	var swarms []models.Swarm
	if err := config.DB.Where("user_id = ?", uid).Find(&swarms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": swarms})
}

func (s *SwarmController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	var swarm models.Swarm
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&swarm).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enjambre no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": swarm})
}

func (s *SwarmController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input swarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = models.SwarmStatusActive
	}

	swarm := models.Swarm{
		Name:                   input.Name,
		Status:                 status,
		Notes:                  input.Notes,
		HiveID:                 input.HiveID,
		UserID:                 uid,
		RecurringAlertsEnabled: true,
	}
	if input.RecurringAlertsEnabled != nil {
		swarm.RecurringAlertsEnabled = *input.RecurringAlertsEnabled
	}

	if err := config.DB.Create(&swarm).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := s.Alerts.SeedRecurrenceForEntity(c.Request.Context(), models.EntitySwarm, swarm.ID, swarm.Name, uid); err != nil {
		s.Logger.Error("Failed to seed recurring alerts for swarm",
			zap.Uint("enjambre_id", swarm.ID), zap.Error(err))
	}

	if err := services.RecordActivity(uid, "enjambre", "Enjambre creado",
		"Se ha registrado el enjambre "+swarm.Name, models.EntitySwarm, swarm.ID, swarm.Name, "success"); err != nil {
		s.Logger.Warn("Failed to record swarm activity", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": swarm, "message": "Enjambre creado exitosamente"})
}

func (s *SwarmController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var swarm models.Swarm
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&swarm).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enjambre no encontrado"})
		return
	}

	var input swarmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	swarm.Name = input.Name
	if input.Status != "" {
		swarm.Status = input.Status
	}
	swarm.Notes = input.Notes
	if input.HiveID != 0 {
		swarm.HiveID = input.HiveID
	}
	if input.RecurringAlertsEnabled != nil {
		swarm.RecurringAlertsEnabled = *input.RecurringAlertsEnabled
	}

	if err := config.DB.Save(&swarm).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": swarm, "message": "Enjambre actualizado exitosamente"})
}

func (s *SwarmController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	res := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Swarm{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Enjambre no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Enjambre eliminado exitosamente"})
}

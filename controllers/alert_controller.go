package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/johpaz/apiGestion-api/models"
	"github.com/johpaz/apiGestion-api/services"
)

type AlertController struct {
	Alerts    *services.AlertService
	Scheduler *services.SchedulerService
}

func NewAlertController(alerts *services.AlertService, scheduler *services.SchedulerService) *AlertController {
	return &AlertController{Alerts: alerts, Scheduler: scheduler}
}

// GET /alertas
func (a *AlertController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	alerts, err := a.Alerts.ListAlerts(c.Request.Context(), uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": alerts, "message": "Alertas obtenidas exitosamente"})
}

// POST /alertas
func (a *AlertController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.CreateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de entrada inválidos"})
		return
	}
	if !models.ValidAlertKind(input.Kind) || !models.ValidAlertPriority(input.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de entrada inválidos"})
		return
	}
	input.UserID = uid

	alert, err := a.Alerts.CreateAlert(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": alert, "message": "Alerta creada exitosamente"})
}

// PUT /alertas/:id/leida
func (a *AlertController) MarkAsRead(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	if err := a.Alerts.MarkAsRead(c.Request.Context(), uint(id), uid); err != nil {
		if errors.Is(err, services.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alerta no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Alerta marcada como leída exitosamente"})
}

// POST /alertas/generar — administrative force-sweep.
func (a *AlertController) ForceSweep(c *gin.Context) {
	count, err := a.Scheduler.ForceSweep(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"generadas": count, "schedulerActivo": a.Scheduler.IsActive()},
		"message": "Procesamiento de alertas ejecutado",
	})
}

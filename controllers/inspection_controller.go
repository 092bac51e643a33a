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

type InspectionController struct {
	Alerts *services.AlertService
	Logger *zap.Logger
}

func NewInspectionController(alerts *services.AlertService, logger *zap.Logger) *InspectionController {
	return &InspectionController{Alerts: alerts, Logger: logger}
}

type inspectionInput struct {
	Date           time.Time `json:"fecha"`
	HiveID         uint      `json:"colmenaId" binding:"required"`
	SanitaryStatus string    `json:"estadoSanidad"`
	Treatments     string    `json:"tratamientos"`
	Population     string    `json:"poblacion"`
	Production     string    `json:"produccion"`
	Observations   string    `json:"observaciones"`
}

func (i *InspectionController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	var inspections []models.Inspection
	if err := config.DB.Preload("Hive").Where("user_id = ?", uid).Order("date DESC").Find(&inspections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": inspections})
}

func (i *InspectionController) Get(c *gin.Context) {
	uid := c.GetUint("userID")

	var inspection models.Inspection
	if err := config.DB.Preload("Hive").Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&inspection).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspección no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": inspection})
}

func (i *InspectionController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input inspectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var hive models.Hive
	if err := config.DB.Where("id = ? AND user_id = ?", input.HiveID, uid).First(&hive).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colmena no encontrada"})
		return
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	inspection := models.Inspection{
		Date:           date,
		SanitaryStatus: input.SanitaryStatus,
		Treatments:     input.Treatments,
		Population:     input.Population,
		Production:     input.Production,
		Observations:   input.Observations,
		HiveID:         hive.ID,
		UserID:         uid,
	}
	if err := config.DB.Create(&inspection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Situational alerts derived from the findings; best-effort.
	derived := i.Alerts.DeriveInspectionAlerts(c.Request.Context(), &inspection, hive.Name, uid)
	if len(derived) > 0 {
		i.Logger.Info("Inspection generated alerts",
			zap.Uint("inspeccion_id", inspection.ID),
			zap.Int("alertas", len(derived)))
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"inspeccion": inspection, "alertas": derived},
		"message": "Inspección creada exitosamente",
	})
}

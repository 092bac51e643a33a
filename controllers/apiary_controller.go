package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/johpaz/apiGestion-api/config"
	"github.com/johpaz/apiGestion-api/models"
	"github.com/johpaz/apiGestion-api/utils"
)

type apiaryInput struct {
	Name       string `json:"nombre" binding:"required"`
	City       string `json:"ciudad"`
	Country    string `json:"pais"`
	Address    string `json:"direccion"`
	Directions string `json:"comoLlegar"`
	// Either a data-URI image to upload or an already hosted URL.
	Image string `json:"imagenApiario"`
}

func ListApiaries(c *gin.Context) {
	uid := c.GetUint("userID")

	var apiaries []models.Apiary
	if err := config.DB.Where("user_id = ?", uid).Find(&apiaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": apiaries})
}

func GetApiary(c *gin.Context) {
	uid := c.GetUint("userID")

	var apiary models.Apiary
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&apiary).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Apiario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": apiary})
}

func CreateApiary(c *gin.Context) {
	uid := c.GetUint("userID")

	var input apiaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apiary := models.Apiary{
		Name:       input.Name,
		City:       input.City,
		Country:    input.Country,
		Address:    input.Address,
		Directions: input.Directions,
		UserID:     uid,
	}
	if url, ok := resolveApiaryImage(input.Image); ok {
		apiary.ImageURL = url
	}

	if err := config.DB.Create(&apiary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": apiary, "message": "Apiario creado exitosamente"})
}

func UpdateApiary(c *gin.Context) {
	uid := c.GetUint("userID")

	var apiary models.Apiary
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&apiary).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Apiario no encontrado"})
		return
	}

	var input apiaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apiary.Name = input.Name
	apiary.City = input.City
	apiary.Country = input.Country
	apiary.Address = input.Address
	apiary.Directions = input.Directions
	if url, ok := resolveApiaryImage(input.Image); ok {
		apiary.ImageURL = url
	}

	if err := config.DB.Save(&apiary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": apiary, "message": "Apiario actualizado exitosamente"})
}

func DeleteApiary(c *gin.Context) {
	uid := c.GetUint("userID")

	res := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Apiary{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Apiario no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Apiario eliminado exitosamente"})
}

// resolveApiaryImage uploads data-URI payloads to S3 and passes plain URLs
// through unchanged. Upload failures drop the image rather than failing the
// request.
func resolveApiaryImage(image string) (string, bool) {
	if image == "" {
		return "", false
	}
	if !strings.HasPrefix(image, "data:") {
		return image, true
	}
	url, err := utils.UploadBase64ImageToS3(image, "apiario")
	if err != nil {
		return "", false
	}
	return url, true
}

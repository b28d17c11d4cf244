package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"oksimin/internal/services"
	"oksimin/pkg/utils"
)

// VectorController exposes the similarity-search experiment endpoints.
type VectorController struct {
	vectorService services.VectorServiceInterface
}

func NewVectorController(vectorService services.VectorServiceInterface) *VectorController {
	return &VectorController{vectorService: vectorService}
}

func (ctl *VectorController) FindSimilarPlaces(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	topK := 5
	if raw := c.Query("topK"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			utils.RespondError(c, http.StatusBadRequest, "topK must be between 1 and 100")
			return
		}
		topK = parsed
	}

	results, err := ctl.vectorService.FindSimilar(id, topK, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, results, "Similar places fetched successfully")
}

func (ctl *VectorController) GetStatistics(c *gin.Context) {
	stats, err := ctl.vectorService.Statistics(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Embedding statistics fetched successfully")
}

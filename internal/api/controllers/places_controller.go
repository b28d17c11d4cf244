package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oksimin/internal/services"
	"oksimin/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{placeService: placeService}
}

func (ctl *PlacesController) ListPlaces(c *gin.Context) {
	places, err := ctl.placeService.ListApproved(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (ctl *PlacesController) GetPlaceByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	place, err := ctl.placeService.GetByID(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place fetched successfully")
}

func (ctl *PlacesController) ListPlacesByMunicipality(c *gin.Context) {
	municipality := c.Param("name")
	if municipality == "" {
		utils.RespondError(c, http.StatusBadRequest, "Municipality name is required")
		return
	}

	places, err := ctl.placeService.ListByMunicipality(municipality, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (ctl *PlacesController) ListPlacesByCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	places, err := ctl.placeService.ListByCategory(id, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (ctl *PlacesController) SearchPlaces(c *gin.Context) {
	term := c.Query("q")

	places, err := ctl.placeService.Search(term, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Search completed successfully")
}

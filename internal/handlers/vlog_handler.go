package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"roadtrip/internal/models"
	"roadtrip/internal/services"
	"roadtrip/internal/utils"

	"github.com/gin-gonic/gin"
)

// DefaultPromptTemplate is used when the client names no template.
const DefaultPromptTemplate = "Scenic Explorer"

type VlogHandler struct {
	vlogService *services.VlogService
}

func NewVlogHandler(vlogService *services.VlogService) *VlogHandler {
	return &VlogHandler{vlogService: vlogService}
}

// Prompts returns the filming prompt list for a template.
func (h *VlogHandler) Prompts(c *gin.Context) {
	template := c.Query("template")
	if template == "" {
		template = DefaultPromptTemplate
	}

	utils.SuccessResponse(c, "", models.PromptsResponse{
		Template: template,
		Prompts:  h.vlogService.Prompts(template),
	})
}

// Upload stores one image for a trip day.
func (h *VlogHandler) Upload(c *gin.Context) {
	tripID, err := tripIDParam(c, "trip_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	day, _ := strconv.Atoi(c.PostForm("day"))
	if day < 1 {
		day = 1
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "file required")
		return
	}

	resp, err := h.vlogService.UploadImage(c.Request.Context(), tripID, userID, day, header)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Image uploaded", gin.H{"key": resp.Key})
}

// RenderDaily assembles one day's recap video.
func (h *VlogHandler) RenderDaily(c *gin.Context) {
	tripID, err := tripIDParam(c, "trip_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request models.RenderRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.vlogService.RenderDaily(c.Request.Context(), tripID, userID, request.Day, request.SecondsPerImage)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Video rendered", resp)
}

// RenderFinal assembles the full-trip recap video.
func (h *VlogHandler) RenderFinal(c *gin.Context) {
	tripID, err := tripIDParam(c, "trip_id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request models.RenderRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.vlogService.RenderFinal(c.Request.Context(), tripID, userID, request.SecondsPerImage)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Video rendered", resp)
}

// ServeVideo streams a rendered video by trip id and filename.
func (h *VlogHandler) ServeVideo(c *gin.Context) {
	resp, err := h.vlogService.ServeVideo(c.Request.Context(), c.Param("trip_id"), c.Param("filename"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	defer resp.Reader.Close()

	c.Header("Content-Type", resp.ContentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, resp.Reader)
}

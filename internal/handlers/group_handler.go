package handlers

import (
	"roadtrip/internal/models"
	"roadtrip/internal/services"
	"roadtrip/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GroupHandler struct {
	groupService *services.GroupService
}

func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request models.CreateGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), userID, &request)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Group created", group)
}

func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"groups": groups})
}

func (h *GroupHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	groupID, err := groupIDParam(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var request models.CreatePostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	post, err := h.groupService.CreatePost(c.Request.Context(), userID, groupID, &request)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Post created", post)
}

func (h *GroupHandler) ListPosts(c *gin.Context) {
	groupID, err := groupIDParam(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	posts, err := h.groupService.ListPosts(c.Request.Context(), groupID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SuccessResponse(c, "", gin.H{"posts": posts})
}

func groupIDParam(c *gin.Context) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param("group_id"))
	if err != nil {
		return primitive.NilObjectID, &utils.NotFoundError{Resource: "group"}
	}
	return id, nil
}

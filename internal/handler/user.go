package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/config"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/service"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler exposes the authenticated user's profile.
type UserHandler struct {
	Users  *service.UserService
	Upload config.UploadConfig
}

func NewUserHandler(users *service.UserService, upload config.UploadConfig) *UserHandler {
	return &UserHandler{Users: users, Upload: upload}
}

type updateProfileReq struct {
	Name string `json:"name" binding:"required,max=64"`
}

type updatePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,max=72"`
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"user": userJSON(user),
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	updated, err := h.Users.UpdateProfile(user.Email, req.Name)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": userJSON(updated),
	})
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updatePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if err := h.Users.UpdatePassword(user.Email, req.CurrentPassword, req.NewPassword); err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "password updated, please log in again",
	})
}

// UploadAvatar accepts a multipart image (<= configured size), stores it
// under the upload dir and records its public URL on the user.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "file is required")
		return
	}

	maxSize := int64(h.Upload.MaxSizeMB) << 20
	if maxSize > 0 && file.Size > maxSize {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam,
			fmt.Sprintf("image must be at most %dMB", h.Upload.MaxSizeMB))
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "file must be an image")
		return
	}

	if err := os.MkdirAll(h.Upload.Dir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to store image")
		return
	}

	fileName := uuid.NewString() + "_" + filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.Upload.Dir, fileName)); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to store image")
		return
	}

	avatarURL := strings.TrimSuffix(h.Upload.BaseURL, "/") + "/" + fileName
	updated, err := h.Users.UpdateAvatar(user.Email, avatarURL)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": userJSON(updated),
	})
}

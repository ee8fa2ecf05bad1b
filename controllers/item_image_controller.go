package controllers

import (
	"fmt"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-gonic/gin"
)

// publicImageURL builds the absolute URL an uploaded file is served under.
// Returned references are stored in the comma-delimited image field, so they
// must never contain the delimiter; uuid file names guarantee that.
func publicImageURL(cfg *config.Config, filename string) string {
	return fmt.Sprintf("%s/uploads/items/%s", cfg.BaseURL, filename)
}

// UploadItemImage handles a single image upload. Response shape is part of
// the wire contract: { success, imageUrl, fileName }.
func UploadItemImage(c *gin.Context) {
	utils.LogInfo("UploadItemImage called")

	file, err := c.FormFile("image")
	if err != nil {
		utils.LogError("No image file in request: %v", err)
		utils.BadRequest(c, "No image uploaded", "Provide an image file in the 'image' field")
		return
	}

	if err := utils.ValidateImageFile(file); err != nil {
		utils.LogError("Invalid image file: %v", err)
		utils.ValidationError(c, "Invalid image file", err.Error())
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load configuration", err)
		return
	}

	filename, err := utils.SaveUploadedFile(file, cfg.UploadDir)
	if err != nil {
		utils.InternalServerError(c, "Failed to save uploaded file", err)
		return
	}

	utils.LogInfo("Uploaded image %s as %s", file.Filename, filename)
	c.JSON(200, gin.H{
		"success":  true,
		"imageUrl": publicImageURL(cfg, filename),
		"fileName": file.Filename,
	})
}

// UploadItemImages handles a batch image upload of up to ten files. The
// whole batch is rejected before any write when it is oversized; a file
// failing validation mid-batch aborts the remainder but files already
// written stay (no rollback).
func UploadItemImages(c *gin.Context) {
	utils.LogInfo("UploadItemImages called")

	form, err := c.MultipartForm()
	if err != nil {
		utils.LogError("Failed to parse form: %v", err)
		utils.BadRequest(c, "Invalid form data", "Provide image files in the 'images' field")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.LogError("No images uploaded")
		utils.BadRequest(c, "No images uploaded", "Select at least one image to upload")
		return
	}
	if len(files) > utils.MaxImagesPerUpload {
		utils.LogError("Too many images uploaded: %d", len(files))
		utils.ValidationError(c, "Too many images", fmt.Sprintf("Maximum %d images allowed per upload", utils.MaxImagesPerUpload))
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load configuration", err)
		return
	}

	imageURLs := []string{}
	for _, file := range files {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.LogError("Invalid file in batch: %v", err)
			utils.ValidationError(c, "Invalid image file", gin.H{
				"file":     file.Filename,
				"error":    err.Error(),
				"uploaded": imageURLs,
			})
			return
		}

		filename, err := utils.SaveUploadedFile(file, cfg.UploadDir)
		if err != nil {
			utils.InternalServerError(c, "Failed to save uploaded file", err)
			return
		}
		imageURLs = append(imageURLs, publicImageURL(cfg, filename))
	}

	utils.LogInfo("Uploaded %d images", len(imageURLs))
	c.JSON(200, gin.H{
		"success":   true,
		"imageUrls": imageURLs,
		"count":     len(imageURLs),
	})
}

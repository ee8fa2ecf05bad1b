package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/models"
	"github.com/stuffkeeper/stuffkeeper/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// draftStore holds the per-session item edit drafts. Drafts never touch the
// database until commit, so abandoning one costs nothing.
var draftStore = models.NewDraftStore()

const draftSessionKey = "draft_session"

// editSessionID returns the stable id that scopes this client's drafts,
// minting one into the session on first use.
func editSessionID(c *gin.Context) string {
	session := sessions.Default(c)
	if v, ok := session.Get(draftSessionKey).(string); ok && v != "" {
		return v
	}

	id := uuid.New().String()
	session.Set(draftSessionKey, id)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session: %v", err)
	}
	return id
}

// sessionDraftForItem fetches the session's draft and checks it belongs to
// the item in the request path.
func sessionDraftForItem(c *gin.Context, itemID uint64) (*models.ItemDraft, bool) {
	draft, ok := draftStore.Get(editSessionID(c))
	if !ok || draft.ItemID != uint(itemID) {
		utils.NotFound(c, "No edit in progress for this item")
		return nil, false
	}
	return draft, true
}

// StartItemEdit snapshots an item into a session draft. A session holds at
// most one draft, so editing a second item implicitly cancels the first.
func StartItemEdit(c *gin.Context) {
	utils.LogInfo("StartItemEdit called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid item ID format: %v", err)
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	var item models.Item
	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("Item not found: %v", err)
		utils.NotFound(c, "Item not found")
		return
	}

	draft := draftStore.Start(editSessionID(c), &item)
	utils.LogDebug("Started edit draft for item %d", item.ID)
	utils.Success(c, "Edit started", gin.H{"draft": draft})
}

// GetItemEdit returns the session's current draft for an item.
func GetItemEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	draft, ok := sessionDraftForItem(c, id)
	if !ok {
		return
	}
	utils.Success(c, "Draft retrieved successfully", gin.H{"draft": draft})
}

// AddItemEditImages uploads files and appends their references to the
// draft's image list. The upload is skipped entirely when the list cannot
// take the new files.
func AddItemEditImages(c *gin.Context) {
	utils.LogInfo("AddItemEditImages called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	draft, ok := sessionDraftForItem(c, id)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.LogError("Failed to parse form: %v", err)
		utils.BadRequest(c, "Invalid form data", "Provide image files in the 'images' field")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequest(c, "No images uploaded", "Select at least one image to upload")
		return
	}

	// Reject before uploading anything the draft cannot hold.
	if len(draft.Images)+len(files) > models.MaxImagesPerItem {
		utils.LogError("Draft for item %d cannot take %d more images", id, len(files))
		utils.ValidationError(c, "Too many images", fmt.Sprintf("An item may hold at most %d images", models.MaxImagesPerItem))
		return
	}
	for _, file := range files {
		if err := utils.ValidateImageFile(file); err != nil {
			utils.LogError("Invalid file in batch: %v", err)
			utils.ValidationError(c, "Invalid image file", gin.H{"file": file.Filename, "error": err.Error()})
			return
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.InternalServerError(c, "Failed to load configuration", err)
		return
	}

	refs := make([]string, 0, len(files))
	for _, file := range files {
		filename, err := utils.SaveUploadedFile(file, cfg.UploadDir)
		if err != nil {
			utils.InternalServerError(c, "Failed to save uploaded file", err)
			return
		}
		refs = append(refs, publicImageURL(cfg, filename))
	}

	draft, err = draftStore.AddImages(editSessionID(c), refs...)
	if err != nil {
		utils.LogError("Failed to append images to draft: %v", err)
		utils.ValidationError(c, "Failed to add images", err.Error())
		return
	}

	utils.LogInfo("Appended %d images to draft for item %d", len(refs), id)
	utils.Success(c, "Images added to draft", gin.H{"draft": draft})
}

// RemoveItemEditImage removes the image at the given position from the
// draft. An out-of-range index leaves the draft as it was.
func RemoveItemEditImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Invalid image index", "Image index must be a valid number")
		return
	}

	if _, ok := sessionDraftForItem(c, id); !ok {
		return
	}

	draft, err := draftStore.RemoveImage(editSessionID(c), index)
	if err != nil {
		utils.NotFound(c, "No edit in progress for this item")
		return
	}

	utils.Success(c, "Image removed from draft", gin.H{"draft": draft})
}

// MoveImageRequest carries the target position for a draft image move.
type MoveImageRequest struct {
	To int `json:"to"`
}

// MoveItemEditImage reorders the draft's image list. Invalid positions
// leave the draft unchanged.
func MoveItemEditImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	from, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.BadRequest(c, "Invalid image index", "Image index must be a valid number")
		return
	}

	var req MoveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	if _, ok := sessionDraftForItem(c, id); !ok {
		return
	}

	draft, err := draftStore.MoveImage(editSessionID(c), from, req.To)
	if err != nil {
		utils.NotFound(c, "No edit in progress for this item")
		return
	}

	utils.Success(c, "Image moved in draft", gin.H{"draft": draft})
}

// CommitItemEdit writes the draft back through a full item update. The
// version captured when the edit began must still match; otherwise the item
// changed underneath the draft and the commit is a conflict.
func CommitItemEdit(c *gin.Context) {
	utils.LogInfo("CommitItemEdit called")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	draft, ok := sessionDraftForItem(c, id)
	if !ok {
		return
	}

	var item models.Item
	if err := config.DB.First(&item, id).Error; err != nil {
		utils.LogError("Item not found: %v", err)
		utils.NotFound(c, "Item not found")
		return
	}

	draft.ApplyTo(&item)

	result := config.DB.Model(&models.Item{}).
		Where("id = ? AND version = ?", id, draft.Version).
		Updates(map[string]interface{}{
			"name":          item.Name,
			"sub_category":  item.SubCategory,
			"brand":         item.Brand,
			"model":         item.Model,
			"status":        item.Status,
			"location":      item.Location,
			"notes":         item.Notes,
			"image_url":     item.ImageURL,
			"price":         item.Price,
			"quantity":      item.Quantity,
			"purchase_date": item.PurchaseDate,
			"expiry_date":   item.ExpiryDate,
			"condition":     item.Condition,
			"tags":          item.Tags,
			"category_id":   item.CategoryID,
			"version":       draft.Version + 1,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to commit draft", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.LogError("Draft commit conflict for item %d (version %d)", id, draft.Version)
		utils.Conflict(c, "Item was modified while it was being edited", "Refetch the item and start the edit again")
		return
	}

	draftStore.Cancel(editSessionID(c))

	if err := config.DB.Preload("Category").First(&item, id).Error; err != nil {
		utils.InternalServerError(c, "Failed to reload item", err)
		return
	}

	utils.LogInfo("Committed edit draft for item %d", item.ID)
	utils.Success(c, "Draft committed successfully", gin.H{"item": item})
}

// CancelItemEdit discards the session's draft without touching the item.
func CancelItemEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid item ID format", "Item ID must be a valid number")
		return
	}

	if _, ok := sessionDraftForItem(c, id); !ok {
		return
	}

	draftStore.Cancel(editSessionID(c))
	utils.LogDebug("Cancelled edit draft for item %d", id)
	utils.Success(c, "Edit cancelled", nil)
}

package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	c := newTestClient(t)

	id := createCategory(t, c, map[string]interface{}{
		"name":        "Electronics",
		"description": "Gadgets and devices",
	})

	w := c.do(http.MethodGet, fmt.Sprintf("/categories/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	category := dataField(t, w, "category").(map[string]interface{})
	assert.Equal(t, "Electronics", category["name"])
	assert.Equal(t, "#007bff", category["color"])
	assert.Equal(t, true, category["is_active"])

	// Soft delete: the category disappears from the list but is not purged.
	w = c.do(http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = c.do(http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), dataField(t, w, "count"))

	w = c.do(http.MethodGet, fmt.Sprintf("/categories/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryValidation(t *testing.T) {
	c := newTestClient(t)

	w := c.do(http.MethodPost, "/categories", map[string]interface{}{"name": "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = c.do(http.MethodPost, "/categories", map[string]interface{}{
		"name":  "Bad color",
		"color": "blue",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = c.do(http.MethodGet, "/categories/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/categories/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryTree(t *testing.T) {
	c := newTestClient(t)

	rootID := createCategory(t, c, map[string]interface{}{"name": "Home", "sort_order": 1})
	createCategory(t, c, map[string]interface{}{"name": "Kitchen", "parent_id": rootID})
	createCategory(t, c, map[string]interface{}{"name": "Bedroom", "parent_id": rootID})
	createCategory(t, c, map[string]interface{}{"name": "Office", "sort_order": 2})

	w := c.do(http.MethodGet, "/categories/tree", nil)
	require.Equal(t, http.StatusOK, w.Code)

	roots := dataField(t, w, "categories").([]interface{})
	require.Len(t, roots, 2)

	home := roots[0].(map[string]interface{})
	assert.Equal(t, "Home", home["name"])
	children := home["sub_categories"].([]interface{})
	require.Len(t, children, 2)
	// Children are ordered by sort order then name.
	assert.Equal(t, "Bedroom", children[0].(map[string]interface{})["name"])
	assert.Equal(t, "Kitchen", children[1].(map[string]interface{})["name"])
}

func TestCategoryDeleteBlockedByChildren(t *testing.T) {
	c := newTestClient(t)

	rootID := createCategory(t, c, map[string]interface{}{"name": "Home"})
	childID := createCategory(t, c, map[string]interface{}{"name": "Kitchen", "parent_id": rootID})

	w := c.do(http.MethodDelete, fmt.Sprintf("/categories/%d", rootID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Once the child is gone the parent can be deleted.
	w = c.do(http.MethodDelete, fmt.Sprintf("/categories/%d", childID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodDelete, fmt.Sprintf("/categories/%d", rootID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoryUpdate(t *testing.T) {
	c := newTestClient(t)

	id := createCategory(t, c, map[string]interface{}{"name": "Electronics"})

	w := c.do(http.MethodPut, fmt.Sprintf("/categories/%d", id), map[string]interface{}{
		"name":        "Electronics & Gadgets",
		"description": "Updated",
		"version":     1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	category := dataField(t, w, "category").(map[string]interface{})
	assert.Equal(t, "Electronics & Gadgets", category["name"])
	assert.Equal(t, float64(2), category["version"])

	// A second update against the already-consumed version conflicts.
	w = c.do(http.MethodPut, fmt.Sprintf("/categories/%d", id), map[string]interface{}{
		"name":    "Stale write",
		"version": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.do(http.MethodPut, "/categories/9999", map[string]interface{}{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryParentCycleRejected(t *testing.T) {
	c := newTestClient(t)

	grandID := createCategory(t, c, map[string]interface{}{"name": "A"})
	parentID := createCategory(t, c, map[string]interface{}{"name": "B", "parent_id": grandID})
	childID := createCategory(t, c, map[string]interface{}{"name": "C", "parent_id": parentID})

	// Pointing the root at its grandchild would close a loop.
	w := c.do(http.MethodPut, fmt.Sprintf("/categories/%d", grandID), map[string]interface{}{
		"name":      "A",
		"parent_id": childID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	// Self-parenting is rejected outright.
	w = c.do(http.MethodPut, fmt.Sprintf("/categories/%d", grandID), map[string]interface{}{
		"name":      "A",
		"parent_id": grandID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stuffkeeper/stuffkeeper/config"
	"github.com/stuffkeeper/stuffkeeper/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testClient drives the full router against a fresh in-memory database,
// carrying cookies between requests so session-scoped drafts work.
type testClient struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	config.SetupTestDB(t)
	return &testClient{t: t, router: routes.SetupRouter()}
}

func (c *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(c.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

type testFile struct {
	Name    string
	Content []byte
}

func (c *testClient) doMultipart(path, field string, files []testFile) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		part, err := writer.CreateFormFile(field, file.Name)
		require.NoError(c.t, err)
		_, err = part.Write(file.Content)
		require.NoError(c.t, err)
	}
	require.NoError(c.t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func dataField(t *testing.T, w *httptest.ResponseRecorder, key string) interface{} {
	t.Helper()
	data, ok := decodeBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data[key]
}

// createCategory creates a category through the API and returns its id.
func createCategory(t *testing.T, c *testClient, payload map[string]interface{}) uint {
	t.Helper()
	w := c.do(http.MethodPost, "/categories", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	category := dataField(t, w, "category").(map[string]interface{})
	return uint(category["id"].(float64))
}

// createItem creates an item through the API and returns its id.
func createItem(t *testing.T, c *testClient, payload map[string]interface{}) uint {
	t.Helper()
	w := c.do(http.MethodPost, "/items", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	item := dataField(t, w, "item").(map[string]interface{})
	return uint(item["id"].(float64))
}

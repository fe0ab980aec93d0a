package web

import (
	"bytes"
	"context"
	"database/sql"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuslf/lostfound/internal/db"
	"github.com/campuslf/lostfound/internal/imagestore"
	"github.com/campuslf/lostfound/internal/model"
	"github.com/campuslf/lostfound/internal/store"
)

const testPassword = "correct-password"

func setupTestServer(t *testing.T) (*httptest.Server, *sql.DB, *imagestore.Store) {
	t.Helper()

	database := db.NewTestDB(t)
	images, err := imagestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating image store: %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	router, err := NewRouter(database, images, "test-session-secret", hash)
	if err != nil {
		t.Fatalf("creating router: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server, database, images
}

// adminClient logs in and returns a client carrying the session cookie.
func adminClient(t *testing.T, server *httptest.Server) *http.Client {
	t.Helper()

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}

	resp, err := client.PostForm(server.URL+"/login", url.Values{"password": {testPassword}})
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	return client
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	return string(data)
}

// itemForm builds a multipart item submission, optionally with an image.
func itemForm(t *testing.T, fields map[string]string, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	if imageName != "" {
		fw, err := mw.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("creating form file: %v", err)
		}
		fw.Write(imageData)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func testJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			img.Set(x, y, color.RGBA{200, 100, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, nil)
	return buf.Bytes()
}

func TestHomePageEmpty(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "No reports yet.") {
		t.Error("expected empty-state message on home page")
	}
}

func TestReportSubmitCreatesLostItem(t *testing.T) {
	server, database, _ := setupTestServer(t)

	body, contentType := itemForm(t, map[string]string{
		"title":            "Black Wallet",
		"description":      "Leather, lost near the gym",
		"category":         "Accessories",
		"reporter_name":    "Maja",
		"reporter_contact": "maja@example.edu",
	}, "", nil)

	resp, err := http.Post(server.URL+"/report", contentType, body)
	if err != nil {
		t.Fatalf("POST /report: %v", err)
	}
	page := readBody(t, resp)
	if !strings.Contains(page, "Lost item reported successfully!") {
		t.Error("expected success message after report submission")
	}

	items, _ := store.SearchItems(context.Background(), database, store.Filter{Status: model.StatusLost})
	if len(items) != 1 || items[0].Title != "Black Wallet" {
		t.Fatalf("expected the reported wallet in the store, got %+v", items)
	}
}

func TestReportRequiresTitle(t *testing.T) {
	server, database, _ := setupTestServer(t)

	body, contentType := itemForm(t, map[string]string{
		"title":    "   ",
		"category": "Others",
	}, "", nil)

	resp, _ := http.Post(server.URL+"/report", contentType, body)
	page := readBody(t, resp)
	if !strings.Contains(page, "Title is required.") {
		t.Error("expected inline validation error for empty title")
	}

	items, _ := store.SearchItems(context.Background(), database, store.Filter{})
	if len(items) != 0 {
		t.Errorf("expected no items written, got %d", len(items))
	}
}

func TestReportWithImage(t *testing.T) {
	server, database, images := setupTestServer(t)

	body, contentType := itemForm(t, map[string]string{
		"title":    "Camera",
		"category": "Electronics",
	}, "camera.jpg", testJPEG(t))

	resp, _ := http.Post(server.URL+"/report", contentType, body)
	readBody(t, resp)

	items, _ := store.SearchItems(context.Background(), database, store.Filter{})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ImagePath == "" {
		t.Fatal("expected image path to be recorded")
	}
	if !images.Exists(items[0].ImagePath) {
		t.Error("expected uploaded image file on disk")
	}

	// The stored image must be served back.
	imgResp, err := http.Get(server.URL + "/images/" + items[0].ImagePath)
	if err != nil {
		t.Fatalf("GET image: %v", err)
	}
	imgResp.Body.Close()
	if imgResp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for stored image, got %d", imgResp.StatusCode)
	}
}

func TestMissingImageRendersPlaceholder(t *testing.T) {
	server, database, images := setupTestServer(t)
	ctx := context.Background()

	item, err := store.AddItem(ctx, database, images, store.NewItem{
		Title:     "Red Scarf",
		Category:  "Clothing",
		Status:    model.StatusLost,
		ImageData: []byte("image bytes"),
		ImageName: "scarf.jpg",
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	// The file can disappear from disk independently of the row.
	if err := os.Remove(images.Path(item.ImagePath)); err != nil {
		t.Fatalf("removing image file: %v", err)
	}

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	page := readBody(t, resp)
	if !strings.Contains(page, "Red Scarf") {
		t.Error("expected the item to render despite the missing image")
	}
	if !strings.Contains(page, "Image cannot be opened") {
		t.Error("expected the missing-image placeholder to render")
	}
	if strings.Contains(page, "/images/"+item.ImagePath) {
		t.Error("did not expect an img tag for the missing file")
	}
}

func TestReportRejectsNonImageUpload(t *testing.T) {
	server, database, _ := setupTestServer(t)

	body, contentType := itemForm(t, map[string]string{
		"title":    "Notes",
		"category": "Documents",
	}, "notes.txt", []byte("plain text, not an image"))

	resp, _ := http.Post(server.URL+"/report", contentType, body)
	page := readBody(t, resp)
	if !strings.Contains(page, "unsupported image format") {
		t.Error("expected inline error for non-image upload")
	}

	items, _ := store.SearchItems(context.Background(), database, store.Filter{})
	if len(items) != 0 {
		t.Errorf("expected no items written, got %d", len(items))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp, err := http.PostForm(server.URL+"/login", url.Values{"password": {"wrong"}})
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	page := readBody(t, resp)
	if !strings.Contains(page, "Incorrect password.") {
		t.Error("expected inline error for wrong password")
	}
}

func TestAdminRequiresSession(t *testing.T) {
	server, _, _ := setupTestServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(server.URL + "/admin")
	if err != nil {
		t.Fatalf("GET /admin: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestAdminSubmitFoundItem(t *testing.T) {
	server, database, _ := setupTestServer(t)
	client := adminClient(t, server)

	body, contentType := itemForm(t, map[string]string{
		"title":    "Silver Keychain",
		"category": "Accessories",
	}, "", nil)

	resp, err := client.Post(server.URL+"/admin/items", contentType, body)
	if err != nil {
		t.Fatalf("POST /admin/items: %v", err)
	}
	page := readBody(t, resp)
	if !strings.Contains(page, "Found item added!") {
		t.Error("expected success flash after found-item submission")
	}

	items, _ := store.SearchItems(context.Background(), database, store.Filter{Status: model.StatusFound})
	if len(items) != 1 || items[0].Title != "Silver Keychain" {
		t.Fatalf("expected the found keychain in the store, got %+v", items)
	}
}

func TestAdminMarkFoundAndRemove(t *testing.T) {
	server, database, images := setupTestServer(t)
	client := adminClient(t, server)
	ctx := context.Background()

	item, err := store.AddItem(ctx, database, images, store.NewItem{
		Title:  "Student ID",
		Status: model.StatusLost,
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	resp, err := client.Post(server.URL+"/admin/items/"+itoa(item.ID)+"/found", "application/x-www-form-urlencoded", nil)
	if err != nil {
		t.Fatalf("mark found: %v", err)
	}
	resp.Body.Close()

	got, _ := store.GetItem(ctx, database, item.ID)
	if got.Status != model.StatusFound {
		t.Fatalf("expected status 'found', got %q", got.Status)
	}

	resp, err = client.Post(server.URL+"/admin/items/"+itoa(item.ID)+"/delete", "application/x-www-form-urlencoded", nil)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	resp.Body.Close()

	got, _ = store.GetItem(ctx, database, item.ID)
	if got != nil {
		t.Error("expected item to be gone after removal")
	}
}

func TestImageNotFound(t *testing.T) {
	server, _, _ := setupTestServer(t)

	resp, err := http.Get(server.URL + "/images/0_000000000000.jpg")
	if err != nil {
		t.Fatalf("GET missing image: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSearchPageFilters(t *testing.T) {
	server, database, images := setupTestServer(t)
	ctx := context.Background()

	store.AddItem(ctx, database, images, store.NewItem{Title: "Black Wallet", Category: "Accessories", Status: model.StatusLost})
	store.AddItem(ctx, database, images, store.NewItem{Title: "Blue Backpack", Category: "Others", Status: model.StatusFound})

	resp, err := http.Get(server.URL + "/search?search=1&keyword=wallet&status=Any&category=Any")
	if err != nil {
		t.Fatalf("GET /search: %v", err)
	}
	page := readBody(t, resp)
	if !strings.Contains(page, "Black Wallet") {
		t.Error("expected wallet in search results")
	}
	if strings.Contains(page, "Blue Backpack") {
		t.Error("did not expect backpack in keyword results")
	}

	resp, _ = http.Get(server.URL + "/search?search=1&status=Found&category=Any")
	page = readBody(t, resp)
	if !strings.Contains(page, "Blue Backpack") {
		t.Error("expected backpack in status=Found results")
	}
	if strings.Contains(page, "Black Wallet") {
		t.Error("did not expect wallet in status=Found results")
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-thrifty-inventory/internal/model"
	"go-thrifty-inventory/internal/repository"
	"go-thrifty-inventory/internal/service"
)

// newTestApp wires the full HTTP surface against a fresh in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.Branch{}, &model.Product{}, &model.User{}, &model.Log{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	branchRepo := repository.NewBranchRepo(db)
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)
	logRepo := repository.NewLogRepo(db)

	branchHandler := NewBranchHandler(service.NewBranchService(branchRepo, productRepo, db))
	productHandler := NewProductHandler(service.NewProductService(productRepo, branchRepo, logRepo, db))
	userHandler := NewUserHandler(service.NewUserService(userRepo, logRepo, db))
	logHandler := NewLogHandler(service.NewLogService(logRepo, productRepo, userRepo, db, nil))

	app := fiber.New()

	branches := app.Group("/Branches")
	branches.Get("/", branchHandler.GetBranches)
	branches.Get("/:id", branchHandler.GetBranch)
	branches.Post("/", branchHandler.CreateBranch)
	branches.Put("/:id", branchHandler.UpdateBranch)
	branches.Delete("/:id", branchHandler.DeleteBranch)

	products := app.Group("/Products")
	products.Get("/", productHandler.GetProducts)
	products.Get("/Branch/:branchId", productHandler.GetProductsByBranch)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", productHandler.CreateProduct)
	products.Put("/:id", productHandler.UpdateProduct)
	products.Delete("/:id", productHandler.DeleteProduct)

	users := app.Group("/Users")
	users.Get("/", userHandler.GetUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	logs := app.Group("/Logs")
	logs.Get("/", logHandler.GetLogs)
	logs.Get("/Product/:productId", logHandler.GetLogsByProduct)
	logs.Get("/:id", logHandler.GetLog)
	logs.Post("/", logHandler.CreateLog)

	return app
}

// doJSON performs a request with an optional JSON body and decodes the
// response into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints returning a bare array.
func doJSONList(t *testing.T, app *fiber.App, path string) (int, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var decoded []map[string]interface{}
	if resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

// getRaw returns a GET response body as text.
func getRaw(t *testing.T, app *fiber.App, path string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func createBranch(t *testing.T, app *fiber.App) float64 {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/Branches", map[string]interface{}{
		"branchName": "Main",
		"address":    "123 St",
	})
	if status != 201 {
		t.Fatalf("create branch: status %d body %v", status, body)
	}
	return body["branch"].(map[string]interface{})["id"].(float64)
}

func createProduct(t *testing.T, app *fiber.App, branchID float64) float64 {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/Products", map[string]interface{}{
		"productName":     "Vanilla Cone",
		"category":        "cones",
		"initialQuantity": 5,
		"price":           2.5,
		"cost":            1.0,
		"branchId":        branchID,
	})
	if status != 201 {
		t.Fatalf("create product: status %d body %v", status, body)
	}
	return body["product"].(map[string]interface{})["id"].(float64)
}

func createUser(t *testing.T, app *fiber.App, email string) float64 {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/Users", map[string]interface{}{
		"name":     "Ana",
		"email":    email,
		"password": "secret123",
		"role":     "manager",
	})
	if status != 201 {
		t.Fatalf("create user: status %d body %v", status, body)
	}
	return body["user"].(map[string]interface{})["id"].(float64)
}

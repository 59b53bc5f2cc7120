package handler

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func TestBranchLifecycle(t *testing.T) {
	app := newTestApp(t)

	branchID := createBranch(t, app)
	path := "/Branches/" + strconv.Itoa(int(branchID))

	status, body := doJSON(t, app, http.MethodGet, path, nil)
	if status != 200 {
		t.Fatalf("get: status %d body %v", status, body)
	}
	if body["branchName"] != "Main" || body["address"] != "123 St" {
		t.Fatalf("unexpected branch body %v", body)
	}

	status, body = doJSON(t, app, http.MethodPut, path, map[string]interface{}{"address": "456 Ave"})
	if status != 200 {
		t.Fatalf("update: status %d body %v", status, body)
	}
	updated := body["branch"].(map[string]interface{})
	if updated["address"] != "456 Ave" || updated["branchName"] != "Main" {
		t.Fatalf("partial update broke untouched fields: %v", updated)
	}

	status, body = doJSON(t, app, http.MethodDelete, path, nil)
	if status != 200 {
		t.Fatalf("delete: status %d body %v", status, body)
	}
	status, _ = doJSON(t, app, http.MethodGet, path, nil)
	if status != 404 {
		t.Fatalf("expected 404 after delete, got %d", status)
	}
}

func TestCreateBranchValidationBody(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/Branches", map[string]interface{}{})
	if status != 400 {
		t.Fatalf("status %d, want 400", status)
	}
	violations, ok := body["errors"].([]interface{})
	if !ok || len(violations) != 2 {
		t.Fatalf("expected two violations, got %v", body)
	}
	fields := map[string]bool{}
	for _, v := range violations {
		entry := v.(map[string]interface{})
		fields[entry["field"].(string)] = true
		if entry["rule"] != "required" {
			t.Fatalf("unexpected rule in %v", entry)
		}
	}
	if !fields["branchName"] || !fields["address"] {
		t.Fatalf("violations must use JSON field names, got %v", fields)
	}
}

func TestInvalidIDRejected(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/Branches/abc", "/Users/-3", "/Logs/abc"} {
		status, body := doJSON(t, app, http.MethodGet, path, nil)
		if status != 400 {
			t.Fatalf("GET %s: status %d body %v, want 400", path, status, body)
		}
		if !strings.Contains(body["message"].(string), "Invalid") {
			t.Fatalf("GET %s: unexpected message %v", path, body["message"])
		}
	}

	// Zero is well formed, it just matches no row
	for _, path := range []string{"/Branches/0", "/Products/0"} {
		status, body := doJSON(t, app, http.MethodGet, path, nil)
		if status != 404 {
			t.Fatalf("GET %s: status %d body %v, want 404", path, status, body)
		}
	}
}

func TestCreateProductBadCategoryBody(t *testing.T) {
	app := newTestApp(t)
	branchID := createBranch(t, app)

	status, body := doJSON(t, app, http.MethodPost, "/Products", map[string]interface{}{
		"productName":     "Mystery Box",
		"category":        "boxes",
		"initialQuantity": 1,
		"price":           1.0,
		"cost":            0.5,
		"branchId":        branchID,
	})
	if status != 400 {
		t.Fatalf("status %d body %v, want 400", status, body)
	}
	violations := body["errors"].([]interface{})
	entry := violations[0].(map[string]interface{})
	if entry["field"] != "category" {
		t.Fatalf("unexpected violation %v", entry)
	}
	if !strings.Contains(entry["message"].(string), "drinks") {
		t.Fatalf("enum message must list the valid categories, got %v", entry["message"])
	}
}

func TestCreateProductUnknownBranch(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/Products", map[string]interface{}{
		"productName":     "Vanilla Cone",
		"category":        "cones",
		"initialQuantity": 5,
		"price":           2.5,
		"cost":            1.0,
		"branchId":        999,
	})
	if status != 404 {
		t.Fatalf("status %d body %v, want 404", status, body)
	}
	if body["message"] != "Branch not found" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestProductsByBranchRoute(t *testing.T) {
	app := newTestApp(t)
	first := createBranch(t, app)
	createProduct(t, app, first)
	createProduct(t, app, first)

	status, list := doJSONList(t, app, "/Products/Branch/"+strconv.Itoa(int(first)))
	if status != 200 {
		t.Fatalf("status %d, want 200", status)
	}
	if len(list) != 2 {
		t.Fatalf("got %d products, want 2", len(list))
	}

	status, _ = doJSONList(t, app, "/Products/Branch/999")
	if status != 404 {
		t.Fatalf("missing branch: status %d, want 404", status)
	}
}

func TestUsersNeverExposePasswords(t *testing.T) {
	app := newTestApp(t)
	userID := createUser(t, app, "a@x.com")

	for _, path := range []string{"/Users", "/Users/" + strconv.Itoa(int(userID))} {
		raw := getRaw(t, app, path)
		if strings.Contains(strings.ToLower(raw), "password") {
			t.Fatalf("GET %s leaks password material: %s", path, raw)
		}
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	app := newTestApp(t)
	createUser(t, app, "a@x.com")

	status, body := doJSON(t, app, http.MethodPost, "/Users", map[string]interface{}{
		"name":     "Ben",
		"email":    "a@x.com",
		"password": "other456",
		"role":     "clerk",
	})
	if status != 400 {
		t.Fatalf("status %d body %v, want 400", status, body)
	}
	if body["message"] != "User with this email already exists" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestLogCreationAndDeleteGuards(t *testing.T) {
	app := newTestApp(t)
	branchID := createBranch(t, app)
	productID := createProduct(t, app, branchID)
	userID := createUser(t, app, "a@x.com")

	// Some clients send the delta string-encoded; both forms must land as -1
	status, body := doJSON(t, app, http.MethodPost, "/Logs", map[string]interface{}{
		"productId":        productID,
		"quantityOfChange": "-1",
		"userId":           userID,
		"reason":           "sale",
	})
	if status != 201 {
		t.Fatalf("create log: status %d body %v", status, body)
	}
	log := body["log"].(map[string]interface{})
	if log["quantityOfChange"].(float64) != -1 {
		t.Fatalf("unexpected delta %v", log["quantityOfChange"])
	}
	if log["movedAt"] == nil {
		t.Fatal("movedAt missing from log body")
	}

	status, body = doJSON(t, app, http.MethodPost, "/Logs", map[string]interface{}{
		"productId":        productID,
		"quantityOfChange": 3,
		"userId":           userID,
		"reason":           "purchase",
	})
	if status != 201 {
		t.Fatalf("create log (numeric delta): status %d body %v", status, body)
	}
	if body["log"].(map[string]interface{})["quantityOfChange"].(float64) != 3 {
		t.Fatalf("unexpected delta %v", body["log"])
	}

	status, body = doJSON(t, app, http.MethodDelete, "/Products/"+strconv.Itoa(int(productID)), nil)
	if status != 400 {
		t.Fatalf("product delete with logs: status %d body %v, want 400", status, body)
	}
	status, body = doJSON(t, app, http.MethodDelete, "/Branches/"+strconv.Itoa(int(branchID)), nil)
	if status != 400 {
		t.Fatalf("branch delete with products: status %d body %v, want 400", status, body)
	}
	status, body = doJSON(t, app, http.MethodDelete, "/Users/"+strconv.Itoa(int(userID)), nil)
	if status != 400 {
		t.Fatalf("user delete with logs: status %d body %v, want 400", status, body)
	}

	status, list := doJSONList(t, app, "/Logs/Product/"+strconv.Itoa(int(productID)))
	if status != 200 || len(list) != 2 {
		t.Fatalf("logs by product: status %d len %d", status, len(list))
	}
}

func TestMalformedJSONRejected(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/Branches", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/export"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.Open()
	if err := database.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	logger := zap.NewNop()
	tx := repository.NewTransactionManager(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billRepo := repository.NewBillRepository(db)
	millRepo := repository.NewMillRepository(db)

	r := gin.New()
	api := r.Group("")
	NewCustomerHandler(service.NewCustomerService(customerRepo, tx)).RegisterRoutes(api)
	NewInventoryHandler(service.NewInventoryService(inventoryRepo, nil, logger)).RegisterRoutes(api)
	NewOrderHandler(service.NewOrderService(orderRepo, billRepo, customerRepo, inventoryRepo, tx, nil, logger)).RegisterRoutes(api)
	NewBillHandler(service.NewBillService(billRepo, customerRepo, orderRepo, tx, nil, logger)).RegisterRoutes(api)
	NewMillHandler(service.NewMillService(millRepo, inventoryRepo, tx, nil, logger)).RegisterRoutes(api)
	NewReportHandler(service.NewReportService(customerRepo, orderRepo, inventoryRepo, billRepo, millRepo)).RegisterRoutes(api)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return resp
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) map[string]interface{} {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
	return parseResponse(t, w)
}

func dataList(t *testing.T, resp map[string]interface{}) []interface{} {
	t.Helper()
	list, ok := resp["data"].([]interface{})
	if !ok {
		t.Fatalf("expected list data, got %T", resp["data"])
	}
	return list
}

func dataObject(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	obj, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object data, got %T", resp["data"])
	}
	return obj
}

func firstCustomerID(t *testing.T, r *gin.Engine) string {
	t.Helper()
	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/customers?search=grand", nil), http.StatusOK)
	list := dataList(t, resp)
	if len(list) != 1 {
		t.Fatalf("expected one match for 'grand', got %d", len(list))
	}
	return list[0].(map[string]interface{})["id"].(string)
}

func TestCustomerEndpoints(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodPost, "/api/customers", map[string]interface{}{
		"name": "Anand Stores", "phone": "9000000001", "business_type": "Retailer",
	}), http.StatusCreated)
	created := dataObject(t, resp)
	if created["id"] == "" || created["name"] != "Anand Stores" {
		t.Errorf("unexpected created customer: %v", created)
	}

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/customers", map[string]interface{}{
		"name": "Copy", "phone": "9000000001",
	}), http.StatusBadRequest)
	if resp["success"] != false || resp["error"] != "Customer with this phone already exists" {
		t.Errorf("unexpected duplicate response: %v", resp)
	}

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/customers", nil), http.StatusBadRequest)
	if resp["error"] != "Name and phone are required" {
		t.Errorf("empty body: got %v", resp["error"])
	}

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/customers", "{not json"), http.StatusBadRequest)
	if msg, _ := resp["error"].(string); !strings.HasPrefix(msg, "Invalid request payload") {
		t.Errorf("malformed body: got %q", msg)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/customers/search?phone=9876543211", nil), http.StatusOK)
	lookup := dataObject(t, resp)
	if lookup["found"] != true || lookup["customer"].(map[string]interface{})["name"] != "Sri Textiles" {
		t.Errorf("unexpected lookup: %v", lookup)
	}
	if resp["success"] != true || resp["found"] != true {
		t.Errorf("expected top-level found, got %v", resp)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/customers/search?phone=0000", nil), http.StatusOK)
	lookup = dataObject(t, resp)
	if lookup["found"] != false || lookup["customer"] != nil {
		t.Errorf("expected not found lookup, got %v", lookup)
	}
	if found, ok := resp["found"]; !ok || found != false {
		t.Errorf("expected top-level found=false, got %v", resp)
	}

	expectStatus(t, doRequest(r, http.MethodGet, "/api/customers/search", nil), http.StatusBadRequest)

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/customers/missing", nil), http.StatusNotFound)
	if resp["error"] != "Customer not found" {
		t.Errorf("got %v", resp["error"])
	}

	id := created["id"].(string)
	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/customers/"+id, map[string]interface{}{
		"address": "9 Bazaar Road",
	}), http.StatusOK)
	updated := dataObject(t, resp)
	if updated["address"] != "9 Bazaar Road" || updated["name"] != "Anand Stores" {
		t.Errorf("merge patch lost fields: %v", updated)
	}

	resp = expectStatus(t, doRequest(r, http.MethodDelete, "/api/customers/"+id, nil), http.StatusOK)
	if resp["message"] != "Customer deleted" {
		t.Errorf("got %v", resp["message"])
	}
	expectStatus(t, doRequest(r, http.MethodDelete, "/api/customers/"+id, nil), http.StatusNotFound)
}

func TestCreateOrderGeneratesBill(t *testing.T) {
	r := setupRouter(t)
	customerID := firstCustomerID(t, r)

	resp := expectStatus(t, doRequest(r, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id": customerID, "fabric_type": "Cotton Bedsheet",
		"quantity_meters": 50, "rate_per_meter": 100,
	}), http.StatusCreated)
	order := dataObject(t, resp)
	if order["status"] != "Pending" || order["total_amount"] != 5000.0 {
		t.Errorf("unexpected order: %v", order)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/bills?customer_id="+customerID, nil), http.StatusOK)
	var found map[string]interface{}
	for _, raw := range dataList(t, resp) {
		bill := raw.(map[string]interface{})
		if bill["order_id"] == order["id"] {
			found = bill
		}
	}
	if found == nil {
		t.Fatal("no bill generated for the new order")
	}
	if found["bill_number"] != "BILL-003" || found["tax_amount"] != 900.0 || found["grand_total"] != 5900.0 {
		t.Errorf("unexpected bill: %v", found)
	}
	if found["customers"].(map[string]interface{})["name"] != "Hotel Grand Palace" {
		t.Errorf("bill not enriched: %v", found["customers"])
	}

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/orders", map[string]interface{}{
		"customer_id": customerID,
	}), http.StatusBadRequest)
	if resp["error"] != "customer_id, fabric_type, quantity_meters, and rate_per_meter are required" {
		t.Errorf("got %v", resp["error"])
	}
}

func TestOrderUpdateAndCancel(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/orders?status=Pending", nil), http.StatusOK)
	pending := dataList(t, resp)
	if len(pending) != 1 {
		t.Fatalf("expected one pending order, got %d", len(pending))
	}
	id := pending[0].(map[string]interface{})["id"].(string)

	expectStatus(t, doRequest(r, http.MethodPut, "/api/orders/"+id, map[string]interface{}{
		"status": "Shipped",
	}), http.StatusBadRequest)

	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/orders/"+id, map[string]interface{}{
		"notes": "call before delivery",
	}), http.StatusOK)
	if dataObject(t, resp)["notes"] != "call before delivery" {
		t.Errorf("notes not updated: %v", resp["data"])
	}

	resp = expectStatus(t, doRequest(r, http.MethodDelete, "/api/orders/"+id, nil), http.StatusOK)
	if resp["message"] != "Order cancelled" {
		t.Errorf("got %v", resp["message"])
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/orders/"+id, nil), http.StatusOK)
	got := dataObject(t, resp)
	if got["status"] != "Cancelled" {
		t.Errorf("expected Cancelled, got %v", got["status"])
	}
	if got["customers"].(map[string]interface{})["phone"] != "9876543211" {
		t.Errorf("order not enriched: %v", got["customers"])
	}

	expectStatus(t, doRequest(r, http.MethodDelete, "/api/orders/missing", nil), http.StatusNotFound)
}

func TestCheckAvailability(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodPost, "/api/orders/check-availability", map[string]interface{}{
		"fabric_type": "Silk Cotton", "quantity_meters": 20,
	}), http.StatusOK)
	avail := dataObject(t, resp)
	if avail["available"] != false || avail["available_quantity"] != 8.0 || avail["requested_quantity"] != 20.0 {
		t.Errorf("unexpected availability: %v", avail)
	}
	for key, want := range map[string]interface{}{
		"success": true, "available": false, "available_quantity": 8.0, "requested_quantity": 20.0,
	} {
		if got, ok := resp[key]; !ok || got != want {
			t.Errorf("top-level %s: expected %v, got %v", key, want, got)
		}
	}

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/orders/check-availability", map[string]interface{}{
		"fabric_type": "Cotton Bedsheet", "quantity_meters": 100,
	}), http.StatusOK)
	if resp["available"] != true || resp["available_quantity"] != 500.0 {
		t.Errorf("expected cotton to be available at top level, got %v", resp)
	}

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/orders/check-availability", nil), http.StatusBadRequest)
	if resp["error"] != "fabric_type and quantity_meters are required" {
		t.Errorf("got %v", resp["error"])
	}
}

func TestInventoryEndpoints(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/inventory/low-stock", nil), http.StatusOK)
	if n := len(dataList(t, resp)); n != 2 {
		t.Errorf("expected 2 low stock lines, got %d", n)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/inventory?low_stock=true", nil), http.StatusOK)
	if n := len(dataList(t, resp)); n != 2 {
		t.Errorf("low_stock filter: expected 2, got %d", n)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/inventory/summary", nil), http.StatusOK)
	summary := dataObject(t, resp)
	if summary["total_items"] != 3.0 || summary["total_meters"] != 538.0 {
		t.Errorf("unexpected summary: %v", summary)
	}

	expectStatus(t, doRequest(r, http.MethodPost, "/api/inventory", map[string]interface{}{
		"fabric_type": "Linen", "fabric_color": "Beige", "quantity_meters": 0, "rate_per_meter": 10,
	}), http.StatusBadRequest)

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/inventory", map[string]interface{}{
		"fabric_type": "Linen", "fabric_color": "Beige", "quantity_meters": 100, "rate_per_meter": 10,
	}), http.StatusCreated)
	id := dataObject(t, resp)["id"].(string)

	expectStatus(t, doRequest(r, http.MethodPut, "/api/inventory/"+id, map[string]interface{}{
		"quantity_meters": -1,
	}), http.StatusBadRequest)

	resp = expectStatus(t, doRequest(r, http.MethodDelete, "/api/inventory/"+id, nil), http.StatusOK)
	if resp["message"] != "Inventory item deleted" {
		t.Errorf("got %v", resp["message"])
	}
	expectStatus(t, doRequest(r, http.MethodGet, "/api/inventory/"+id, nil), http.StatusNotFound)
}

func TestBillDownload(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/bills?payment_status=Paid", nil), http.StatusOK)
	paid := dataList(t, resp)
	if len(paid) != 1 {
		t.Fatalf("expected one paid bill, got %d", len(paid))
	}
	id := paid[0].(map[string]interface{})["id"].(string)

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/bills/"+id+"/download", nil), http.StatusOK)
	if resp["message"] != "Bill download" {
		t.Errorf("got message %v", resp["message"])
	}
	doc := dataObject(t, resp)
	if doc["customer"].(map[string]interface{})["address"] != "123 Main Road, Erode" {
		t.Errorf("download should embed the full customer: %v", doc["customer"])
	}
	order, ok := doc["order"].(map[string]interface{})
	if !ok || order["fabric_type"] != "Cotton Bedsheet" || order["quantity_meters"] != 100.0 || order["total_amount"] != 12000.0 {
		t.Errorf("download should embed the order: %v", doc["order"])
	}

	w := doRequest(r, http.MethodGet, "/api/bills/"+id+"/download?format=xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != export.ContentType {
		t.Errorf("content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="BILL-001.xlsx"` {
		t.Errorf("content disposition %q", cd)
	}
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Invoice", "B4"); v != "BILL-001" {
		t.Errorf("bill number cell: %q", v)
	}
	for axis, want := range map[string]string{"A13": "Cotton Bedsheet", "B13": "100", "C13": "120", "D13": "12000"} {
		if v, _ := f.GetCellValue("Invoice", axis); v != want {
			t.Errorf("line item %s: expected %q, got %q", axis, want, v)
		}
	}

	expectStatus(t, doRequest(r, http.MethodGet, "/api/bills/missing/download", nil), http.StatusNotFound)
}

func TestBillPaymentAndSummary(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/bills?payment_status=Pending", nil), http.StatusOK)
	id := dataList(t, resp)[0].(map[string]interface{})["id"].(string)

	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/bills/"+id+"/payment", nil), http.StatusBadRequest)
	if resp["error"] != "payment_status is required" {
		t.Errorf("got %v", resp["error"])
	}
	expectStatus(t, doRequest(r, http.MethodPut, "/api/bills/"+id+"/payment", map[string]interface{}{
		"payment_status": "Overdue",
	}), http.StatusBadRequest)

	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/bills/"+id+"/payment", map[string]interface{}{
		"payment_status": "Paid",
	}), http.StatusOK)
	if dataObject(t, resp)["payment_status"] != "Paid" {
		t.Errorf("payment not updated: %v", resp["data"])
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/bills/summary", nil), http.StatusOK)
	summary := dataObject(t, resp)
	if summary["total_bills"] != 2.0 || summary["pending_amount"] != 0.0 {
		t.Errorf("unexpected summary: %v", summary)
	}
}

func TestMillRoutes(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/mills/raw-materials", nil), http.StatusOK)
	materials := dataList(t, resp)
	if len(materials) != 2 {
		t.Fatalf("expected 2 raw materials, got %d", len(materials))
	}
	first := materials[0].(map[string]interface{})
	if first["mills"] == nil {
		t.Errorf("raw material not enriched: %v", first)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/mills/performance", nil), http.StatusOK)
	if n := len(dataList(t, resp)); n != 2 {
		t.Errorf("expected 2 mills in performance, got %d", n)
	}

	resp = expectStatus(t, doRequest(r, http.MethodPost, "/api/mills/raw-materials", map[string]interface{}{
		"mill_id": first["mill_id"], "material_type": "Silk Yarn", "quantity_kg": 40,
	}), http.StatusCreated)
	created := dataObject(t, resp)
	if created["status"] != "Sent" || created["fabric_received_meters"] != nil {
		t.Errorf("unexpected raw material: %v", created)
	}

	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/mills/raw-materials/"+created["id"].(string), map[string]interface{}{
		"status": "Completed", "fabric_received_meters": 120,
	}), http.StatusOK)
	if dataObject(t, resp)["fabric_received_meters"] != 120.0 {
		t.Errorf("update lost fabric_received_meters: %v", resp["data"])
	}

	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/mills/raw-materials/"+created["id"].(string), map[string]interface{}{
		"fabric_received_meters": nil,
	}), http.StatusOK)
	cleared := dataObject(t, resp)
	if v, ok := cleared["fabric_received_meters"]; !ok || v != nil || cleared["received_date"] != nil {
		t.Errorf("explicit null should clear the receipt: %v", cleared)
	}

	expectStatus(t, doRequest(r, http.MethodPost, "/api/mills", nil), http.StatusBadRequest)
	expectStatus(t, doRequest(r, http.MethodGet, "/api/mills/missing", nil), http.StatusNotFound)
	expectStatus(t, doRequest(r, http.MethodGet, "/api/mills/raw-materials/missing", nil), http.StatusNotFound)
}

func TestRawMaterialReceiptStocksFabric(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/mills/raw-materials?status=In%20Production", nil), http.StatusOK)
	pending := dataList(t, resp)
	if len(pending) != 1 {
		t.Fatalf("expected one shipment in production, got %d", len(pending))
	}
	id := pending[0].(map[string]interface{})["id"].(string)

	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/mills/raw-materials/"+id, map[string]interface{}{
		"fabric_received_meters": 120,
	}), http.StatusOK)
	done := dataObject(t, resp)
	if done["status"] != "Completed" || done["fabric_received_meters"] != 120.0 {
		t.Errorf("expected completed shipment, got %v", done)
	}
	if received, _ := done["received_date"].(string); received == "" {
		t.Errorf("expected received_date, got %v", done["received_date"])
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/inventory?fabric_type=Cotton%20Fabric", nil), http.StatusOK)
	stock := dataList(t, resp)
	if len(stock) != 1 {
		t.Fatalf("expected received fabric in inventory, got %v", stock)
	}
	item := stock[0].(map[string]interface{})
	if item["quantity_meters"] != 120.0 || item["fabric_color"] != "White" || item["location"] != "Main Warehouse" {
		t.Errorf("unexpected stock line: %v", item)
	}

	resp = expectStatus(t, doRequest(r, http.MethodPut, "/api/mills/raw-materials/"+id, map[string]interface{}{
		"fabric_received_meters": -1,
	}), http.StatusBadRequest)
	if resp["error"] != "fabric_received_meters cannot be negative" {
		t.Errorf("got %v", resp["error"])
	}
}

func TestReports(t *testing.T) {
	r := setupRouter(t)

	resp := expectStatus(t, doRequest(r, http.MethodGet, "/api/reports/dashboard", nil), http.StatusOK)
	dash := dataObject(t, resp)
	if n := len(dash["recent_orders"].([]interface{})); n != 2 {
		t.Errorf("expected 2 recent orders, got %d", n)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/reports/sales?from_date=yesterday", nil), http.StatusBadRequest)
	if msg, _ := resp["error"].(string); !strings.Contains(msg, "from_date") {
		t.Errorf("got %q", msg)
	}

	resp = expectStatus(t, doRequest(r, http.MethodGet, "/api/reports/sales", nil), http.StatusOK)
	sales := dataObject(t, resp)
	if n := len(sales["fabric_breakdown"].([]interface{})); n != 2 {
		t.Errorf("expected 2 fabric groups, got %d", n)
	}

	w := doRequest(r, http.MethodGet, "/api/reports/sales?format=xlsx", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != export.ContentType {
		t.Fatalf("xlsx export: %d %q", w.Code, w.Header().Get("Content-Type"))
	}

	for _, path := range []string{"/api/reports/inventory", "/api/reports/customers", "/api/reports/mills", "/api/reports/billing"} {
		resp := expectStatus(t, doRequest(r, http.MethodGet, path, nil), http.StatusOK)
		if resp["success"] != true {
			t.Errorf("%s: %v", path, resp)
		}
	}
}

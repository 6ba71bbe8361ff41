package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "R.K. Textiles API Server ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestReportBilling(t *testing.T) {
	out, err := run(t, "report", "billing")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	var summary struct {
		TotalBills int `json:"total_bills"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if summary.TotalBills != 2 {
		t.Errorf("expected 2 seeded bills, got %d", summary.TotalBills)
	}
}

func TestReportSalesRejectsBadDate(t *testing.T) {
	if _, err := run(t, "report", "sales", "--from", "last-week"); err == nil {
		t.Fatal("expected error for invalid date")
	}
}

func TestReportRejectsUnknownName(t *testing.T) {
	if _, err := run(t, "report", "payroll"); err == nil {
		t.Fatal("expected error for unknown report")
	}
}

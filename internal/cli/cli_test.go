package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func serveFixture(t *testing.T, name string) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRunCheck_PlannedEndToEnd(t *testing.T) {
	srv := serveFixture(t, "sample_planned.html")
	defer srv.Close()
	t.Setenv("ENEA_BASE_URL", srv.URL)

	out, err := runCommand(t, "--type", "planned", "--region", "Gniezno", "--format", "json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result OutputResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if result.OutageCount != 1 {
		t.Fatalf("outage_count = %d, want 1", result.OutageCount)
	}
	o := result.Outages[0]
	if o.StartTime == nil {
		t.Fatal("planned outage lost its start time")
	}
	wantStart := time.Date(2025, time.December, 8, 8, 0, 0, 0, time.Local)
	wantEnd := time.Date(2025, time.December, 8, 16, 0, 0, 0, time.Local)
	if !o.StartTime.Equal(wantStart) {
		t.Errorf("start = %v, want %v", o.StartTime, wantStart)
	}
	if !o.EndTime.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", o.EndTime, wantEnd)
	}
}

func TestRunCheck_AddressFilter(t *testing.T) {
	srv := serveFixture(t, "sample_unplanned.html")
	defer srv.Close()
	t.Setenv("ENEA_BASE_URL", srv.URL)

	out, err := runCommand(t, "--address", "test street")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "Found 1 outage notice(s):") {
		t.Errorf("output = %q, want one matching notice", out)
	}

	out, err = runCommand(t, "--address", "Nonexistent Street")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}
	if !strings.Contains(out, "No outages found") {
		t.Errorf("output = %q, want a no-outages message", out)
	}
}

func TestRunCheck_ListRegions(t *testing.T) {
	srv := serveFixture(t, "sample_regions.html")
	defer srv.Close()
	t.Setenv("ENEA_BASE_URL", srv.URL)

	out, err := runCommand(t, "--list-regions")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	for _, region := range []string{"Zielona Góra", "Poznań", "Bydgoszcz"} {
		if !strings.Contains(out, "- "+region) {
			t.Errorf("regions output missing %q:\n%s", region, out)
		}
	}
}

func TestRunCheck_InvalidType(t *testing.T) {
	if _, err := runCommand(t, "--type", "scheduled"); err == nil {
		t.Fatal("command with invalid --type = nil error, want error")
	}
}

func TestRunCheck_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv("ENEA_BASE_URL", srv.URL)

	if _, err := runCommand(t); err == nil {
		t.Fatal("command against a failing endpoint = nil error, want error")
	}
}

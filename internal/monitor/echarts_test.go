package monitor

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMoireScatterPage(t *testing.T) {
	ts := httptest.NewServer(NewWebServer().ServeMux())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/moire?preset=classic-bilayer&max_points=2000")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "echarts") {
		t.Error("page does not embed an echarts chart")
	}
	if !strings.Contains(string(body), "Bilayer Graphene") {
		t.Error("page is missing the field title")
	}
}

func TestMoireScatterUnknownPreset(t *testing.T) {
	ts := httptest.NewServer(NewWebServer().ServeMux())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/moire?preset=nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDashboardPage(t *testing.T) {
	ts := httptest.NewServer(NewWebServer().ServeMux())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/dashboard")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if got := strings.Count(string(body), "<iframe"); got != 4 {
		t.Errorf("dashboard has %d iframes, want one per preset (4)", got)
	}
}

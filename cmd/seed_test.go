// ABOUTME: Tests for the seed command's product generation
// ABOUTME: Verifies generated fields satisfy the catalog validation rules

package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/validate"
)

func resetSeedFlags() {
	seedCount = 25
	seedWorkers = 4
	seedRate = 5
}

func TestSeedProductsHonorsRateLimit(t *testing.T) {
	var mu sync.Mutex
	var stamps []time.Time
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		stamps = append(stamps, time.Now())
		mu.Unlock()
		json.NewEncoder(w).Encode(client.WriteResult{ID: "p1"})
	}))
	defer server.Close()

	seedCount = 8
	seedWorkers = 4
	seedRate = 50
	defer resetSeedFlags()

	var out strings.Builder
	if code := seedProducts(context.Background(), client.New(server.URL), &out); code != 0 {
		t.Fatalf("seed failed: %s", out.String())
	}

	mu.Lock()
	defer mu.Unlock()
	if len(stamps) != 8 {
		t.Fatalf("expected 8 creation requests, got %d", len(stamps))
	}

	// With burst 1 at 50/s, 8 creations need at least 7 token intervals
	elapsed := stamps[len(stamps)-1].Sub(stamps[0])
	if elapsed < 100*time.Millisecond {
		t.Errorf("creations finished in %v, faster than the configured rate allows", elapsed)
	}
	if !strings.Contains(out.String(), "Created 8 products") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestSeedTitleAlwaysValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		title := seedTitle()
		errs := validate.Product(validate.ProductFields{
			Title:       title,
			Description: "a description long enough to pass",
		})
		if len(errs) != 0 {
			t.Fatalf("generated title %q failed validation: %v", title, errs)
		}
	}
}

func TestSeedDescriptionAlwaysValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		desc := seedDescription()
		errs := validate.Product(validate.ProductFields{
			Title:       "Sample Product",
			Description: desc,
		})
		if len(errs) != 0 {
			t.Fatalf("generated description failed validation: %v", errs)
		}
	}
}

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Red Shirt", "Red Shirt"},
		{"Camisa única", "Camisa nica"},
		{"<script>alert</script>", "scriptalertscript"},
		{"  padded  ", "padded"},
		{"dots.and-dashes_ok!", "dots.and-dashes_ok!"},
	}
	for _, tc := range cases {
		if got := sanitizeTitle(tc.in); got != tc.want {
			t.Errorf("sanitizeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

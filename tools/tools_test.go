package tools

import (
	"context"
	"strings"
	"testing"

	"wayfarer/errors"
)

type fakeTool struct {
	name   string
	result string
	err    error
	calls  int
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake" }
func (f *fakeTool) Schema() Schema {
	return Schema{"city": {Type: TypeString, Description: "city", Required: true}}
}
func (f *fakeTool) Execute(context.Context, map[string]interface{}) (string, error) {
	f.calls++
	return f.result, f.err
}

func TestRegistryListPreservesOrder(t *testing.T) {
	r := NewRegistry(
		&fakeTool{name: "b"},
		&fakeTool{name: "a"},
		&fakeTool{name: "c"},
	)
	var names []string
	for _, tl := range r.List() {
		names = append(names, tl.Name())
	}
	want := []string{"b", "a", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestRegistryDispatchUnknownName(t *testing.T) {
	known := &fakeTool{name: "search_flights", result: "ok"}
	r := NewRegistry(known)

	result, found := r.Dispatch(context.Background(), "definitely_not_a_tool", nil)
	if found {
		t.Error("unknown name reported as found")
	}
	if result != "" {
		t.Errorf("unknown name produced result %q", result)
	}
	if known.calls != 0 {
		t.Error("no tool should have run")
	}
}

func TestRegistryDispatchErrorToText(t *testing.T) {
	failing := &fakeTool{name: "search_hotels", err: errors.New("upstream 500")}
	r := NewRegistry(failing)

	result, found := r.Dispatch(context.Background(), "search_hotels", nil)
	if !found {
		t.Fatal("registered tool reported as not found")
	}
	if !strings.HasPrefix(result, "error: search_hotels:") {
		t.Errorf("result = %q, want error text prefix", result)
	}
	if !strings.Contains(result, "upstream 500") {
		t.Errorf("result %q should carry the underlying message", result)
	}
}

func TestEssentialSubset(t *testing.T) {
	var all []Tool
	for _, name := range []string{
		"get_airport_code", "search_flights", "search_hotels",
		"search_vacation_rentals", "find_nearby_attractions",
		"calculate_total_cost", "recommend_best_package",
	} {
		all = append(all, &fakeTool{name: name})
	}
	r := NewRegistry(all...)

	essential := r.Essential()
	if essential.Len() != len(EssentialToolNames) {
		t.Fatalf("essential registry has %d tools, want %d", essential.Len(), len(EssentialToolNames))
	}
	if _, ok := essential.Get("find_nearby_attractions"); ok {
		t.Error("non-essential tool leaked into the essential subset")
	}
	if _, ok := essential.Get("calculate_total_cost"); !ok {
		t.Error("essential tool missing from the subset")
	}
	// The original registry is untouched.
	if r.Len() != len(all) {
		t.Error("Essential must not mutate the source registry")
	}
}

func TestAirportCodeTool(t *testing.T) {
	out, err := AirportCodeTool{}.Execute(context.Background(), map[string]interface{}{"city": "Paris"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "CDG") {
		t.Errorf("output = %q, want CDG", out)
	}

	if _, err := (AirportCodeTool{}).Execute(context.Background(), map[string]interface{}{"city": "Atlantis"}); err == nil {
		t.Error("unknown city should return an error")
	}
	if _, err := (AirportCodeTool{}).Execute(context.Background(), nil); err == nil {
		t.Error("missing city should return an error")
	}
}

func TestTotalCostTool(t *testing.T) {
	out, err := TotalCostTool{}.Execute(context.Background(), map[string]interface{}{
		"flight_price":    400.0,
		"hotel_per_night": 100.0,
		"nights":          5,
		"travelers":       2,
		"daily_budget":    50.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	// 400*2 + 100*5 + 50*5*2 = 1800
	if !strings.Contains(out, "Total: $1800.00") {
		t.Errorf("output = %q, want total 1800.00", out)
	}

	// JSON-style numeric strings still work through coercion.
	out, err = TotalCostTool{}.Execute(context.Background(), map[string]interface{}{
		"flight_price":    "300",
		"hotel_per_night": "80",
		"nights":          "3",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Total: $540.00") {
		t.Errorf("output = %q, want total 540.00", out)
	}

	if _, err := (TotalCostTool{}).Execute(context.Background(), map[string]interface{}{"flight_price": 100.0}); err == nil {
		t.Error("missing required args should return an error")
	}
}

func TestPackageRecommendationTool(t *testing.T) {
	out, err := PackageRecommendationTool{}.Execute(context.Background(), map[string]interface{}{
		"budget":        2000.0,
		"option1_total": 1500.0,
		"option1_label": "Rome classic",
		"option2_total": 1900.0,
		"option2_label": "Rome deluxe",
		"option3_total": 2500.0,
		"option3_label": "Rome grand",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Recommended: Rome deluxe") {
		t.Errorf("output = %q, want the priciest in-budget option", out)
	}

	out, err = PackageRecommendationTool{}.Execute(context.Background(), map[string]interface{}{
		"budget":        1000.0,
		"option1_total": 1500.0,
		"option2_total": 1200.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "All options exceed the budget") {
		t.Errorf("output = %q, want over-budget notice", out)
	}
	if !strings.Contains(out, "$1200.00") {
		t.Errorf("output = %q, should name the cheapest option", out)
	}

	if _, err := (PackageRecommendationTool{}).Execute(context.Background(), map[string]interface{}{"budget": 100.0}); err == nil {
		t.Error("missing options should return an error")
	}
}

func TestArgCoercion(t *testing.T) {
	args := map[string]interface{}{
		"s":     "  trimmed  ",
		"f":     "2.5",
		"i":     7.0,
		"empty": "",
	}
	if got := stringArg(args, "s", "x"); got != "trimmed" {
		t.Errorf("stringArg = %q", got)
	}
	if got := stringArg(args, "empty", "fallback"); got != "fallback" {
		t.Errorf("stringArg empty = %q", got)
	}
	if got := stringArg(args, "missing", "fallback"); got != "fallback" {
		t.Errorf("stringArg missing = %q", got)
	}
	if got := floatArg(args, "f", 0); got != 2.5 {
		t.Errorf("floatArg = %v", got)
	}
	if got := intArg(args, "i", 0); got != 7 {
		t.Errorf("intArg = %v", got)
	}
	if got := intArg(args, "missing", 3); got != 3 {
		t.Errorf("intArg default = %v", got)
	}
}

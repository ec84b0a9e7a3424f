package mongodb

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/TanvirMain49/Learn-Hub-Server/internal/models"
	"github.com/TanvirMain49/Learn-Hub-Server/internal/repositories"
)

func TestBuildSessionFilter(t *testing.T) {
	success := models.SessionSuccess

	tests := []struct {
		name    string
		filters repositories.SessionFilters
		want    bson.M
	}{
		{
			name:    "unfiltered",
			filters: repositories.SessionFilters{},
			want:    bson.M{},
		},
		{
			name:    "public listing filters to success",
			filters: repositories.SessionFilters{Status: &success},
			want:    bson.M{"status": models.SessionSuccess},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSessionFilter(tt.filters); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildSessionFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildSessionFindOptions(t *testing.T) {
	tests := []struct {
		name     string
		filters  repositories.SessionFilters
		wantSkip *int64
		wantLim  *int64
		wantSort bson.D
	}{
		{
			name:    "defaults",
			filters: repositories.SessionFilters{},
		},
		{
			name:     "pagination skip is page times limit",
			filters:  repositories.SessionFilters{Skip: 12, Limit: 6},
			wantSkip: int64Ptr(12),
			wantLim:  int64Ptr(6),
		},
		{
			name:     "price ascending",
			filters:  repositories.SessionFilters{SortBy: "price", SortOrder: "asc"},
			wantSort: bson.D{{Key: "price", Value: 1}},
		},
		{
			name:     "price descending",
			filters:  repositories.SessionFilters{SortBy: "price", SortOrder: "desc"},
			wantSort: bson.D{{Key: "price", Value: -1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := buildSessionFindOptions(tt.filters)

			if !reflect.DeepEqual(opts.Skip, tt.wantSkip) {
				t.Errorf("Skip = %v, want %v", opts.Skip, tt.wantSkip)
			}
			if !reflect.DeepEqual(opts.Limit, tt.wantLim) {
				t.Errorf("Limit = %v, want %v", opts.Limit, tt.wantLim)
			}
			if tt.wantSort == nil {
				if opts.Sort != nil {
					t.Errorf("Sort = %v, want nil", opts.Sort)
				}
			} else if !reflect.DeepEqual(opts.Sort, tt.wantSort) {
				t.Errorf("Sort = %v, want %v", opts.Sort, tt.wantSort)
			}
		})
	}
}

func TestCaseInsensitiveSearch(t *testing.T) {
	filter := caseInsensitiveSearch("alice")

	clauses, ok := filter["$or"].(bson.A)
	if !ok || len(clauses) != 2 {
		t.Fatalf("filter = %v, want $or over two fields", filter)
	}
	for i, field := range []string{"name", "email"} {
		clause, ok := clauses[i].(bson.M)
		if !ok {
			t.Fatalf("clause %d = %v, want bson.M", i, clauses[i])
		}
		if _, ok := clause[field]; !ok {
			t.Errorf("clause %d missing field %q", i, field)
		}
	}
}

func TestTotalRevenuePipeline(t *testing.T) {
	pipeline := totalRevenuePipeline()
	if len(pipeline) != 1 {
		t.Fatalf("pipeline has %d stages, want 1", len(pipeline))
	}

	group := stageValue(t, pipeline[0], "$group")
	total := subDoc(t, group, "total")
	if sum := docValue(t, total, "$sum"); sum != "$price" {
		t.Errorf("$sum = %v, want $price", sum)
	}
}

func TestMonthlyRevenuePipeline(t *testing.T) {
	pipeline := monthlyRevenuePipeline()
	if len(pipeline) != 2 {
		t.Fatalf("pipeline has %d stages, want group then sort", len(pipeline))
	}

	group := stageValue(t, pipeline[0], "$group")
	dateToString := subDoc(t, subDoc(t, group, "_id"), "$dateToString")
	if format := docValue(t, dateToString, "format"); format != "%Y-%m" {
		t.Errorf("group key format = %v, want %%Y-%%m", format)
	}
	total := subDoc(t, group, "total")
	if sum := docValue(t, total, "$sum"); sum != "$price" {
		t.Errorf("$sum = %v, want $price", sum)
	}

	sort := stageValue(t, pipeline[1], "$sort")
	if order := docValue(t, sort, "_id"); order != 1 {
		t.Errorf("sort order = %v, want ascending month keys", order)
	}
}

// ===== TEST HELPERS =====

func int64Ptr(v int64) *int64 { return &v }

func stageValue(t *testing.T, stage bson.D, operator string) bson.D {
	t.Helper()
	if len(stage) != 1 || stage[0].Key != operator {
		t.Fatalf("stage = %v, want single %s", stage, operator)
	}
	doc, ok := stage[0].Value.(bson.D)
	if !ok {
		t.Fatalf("%s value = %T, want bson.D", operator, stage[0].Value)
	}
	return doc
}

func docValue(t *testing.T, doc bson.D, key string) interface{} {
	t.Helper()
	for _, elem := range doc {
		if elem.Key == key {
			return elem.Value
		}
	}
	t.Fatalf("document %v missing key %q", doc, key)
	return nil
}

func subDoc(t *testing.T, doc bson.D, key string) bson.D {
	t.Helper()
	sub, ok := docValue(t, doc, key).(bson.D)
	if !ok {
		t.Fatalf("key %q is not a document", key)
	}
	return sub
}

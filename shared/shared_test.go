package shared_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"studio/shared"
	"studio/shared/dto"
	"studio/shared/failure"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "t string",
			input:    "t",
			expected: boolPtr(true),
		},
		{
			name:     "f string",
			input:    "f",
			expected: boolPtr(false),
		},
		{
			name:     "T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "F string",
			input:    "F",
			expected: boolPtr(false),
		},
		{
			name:     "TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "total less than limit",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"courses"},
			expected: "courses",
		},
		{
			name:     "multiple parts",
			parts:    []string{"courses", "list", "page-1"},
			expected: "courses:list:page-1",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 25, SortBy: "created_at", SortDir: "desc"}
	filter := shared.FilterByID("store-1", "store_id", "course")

	key := shared.BuildCacheKeyWithQuery("courses", params, filter)

	if !strings.HasPrefix(key, "courses:") {
		t.Errorf("expected key to start with prefix, got %s", key)
	}
	if !strings.Contains(key, "p2:l25") {
		t.Errorf("expected key to encode pagination, got %s", key)
	}

	other := shared.BuildCacheKeyWithQuery("courses", params, shared.FilterByID("store-2", "store_id", "course"))
	if key == other {
		t.Error("expected different filters to produce different keys")
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter",
			id:      "123",
			fieldID: "id",
			table:   "course",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "123",
						Operator: dto.FilterOperatorEq,
						Table:    "course",
					},
				},
			},
		},
		{
			name:    "filter without table",
			id:      "456",
			fieldID: "student_id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "student_id",
						Value:    "456",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestValidateReferences(t *testing.T) {
	existing := shared.Reference{
		Label: "Store",
		Exists: func(ctx context.Context) (bool, error) {
			return true, nil
		},
	}
	missing := shared.Reference{
		Label: "Room",
		Exists: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}
	failing := shared.Reference{
		Label: "Teacher",
		Exists: func(ctx context.Context) (bool, error) {
			return false, errors.New("database error")
		},
	}

	tests := []struct {
		name     string
		refs     []shared.Reference
		wantErr  bool
		wantMsg  string
		wantCode int
	}{
		{
			name:    "all references exist",
			refs:    []shared.Reference{existing, existing},
			wantErr: false,
		},
		{
			name:    "no references",
			refs:    nil,
			wantErr: false,
		},
		{
			name:     "missing reference",
			refs:     []shared.Reference{existing, missing},
			wantErr:  true,
			wantMsg:  "Room not found",
			wantCode: http.StatusNotFound,
		},
		{
			name:    "lookup error",
			refs:    []shared.Reference{failing},
			wantErr: true,
		},
		{
			name:     "first missing reference wins",
			refs:     []shared.Reference{missing, failing},
			wantErr:  true,
			wantMsg:  "Room not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.ValidateReferences(context.Background(), tt.refs...)

			if !tt.wantErr {
				if err != nil {
					t.Errorf("expected no error, got: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
			}

			if tt.wantCode != 0 && failure.GetCode(err) != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}

package bind

import (
	"net/http/httptest"
	"testing"

	perr "folkarchive/internal/platform/errors"
)

type listQuery struct {
	Limit int    `query:"limit" json:"limit" validate:"omitempty,min=1"`
	Sort  string `query:"sort" json:"sort"`
}

func TestParseQuery_Success(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=7&sort=views", nil)
	got, err := ParseQuery[listQuery](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Limit != 7 || got.Sort != "views" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseQuery_AbsentParamsKeepZero(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	got, err := ParseQuery[listQuery](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Limit != 0 || got.Sort != "" {
		t.Fatalf("expected zero values, got %+v", got)
	}
}

func TestParseQuery_NonInteger(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=abc", nil)
	_, err := ParseQuery[listQuery](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseQuery_NegativeFailsMin(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=-3", nil)
	_, err := ParseQuery[listQuery](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseQuery_Bool(t *testing.T) {
	type flags struct {
		Deep bool `query:"deep" json:"deep"`
	}

	req := httptest.NewRequest("GET", "/?deep=true", nil)
	got, err := ParseQuery[flags](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Deep {
		t.Fatalf("expected deep=true, got %+v", got)
	}

	bad := httptest.NewRequest("GET", "/?deep=x", nil)
	if _, err := ParseQuery[flags](bad); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseQuery_UntaggedFieldsIgnored(t *testing.T) {
	type mixed struct {
		Name   string `query:"name" json:"name"`
		Hidden string `query:"-"`
		Plain  string
	}
	req := httptest.NewRequest("GET", "/?name=hue&Hidden=x&Plain=y", nil)
	got, err := ParseQuery[mixed](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "hue" || got.Hidden != "" || got.Plain != "" {
		t.Fatalf("got %+v", got)
	}
}

package webctx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestController_UserLookup(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?token=tiffany", nil)

	controller := NewController(httptest.NewRecorder(), req,
		WithUserLookup(func(r *http.Request) any {
			if token := r.URL.Query().Get("token"); token != "" {
				return token
			}
			return nil
		}),
	)

	if !controller.LoggedIn() {
		t.Fatalf("expected logged-in request")
	}
	if controller.CurrentUser() != "tiffany" {
		t.Fatalf("unexpected user %v", controller.CurrentUser())
	}
}

func TestController_AnonymousByDefault(t *testing.T) {
	controller := NewController(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if controller.LoggedIn() {
		t.Fatalf("expected anonymous request")
	}
	if controller.CurrentUser() != nil {
		t.Fatalf("expected nil user, got %v", controller.CurrentUser())
	}
	if controller.DefaultFormat() != "html" {
		t.Fatalf("expected html default format, got %q", controller.DefaultFormat())
	}
}

func TestController_Param(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3", nil)
	controller := NewController(httptest.NewRecorder(), req)

	if controller.Param("page") != "3" {
		t.Fatalf("unexpected param %q", controller.Param("page"))
	}
	if controller.Param("missing") != "" {
		t.Fatalf("expected empty missing param")
	}
}

func TestMountPath(t *testing.T) {
	cases := []struct {
		base, route, want string
	}{
		{"", "/articles", "/articles"},
		{"/", "articles", "/articles"},
		{"/admin", "/articles", "/admin/articles"},
		{"admin/", "articles", "/admin/articles"},
		{"/admin", "", "/admin/"},
	}
	for _, tc := range cases {
		if got := mountPath(tc.base, tc.route); got != tc.want {
			t.Fatalf("mountPath(%q, %q): expected %q, got %q", tc.base, tc.route, tc.want, got)
		}
	}
}

func TestStatusError(t *testing.T) {
	err := StatusError{Code: http.StatusForbidden}
	if err.StatusCode() != http.StatusForbidden {
		t.Fatalf("unexpected status %d", err.StatusCode())
	}
	if !strings.Contains(err.Error(), "Forbidden") {
		t.Fatalf("unexpected message %q", err.Error())
	}

	zero := StatusError{}
	if zero.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", zero.StatusCode())
	}
}

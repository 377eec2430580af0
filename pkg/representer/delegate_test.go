package representer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func delegationDef(t *testing.T) *Definition {
	t.Helper()
	return MustDefine("representers.Book",
		WithControllerMethods("current_user", "logged_in", "log", "find"),
	)
}

func TestCall_ForwardsToController(t *testing.T) {
	controller := &testController{user: "vimes", loggedIn: true}
	rep, err := New(delegationDef(t), testBook{}, controller)
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	user, err := rep.Call("current_user")
	if err != nil {
		t.Fatalf("call current_user: %v", err)
	}
	if user != "vimes" {
		t.Fatalf("expected vimes, got %v", user)
	}

	logged, err := rep.Call("logged_in")
	if err != nil {
		t.Fatalf("call logged_in: %v", err)
	}
	if logged != true {
		t.Fatalf("expected true, got %v", logged)
	}
}

func TestCall_ForwardsArgumentsAndErrors(t *testing.T) {
	controller := &testController{}
	rep, err := New(delegationDef(t), testBook{}, controller)
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	found, err := rep.Call("find", 7)
	if err != nil {
		t.Fatalf("call find: %v", err)
	}
	if found != "record-7" {
		t.Fatalf("expected record-7, got %v", found)
	}

	if _, err := rep.Call("find", 0); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected controller error to propagate, got %v", err)
	}
}

func TestCall_VariadicMethod(t *testing.T) {
	controller := &testController{}
	rep, err := New(delegationDef(t), testBook{}, controller)
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	if _, err := rep.Call("log", "one", "two"); err != nil {
		t.Fatalf("call log: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two"}, controller.logged); diff != "" {
		t.Fatalf("unexpected logged messages (-want +got):\n%s", diff)
	}
}

func TestCall_UndeclaredMethodRejected(t *testing.T) {
	rep, err := New(delegationDef(t), testBook{}, &testController{})
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	if _, err := rep.Call("destroy_all"); err == nil || !strings.Contains(err.Error(), "not declared") {
		t.Fatalf("expected undeclared method error, got %v", err)
	}
}

func TestCall_MissingControllerMethod(t *testing.T) {
	def := MustDefine("representers.Book", WithControllerMethods("rewind"))
	rep, err := New(def, testBook{}, &testController{})
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	if _, err := rep.Call("rewind"); err == nil || !strings.Contains(err.Error(), `no method "rewind"`) {
		t.Fatalf("expected missing method error, got %v", err)
	}
}

func TestCall_ArgumentCountMismatch(t *testing.T) {
	rep, err := New(delegationDef(t), testBook{}, &testController{})
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	if _, err := rep.Call("find"); err == nil || !strings.Contains(err.Error(), "wants 1 arguments") {
		t.Fatalf("expected argument count error, got %v", err)
	}
}

func TestDelegate_BindsMethod(t *testing.T) {
	controller := &testController{user: "angua"}
	rep, err := New(delegationDef(t), testBook{}, controller)
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	currentUser := rep.Delegate("current_user")
	user, err := currentUser()
	if err != nil {
		t.Fatalf("delegate call: %v", err)
	}
	if user != "angua" {
		t.Fatalf("expected angua, got %v", user)
	}
}

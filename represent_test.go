package represent_test

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	represent "github.com/goliatone/go-represent"
	"github.com/goliatone/go-represent/pkg/representer"
	"github.com/goliatone/go-represent/pkg/view"
)

type book struct {
	Title string
	Body  string
}

type consoleController struct {
	engine view.Engine
	out    io.Writer
}

func (c *consoleController) ViewEngine() view.Engine   { return c.engine }
func (c *consoleController) DefaultFormat() string     { return "html" }
func (c *consoleController) ResponseWriter() io.Writer { return c.out }

func testEngine(t *testing.T) view.Engine {
	t.Helper()

	templates := fstest.MapFS{
		"representers/book/show.html.tpl": &fstest.MapFile{
			Data: []byte("<h1>{{ book.title }}</h1><div>{{ book.body|safe }}</div>"),
		},
	}

	engine, err := represent.NewEngine(view.Config{}, templates, nil)
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return engine
}

func TestRender_EndToEnd(t *testing.T) {
	def, err := represent.Define("representers.Book",
		represent.WithReaders("title"),
		represent.WithFilteredReader("body", "textilize", "h"),
	)
	if err != nil {
		t.Fatalf("define: %v", err)
	}

	ctx := &consoleController{engine: testEngine(t)}
	model := book{Title: "Go Deals", Body: "a *deal*"}

	output, err := represent.Render(context.Background(), def, model, ctx, "show")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(output, "<h1>Go Deals</h1>") {
		t.Fatalf("expected title heading, got %q", output)
	}
	if !strings.Contains(output, "<p>a <em>deal</em></p>") {
		t.Fatalf("expected filtered body, got %q", output)
	}
}

func TestRender_WritesToController(t *testing.T) {
	def := represent.MustDefine("representers.Book", represent.WithReaders("title"))

	var buf strings.Builder
	ctx := &consoleController{engine: testEngine(t), out: &buf}

	output, err := represent.Render(context.Background(), def, book{Title: "Streamed"}, ctx, "show")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if buf.String() != output {
		t.Fatalf("expected writer copy %q, got %q", output, buf.String())
	}
}

func TestNewEngine_RequiresTemplateSource(t *testing.T) {
	if _, err := represent.NewEngine(view.Config{}, nil, nil); err == nil {
		t.Fatalf("expected error without template source")
	}
}

func TestNewEngine_DiskRoot(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(dir+"/representers/book", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(dir+"/representers/book/show.html.tpl", []byte("{{ book.title }}"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	engine, err := represent.NewEngine(view.Config{Root: dir}, nil, nil)
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	def := represent.MustDefine("representers.Book", represent.WithReaders("title"))
	rep, err := represent.New(def, book{Title: "Disk"}, &consoleController{engine: engine})
	if err != nil {
		t.Fatalf("new representer: %v", err)
	}

	output, err := rep.RenderAs(context.Background(), "show")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if output != "Disk" {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestNewRecord_Facade(t *testing.T) {
	def := represent.MustDefine("representers.Book", represent.WithReaders("title"))

	rec, err := represent.NewRecord(def, storedBook{book: book{Title: "With ID"}}, &consoleController{engine: testEngine(t)})
	if err != nil {
		t.Fatalf("new record representer: %v", err)
	}
	if rec.DOMID() != "stored_book_7" {
		t.Fatalf("unexpected dom id %q", rec.DOMID())
	}
}

type storedBook struct {
	book
}

func (storedBook) ID() any { return 7 }

var _ representer.Record = storedBook{}

package generator_test

import (
	"testing"

	"github.com/mason-build/mason/internal/generator"
)

func TestRenderString(t *testing.T) {
	r := generator.NewRenderer()

	out, err := r.RenderString("build", `name = {{ quote .Name }}`, map[string]string{"Name": "Login"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if string(out) != `name = "Login"` {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestRenderString_CachedTemplateRerenders(t *testing.T) {
	r := generator.NewRenderer()

	first, err := r.RenderString("greeting", `hello {{ .Name }}`, map[string]string{"Name": "Login"})
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	second, err := r.RenderString("greeting", `ignored on cache hit`, map[string]string{"Name": "Search"})
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if string(first) != "hello Login" || string(second) != "hello Search" {
		t.Errorf("cache broke rendering: %q, %q", first, second)
	}
}

func TestRenderString_ParseError(t *testing.T) {
	r := generator.NewRenderer()

	if _, err := r.RenderString("bad", `{{ .Name`, nil); err == nil {
		t.Error("expected parse error")
	}
}

func TestLabel(t *testing.T) {
	cases := map[[2]string]string{
		{"Features/Login", "Login"}: "//Features/Login:Login",
		{"/Core/Logging", "Logging"}: "//Core/Logging:Logging",
	}
	for in, want := range cases {
		if got := generator.Label(in[0], in[1]); got != want {
			t.Errorf("Label(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

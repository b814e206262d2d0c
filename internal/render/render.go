package render

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flosch/pongo2/v6"

	"labelpress/internal/normalize"
	"labelpress/internal/services"
)

// Label is the rendered payload plus the human-readable identifier used in
// the print job title. It is consumed exactly once by the submission stage.
type Label struct {
	Payload    []byte
	Identifier string
}

// Render binds the context into the label template at templatePath. Output
// is all-or-nothing: on any template failure no partial payload escapes.
func Render(templatePath string, ctx normalize.Context) (Label, error) {
	if _, err := os.Stat(templatePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Label{}, services.Wrap(services.ErrTemplateNotFound, "render", "load template",
				fmt.Sprintf("no template at %s", templatePath), nil)
		}
		return Label{}, services.Wrap(services.ErrTemplateNotFound, "render", "load template", templatePath, err)
	}

	tpl, err := pongo2.FromFile(templatePath)
	if err != nil {
		return Label{}, services.Wrap(services.ErrRender, "render", "parse template", templatePath, err)
	}

	bindings := make(pongo2.Context, len(ctx))
	for key, value := range ctx {
		bindings[key] = value
	}

	payload, err := tpl.ExecuteBytes(bindings)
	if err != nil {
		return Label{}, services.Wrap(services.ErrRender, "render", "execute template", templatePath, err)
	}

	return Label{
		Payload:    payload,
		Identifier: identifier(ctx),
	}, nil
}

// identifier picks the context field that best names the job for a human:
// the scientific name on plant labels, the item name or tag on asset labels.
func identifier(ctx normalize.Context) string {
	for _, key := range []string{"scientific", "name", "tag"} {
		if value := strings.TrimSpace(ctx[key]); value != "" && value != "N/A" {
			return value
		}
	}
	return "label"
}

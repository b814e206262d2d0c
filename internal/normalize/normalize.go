package normalize

import (
	"strings"

	"labelpress/internal/source"
)

// Context is the immutable field set handed to the renderer. Once built it
// is passed whole into template binding; nothing mutates it afterwards.
type Context map[string]string

// Options carries the deployment values the remote-mode policy needs.
type Options struct {
	// LabelURLPrefix is prepended to the asset tag to build the label link.
	LabelURLPrefix string
	// Owner is printed on asset labels.
	Owner string
}

const (
	notAvailable     = "N/A"
	descriptionLimit = 28
	serialTailLen    = 10
	summarySeparator = " | "
)

// remoteDefaulted lists the remote-record fields that must never reach the
// template empty.
var remoteDefaulted = []string{
	"tag",
	"name",
	"description",
	"serial_number",
	"location_name",
	"model_number",
	"purchase_from",
	"purchase_price",
	"purchase_date",
}

// Apply turns a Record into the final template context. Literal and CSV
// records pass through unchanged; remote records get the per-field policy:
// truncation, sentinel defaults, and the derived summary and label-URL
// fields. Apply never fails.
func Apply(rec source.Record, mode source.Mode, opts Options) Context {
	ctx := make(Context, len(rec)+3)
	for key, value := range rec {
		ctx[key] = value
	}
	if mode != source.ModeRemote {
		return ctx
	}

	ctx["description"] = truncate(ctx["description"], descriptionLimit)
	ctx["serial_number"] = lastRunes(ctx["serial_number"], serialTailLen)
	for _, field := range remoteDefaulted {
		if strings.TrimSpace(ctx[field]) == "" {
			ctx[field] = notAvailable
		}
	}
	ctx["owner"] = defaultIfEmpty(opts.Owner)

	ctx["summary_line"] = strings.Join([]string{
		ctx["tag"],
		ctx["model_number"],
		ctx["serial_number"],
		ctx["purchase_from"],
		ctx["purchase_price"],
		ctx["purchase_date"],
	}, summarySeparator)

	if ctx["tag"] == notAvailable {
		ctx["asset_label_url"] = notAvailable
	} else {
		ctx["asset_label_url"] = opts.LabelURLPrefix + ctx["tag"]
	}

	return ctx
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}

func lastRunes(value string, n int) string {
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[len(runes)-n:])
}

func defaultIfEmpty(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

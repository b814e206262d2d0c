package source

import (
	"context"
	"strings"

	"labelpress/internal/services/homebox"
)

// Remote resolves an asset tag against the inventory service: login, then
// a two-step lookup (tag search, full-record fetch by internal identifier).
type Remote struct {
	client   *homebox.Client
	username string
	password string
	tag      string
}

// NewRemote builds a remote-fetch adapter for the given tag.
func NewRemote(client *homebox.Client, username, password, tag string) *Remote {
	return &Remote{
		client:   client,
		username: username,
		password: password,
		tag:      tag,
	}
}

// Mode reports ModeRemote.
func (r *Remote) Mode() Mode { return ModeRemote }

// Resolve performs login → tag search → item fetch and flattens the result
// into a Record. The token lives only for this invocation.
func (r *Remote) Resolve(ctx context.Context) (Record, error) {
	token, err := r.client.Login(ctx, r.username, r.password)
	if err != nil {
		return nil, err
	}

	summary, err := r.client.SearchAsset(ctx, token, r.tag)
	if err != nil {
		return nil, err
	}

	item, err := r.client.Item(ctx, token, summary.ID)
	if err != nil {
		return nil, err
	}

	tag := strings.TrimSpace(item.AssetID)
	if tag == "" {
		tag = r.tag
	}

	return Record{
		"id":             item.ID,
		"tag":            tag,
		"name":           item.Name,
		"description":    item.Description,
		"location_name":  item.Location.Name,
		"model_number":   item.ModelNumber,
		"serial_number":  item.SerialNumber,
		"purchase_from":  item.PurchaseFrom,
		"purchase_price": item.PurchasePrice.String(),
		"purchase_date":  dateOnly(item.PurchaseTime),
	}, nil
}

// dateOnly strips the time component from an RFC 3339 timestamp; labels only
// have room for the date.
func dateOnly(ts string) string {
	ts = strings.TrimSpace(ts)
	if idx := strings.IndexByte(ts, 'T'); idx > 0 {
		return ts[:idx]
	}
	return ts
}

package inventory

import (
	"strings"

	"github.com/yi-nology/campus_inventory/biz/dal/model"
)

// FindByTag returns the records whose asset tag equals tag under Unicode
// case folding. The query is trimmed; stored tags are compared as stored.
// An empty tag matches nothing.
func FindByTag(records []model.AssetRecord, tag string) []model.AssetRecord {
	out := []model.AssetRecord{}
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return out
	}
	for _, r := range records {
		if strings.EqualFold(r.AssetTag, tag) {
			out = append(out, r)
		}
	}
	return out
}

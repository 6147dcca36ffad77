package events

import (
	"reflect"
	"testing"
)

func TestTargetFor_ListsMapToTheirTagAndPage(t *testing.T) {
	cases := []struct {
		entity string
		tags   []string
		paths  []string
	}{
		{"title", []string{"cms:title"}, []string{"/"}},
		{"faq", []string{"cms:faq"}, []string{"/"}},
		{"document", []string{"cms:document"}, []string{"/privacy", "/consent"}},
	}
	for _, tc := range cases {
		target, ok := TargetFor(tc.entity)
		if !ok {
			t.Fatalf("expected target for %q", tc.entity)
		}
		if !reflect.DeepEqual(target.Tags, tc.tags) {
			t.Fatalf("%q tags: got %v want %v", tc.entity, target.Tags, tc.tags)
		}
		if !reflect.DeepEqual(target.Paths, tc.paths) {
			t.Fatalf("%q paths: got %v want %v", tc.entity, target.Paths, tc.paths)
		}
	}
}

func TestTargetFor_PointsInvalidateTheirParent(t *testing.T) {
	point, ok := TargetFor("possibilitiePoint")
	if !ok {
		t.Fatalf("expected target for possibilitiePoint")
	}
	parent, _ := TargetFor("possibilitie")
	if !reflect.DeepEqual(point.Tags, parent.Tags) {
		t.Fatalf("point tags %v differ from parent tags %v", point.Tags, parent.Tags)
	}
}

func TestTargetFor_LeadsAndUsersHaveNoCachedView(t *testing.T) {
	for _, entity := range []string{"client", "user"} {
		if _, ok := TargetFor(entity); ok {
			t.Fatalf("expected no target for %q", entity)
		}
	}
}

func TestContentTags_CoverEveryLandingTarget(t *testing.T) {
	tags := make(map[string]bool)
	for _, tag := range ContentTags() {
		tags[tag] = true
	}
	for entity, target := range targets {
		if entity == "document" {
			continue
		}
		for _, tag := range target.Tags {
			if !tags[tag] {
				t.Fatalf("landing tag %q missing from ContentTags", tag)
			}
		}
	}
}

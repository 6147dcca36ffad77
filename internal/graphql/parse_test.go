package graphql

import (
	"reflect"
	"testing"
)

func TestParse_ShorthandQuery(t *testing.T) {
	doc, err := Parse(`{ titles { id name } faqs { question } }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Operation != "query" {
		t.Fatalf("expected query got %q", doc.Operation)
	}
	if !reflect.DeepEqual(doc.Fields, []string{"titles", "faqs"}) {
		t.Fatalf("unexpected fields: %v", doc.Fields)
	}
}

func TestParse_NamedMutationWithVariables(t *testing.T) {
	doc, err := Parse(`
mutation CreateClient($data: ClientCreateInput!) {
  createClient(data: $data) {
    id
    name
  }
}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Operation != "mutation" {
		t.Fatalf("expected mutation got %q", doc.Operation)
	}
	if !reflect.DeepEqual(doc.Fields, []string{"createClient"}) {
		t.Fatalf("unexpected fields: %v", doc.Fields)
	}
}

func TestParse_NestedSelectionsStayNested(t *testing.T) {
	doc, err := Parse(`query {
  possibilities {
    id
    points { id name }
  }
  stages { happening { name } }
}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(doc.Fields, []string{"possibilities", "stages"}) {
		t.Fatalf("nested fields leaked to top level: %v", doc.Fields)
	}
}

func TestParse_AliasResolvesToFieldName(t *testing.T) {
	doc, err := Parse(`{ first: titles { id } }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(doc.Fields, []string{"titles"}) {
		t.Fatalf("alias not resolved: %v", doc.Fields)
	}
}

func TestParse_SkipsCommentsAndStrings(t *testing.T) {
	doc, err := Parse(`query {
  # mutation inside a comment { fake }
  titles(where: { name: "hero { nope }" }) { id }
}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(doc.Fields, []string{"titles"}) {
		t.Fatalf("unexpected fields: %v", doc.Fields)
	}
}

func TestParse_RejectsSubscription(t *testing.T) {
	if _, err := Parse(`subscription { titles { id } }`); err == nil {
		t.Fatalf("expected error for subscription")
	}
}

func TestParse_RejectsEmptyAndBroken(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"query",
		"query { }",
		"{ titles { id }",
		"garbage { titles }",
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Fatalf("expected error for %q", src)
		}
	}
}

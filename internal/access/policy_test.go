package access

import "testing"

func TestAllowed_ContentListsArePublicToRead(t *testing.T) {
	for _, entity := range []string{"title", "about", "statistic", "possibilitie", "stage", "case", "faq", "contact", "document"} {
		if !Allowed(entity, OpQuery, false) {
			t.Fatalf("expected anonymous query on %q to be allowed", entity)
		}
		for _, op := range []Operation{OpCreate, OpUpdate, OpDelete} {
			if Allowed(entity, op, false) {
				t.Fatalf("expected anonymous %s on %q to be denied", op, entity)
			}
			if !Allowed(entity, op, true) {
				t.Fatalf("expected session %s on %q to be allowed", op, entity)
			}
		}
	}
}

func TestAllowed_ClientCreateIsPublicButReadIsNot(t *testing.T) {
	if !Allowed("client", OpCreate, false) {
		t.Fatalf("expected anonymous client create to be allowed")
	}
	if Allowed("client", OpQuery, false) {
		t.Fatalf("expected anonymous client query to be denied")
	}
	if !Allowed("client", OpQuery, true) {
		t.Fatalf("expected session client query to be allowed")
	}
}

func TestAllowed_UnknownEntityDenied(t *testing.T) {
	if Allowed("nope", OpQuery, true) {
		t.Fatalf("expected unknown entity to be denied even with a session")
	}
}

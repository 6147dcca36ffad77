package access

// Operation mirrors the four gates every content list declares.
type Operation string

const (
  OpQuery  Operation = "query"
  OpCreate Operation = "create"
  OpUpdate Operation = "update"
  OpDelete Operation = "delete"
)

// Rule decides whether an operation needs an authenticated session.
type Rule int

const (
  Public Rule = iota
  RequireSession
)

type listPolicy struct {
  Query  Rule
  Create Rule
  Update Rule
  Delete Rule
}

// contentList is the default policy: anyone may read, only admins mutate.
var contentList = listPolicy{
  Query:  Public,
  Create: RequireSession,
  Update: RequireSession,
  Delete: RequireSession,
}

var policies = map[string]listPolicy{
  // The landing aggregate reads the same lists the public queries do.
  "home":              {Query: Public, Create: RequireSession, Update: RequireSession, Delete: RequireSession},
  "title":             contentList,
  "contact":           contentList,
  "about":             contentList,
  "statistic":         contentList,
  "possibilitie":      contentList,
  "possibilitiePoint": contentList,
  "stage":             contentList,
  "stagePoint":        contentList,
  "case":              contentList,
  "faq":               contentList,
  "document":          contentList,
  // Leads: the public form may create, everything else is admin-only.
  "client": {
    Query:  RequireSession,
    Create: Public,
    Update: RequireSession,
    Delete: RequireSession,
  },
  "user": contentList,
}

// Allowed reports whether the operation on the entity may proceed with or
// without a session. Unknown entities are denied outright.
func Allowed(entity string, op Operation, hasSession bool) bool {
  p, ok := policies[entity]
  if !ok {
    return false
  }
  var rule Rule
  switch op {
  case OpQuery:
    rule = p.Query
  case OpCreate:
    rule = p.Create
  case OpUpdate:
    rule = p.Update
  case OpDelete:
    rule = p.Delete
  default:
    return false
  }
  return rule == Public || hasSession
}

package handlers

import (
  "context"
  "encoding/json"
  "fmt"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/neuroscale/neuroscale-site/internal/access"
  "github.com/neuroscale/neuroscale-site/internal/graphql"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/services"
  "github.com/neuroscale/neuroscale-site/internal/session"
  "github.com/neuroscale/neuroscale-site/internal/types"
)

// GraphQLHandler executes {query, variables} documents against a fixed
// operation vocabulary. Arguments travel in the variables object: create
// takes "data", update takes "id" and "data", delete takes "id".
type GraphQLHandler struct {
  log     *logger.Logger
  content services.ContentService
  fields  map[string]fieldDef
}

type fieldDef struct {
  entity    string
  op        access.Operation
  operation string // "query" or "mutation"
  resolve   func(ctx context.Context, vars map[string]any) (any, error)
}

func NewGraphQLHandler(log *logger.Logger, content services.ContentService) *GraphQLHandler {
  h := &GraphQLHandler{
    log:     log.With("handler", "GraphQLHandler"),
    content: content,
  }
  h.fields = h.buildFields()
  return h
}

type graphQLRequest struct {
  Query     string         `json:"query"`
  Variables map[string]any `json:"variables"`
}

func (h *GraphQLHandler) Execute(c *gin.Context) {
  var req graphQLRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": "invalid request body"}}})
    return
  }
  doc, err := graphql.Parse(req.Query)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": err.Error()}}})
    return
  }

  defs := make([]fieldDef, 0, len(doc.Fields))
  for _, name := range doc.Fields {
    def, ok := h.fields[name]
    if !ok {
      c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": fmt.Sprintf("unknown field %q", name)}}})
      return
    }
    if def.operation != doc.Operation {
      c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": fmt.Sprintf("field %q requires a %s operation", name, def.operation)}}})
      return
    }
    defs = append(defs, def)
  }

  // Access is checked for the whole document before anything runs, so a
  // rejected mutation is never partially applied.
  sess := session.FromContext(c.Request.Context())
  for i, def := range defs {
    if !access.Allowed(def.entity, def.op, sess != nil) {
      h.log.Warn("Access denied", "field", doc.Fields[i], "entity", def.entity, "op", string(def.op))
      c.JSON(http.StatusUnauthorized, gin.H{"errors": []gin.H{{"message": fmt.Sprintf("access denied for %q", doc.Fields[i])}}})
      return
    }
  }

  data := gin.H{}
  var errs []gin.H
  for i, def := range defs {
    name := doc.Fields[i]
    val, err := def.resolve(c.Request.Context(), req.Variables)
    if err != nil {
      h.log.Warn("Field resolution failed", "field", name, "error", err)
      errs = append(errs, gin.H{"message": err.Error(), "path": []string{name}})
      data[name] = nil
      continue
    }
    data[name] = val
  }
  resp := gin.H{"data": data}
  if len(errs) > 0 {
    resp["errors"] = errs
  }
  c.JSON(http.StatusOK, resp)
}

func (h *GraphQLHandler) buildFields() map[string]fieldDef {
  cs := h.content
  fields := map[string]fieldDef{}

  query := func(name, entity string, fn func(ctx context.Context, vars map[string]any) (any, error)) {
    fields[name] = fieldDef{entity: entity, op: access.OpQuery, operation: "query", resolve: fn}
  }
  mutation := func(name, entity string, op access.Operation, fn func(ctx context.Context, vars map[string]any) (any, error)) {
    fields[name] = fieldDef{entity: entity, op: op, operation: "mutation", resolve: fn}
  }

  // Queries. "home" bundles every landing list into one round trip.
  query("home", "home", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.Home(ctx)
  })
  query("titles", "title", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListTitles(ctx)
  })
  query("contacts", "contact", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListContacts(ctx)
  })
  query("abouts", "about", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListAbouts(ctx)
  })
  query("statistics", "statistic", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListStatistics(ctx)
  })
  query("possibilities", "possibilitie", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListPossibilities(ctx)
  })
  query("stages", "stage", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListStages(ctx)
  })
  query("cases", "case", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListCases(ctx)
  })
  query("faqs", "faq", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListFaqs(ctx)
  })
  query("documents", "document", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListDocuments(ctx)
  })
  query("document", "document", func(ctx context.Context, vars map[string]any) (any, error) {
    slug, _ := vars["slug"].(string)
    if slug == "" {
      return nil, fmt.Errorf("document requires a slug variable")
    }
    return cs.GetDocumentBySlug(ctx, slug)
  })
  query("clients", "client", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListClients(ctx)
  })
  query("users", "user", func(ctx context.Context, _ map[string]any) (any, error) {
    return cs.ListUsers(ctx)
  })

  // Title.
  mutation("createTitle", "title", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Title
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateTitle(ctx, &data)
  })
  mutation("updateTitle", "title", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Title
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateTitle(ctx, id, &data)
  })
  mutation("deleteTitle", "title", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteTitle(ctx, id))
  })

  // Contact.
  mutation("createContact", "contact", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Contact
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateContact(ctx, &data)
  })
  mutation("updateContact", "contact", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Contact
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateContact(ctx, id, &data)
  })
  mutation("deleteContact", "contact", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteContact(ctx, id))
  })

  // About.
  mutation("createAbout", "about", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.About
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateAbout(ctx, &data)
  })
  mutation("updateAbout", "about", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.About
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateAbout(ctx, id, &data)
  })
  mutation("deleteAbout", "about", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteAbout(ctx, id))
  })

  // Statistic.
  mutation("createStatistic", "statistic", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Statistic
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateStatistic(ctx, &data)
  })
  mutation("updateStatistic", "statistic", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Statistic
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateStatistic(ctx, id, &data)
  })
  mutation("deleteStatistic", "statistic", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteStatistic(ctx, id))
  })

  // Possibilitie.
  mutation("createPossibilitie", "possibilitie", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Possibilitie
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreatePossibilitie(ctx, &data)
  })
  mutation("updatePossibilitie", "possibilitie", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Possibilitie
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdatePossibilitie(ctx, id, &data)
  })
  mutation("deletePossibilitie", "possibilitie", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeletePossibilitie(ctx, id))
  })

  // Stage.
  mutation("createStage", "stage", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Stage
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateStage(ctx, &data)
  })
  mutation("updateStage", "stage", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Stage
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateStage(ctx, id, &data)
  })
  mutation("deleteStage", "stage", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteStage(ctx, id))
  })

  // Case.
  mutation("createCase", "case", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Case
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateCase(ctx, &data)
  })
  mutation("updateCase", "case", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Case
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateCase(ctx, id, &data)
  })
  mutation("deleteCase", "case", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteCase(ctx, id))
  })

  // Faq.
  mutation("createFaq", "faq", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Faq
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateFaq(ctx, &data)
  })
  mutation("updateFaq", "faq", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Faq
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateFaq(ctx, id, &data)
  })
  mutation("deleteFaq", "faq", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteFaq(ctx, id))
  })

  // Document.
  mutation("createDocument", "document", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Document
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.CreateDocument(ctx, &data)
  })
  mutation("updateDocument", "document", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Document
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateDocument(ctx, id, &data)
  })
  mutation("deleteDocument", "document", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteDocument(ctx, id))
  })

  // Client. createClient also accepts the legacy flat variables the first
  // public form shipped with (name/phone/question at the top level).
  mutation("createClient", "client", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.Client
    if _, ok := vars["data"]; ok {
      if err := decodeData(vars, &data); err != nil {
        return nil, err
      }
    } else {
      data.Name, _ = vars["name"].(string)
      data.Phone, _ = vars["phone"].(string)
      data.Question, _ = vars["question"].(string)
      data.ContactMethod, _ = vars["contactMethod"].(string)
    }
    return cs.CreateClient(ctx, &data)
  })
  mutation("updateClient", "client", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.Client
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    return cs.UpdateClient(ctx, id, &data)
  })
  mutation("deleteClient", "client", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteClient(ctx, id))
  })

  // User. The password never round-trips through JSON tags, so it is lifted
  // from the data variable by hand.
  mutation("createUser", "user", access.OpCreate, func(ctx context.Context, vars map[string]any) (any, error) {
    var data types.User
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    data.Password = dataPassword(vars)
    return cs.CreateUser(ctx, &data)
  })
  mutation("updateUser", "user", access.OpUpdate, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    var data types.User
    if err := decodeData(vars, &data); err != nil {
      return nil, err
    }
    data.Password = dataPassword(vars)
    return cs.UpdateUser(ctx, id, &data)
  })
  mutation("deleteUser", "user", access.OpDelete, func(ctx context.Context, vars map[string]any) (any, error) {
    id, err := parseID(vars)
    if err != nil {
      return nil, err
    }
    return deleted(id, cs.DeleteUser(ctx, id))
  })

  return fields
}

func decodeData(vars map[string]any, dst any) error {
  raw, ok := vars["data"]
  if !ok {
    return fmt.Errorf("mutation requires a data variable")
  }
  buf, err := json.Marshal(raw)
  if err != nil {
    return fmt.Errorf("invalid data variable: %w", err)
  }
  if err := json.Unmarshal(buf, dst); err != nil {
    return fmt.Errorf("invalid data variable: %w", err)
  }
  return nil
}

func dataPassword(vars map[string]any) string {
  data, _ := vars["data"].(map[string]any)
  password, _ := data["password"].(string)
  return password
}

func parseID(vars map[string]any) (uuid.UUID, error) {
  raw, _ := vars["id"].(string)
  if raw == "" {
    return uuid.Nil, fmt.Errorf("mutation requires an id variable")
  }
  id, err := uuid.Parse(raw)
  if err != nil {
    return uuid.Nil, fmt.Errorf("invalid id variable: %w", err)
  }
  return id, nil
}

func deleted(id uuid.UUID, err error) (any, error) {
  if err != nil {
    return nil, err
  }
  return gin.H{"id": id.String()}, nil
}
